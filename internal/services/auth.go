package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authrepos "github.com/yungbote/coursetube-backend/internal/data/repos/auth"
	userrepos "github.com/yungbote/coursetube-backend/internal/data/repos/user"
	types "github.com/yungbote/coursetube-backend/internal/domain"
	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
	"github.com/yungbote/coursetube-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type LoginResult struct {
	User         *types.User `json:"user"`
	SessionToken string      `json:"session_token"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

type AuthService interface {
	// LoginWithIDToken verifies the external credential, resolves or creates
	// the local user, and issues an opaque session token.
	LoginWithIDToken(ctx context.Context, idToken string) (*LoginResult, error)
	// ResolveSession validates an opaque session token and returns a context
	// carrying the resolved caller.
	ResolveSession(ctx context.Context, token string) (context.Context, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	// Logout revokes every session owned by the user.
	Logout(ctx context.Context, userID uuid.UUID) error
	SessionTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	verifier     IdentityVerifier
	userRepo     userrepos.UserRepo
	identityRepo authrepos.UserIdentityRepo
	sessionRepo  authrepos.SessionRepo
	sessionTTL   time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	verifier IdentityVerifier,
	userRepo userrepos.UserRepo,
	identityRepo authrepos.UserIdentityRepo,
	sessionRepo authrepos.SessionRepo,
	sessionTTL time.Duration,
) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &authService{
		db:           db,
		log:          baseLog.With("service", "AuthService"),
		verifier:     verifier,
		userRepo:     userRepo,
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		sessionTTL:   sessionTTL,
	}
}

func (as *authService) SessionTTL() time.Duration { return as.sessionTTL }

func (as *authService) LoginWithIDToken(ctx context.Context, idToken string) (*LoginResult, error) {
	ident, err := as.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if ident.Email == "" {
		return nil, fmt.Errorf("identity has no email claim: %w", xerrors.ErrUnauthorized)
	}

	user, err := as.resolveUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	session := &types.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(as.sessionTTL),
	}
	if _, err := as.sessionRepo.Create(ctx, nil, []*types.Session{session}); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// Opportunistic sweep so the session table does not grow forever.
	if err := as.sessionRepo.FullDeleteExpired(ctx, nil, time.Now()); err != nil {
		as.log.Warn("expired session sweep failed", "error", err)
	}

	as.log.Info("login", "user_id", user.ID, "provider", ident.Provider)
	return &LoginResult{
		User:         user,
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// resolveUser maps a verified external identity to a local user, creating
// both rows on first sight. Conflict-ignoring inserts plus a final read make
// this idempotent under concurrent first logins; the unique indexes on
// user.email and (provider, provider_sub) arbitrate every race.
func (as *authService) resolveUser(ctx context.Context, ident *ExternalIdentity) (*types.User, error) {
	// Fast path: identity already known.
	found, err := as.identityRepo.GetByProviderSubs(ctx, nil, ident.Provider, []string{ident.Sub})
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}
	if len(found) > 0 {
		users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{found[0].UserID})
		if err != nil {
			return nil, fmt.Errorf("load user: %w", err)
		}
		if len(users) == 0 {
			return nil, fmt.Errorf("identity %s/%s points at missing user", ident.Provider, ident.Sub)
		}
		if err := as.userRepo.UpdateProfile(ctx, nil, users[0].ID, ident.Name, ident.Picture); err != nil {
			as.log.Warn("profile refresh failed", "error", err, "user_id", users[0].ID)
		}
		return users[0], nil
	}

	var user *types.User
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := &types.User{
			ID:        uuid.New(),
			Email:     ident.Email,
			Name:      ident.Name,
			AvatarURL: ident.Picture,
		}
		if err := as.userRepo.CreateIgnoreConflicts(ctx, tx, []*types.User{candidate}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users, err := as.userRepo.GetByEmails(ctx, tx, []string{ident.Email})
		if err != nil {
			return fmt.Errorf("re-read user: %w", err)
		}
		if len(users) == 0 {
			return fmt.Errorf("user %s vanished after insert", ident.Email)
		}
		user = users[0]

		identity := &types.UserIdentity{
			ID:            uuid.New(),
			UserID:        user.ID,
			Provider:      ident.Provider,
			ProviderSub:   ident.Sub,
			Email:         ident.Email,
			EmailVerified: ident.EmailVerified,
		}
		if err := as.identityRepo.CreateIgnoreConflicts(ctx, tx, []*types.UserIdentity{identity}); err != nil {
			return fmt.Errorf("create identity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The identity row is authoritative for which user won the race.
	final, err := as.identityRepo.GetByProviderSubs(ctx, nil, ident.Provider, []string{ident.Sub})
	if err != nil {
		return nil, fmt.Errorf("re-read identity: %w", err)
	}
	if len(final) > 0 && final[0].UserID != user.ID {
		users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{final[0].UserID})
		if err != nil || len(users) == 0 {
			return nil, fmt.Errorf("load race-winning user: %w", err)
		}
		user = users[0]
	}
	return user, nil
}

func (as *authService) ResolveSession(ctx context.Context, token string) (context.Context, error) {
	if token == "" {
		return nil, fmt.Errorf("missing session token: %w", xerrors.ErrUnauthorized)
	}
	sessions, err := as.sessionRepo.GetByTokens(ctx, nil, []string{token})
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(sessions) == 0 || sessions[0].ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("invalid or expired session: %w", xerrors.ErrUnauthorized)
	}
	s := sessions[0]
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:    s.UserID,
		SessionID: s.ID,
	}), nil
}

func (as *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", userID, xerrors.ErrUnauthorized)
	}
	return users[0], nil
}

func (as *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := as.sessionRepo.FullDeleteByUserIDs(ctx, nil, []uuid.UUID{userID}); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	as.log.Info("logout", "user_id", userID)
	return nil
}

func newSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
