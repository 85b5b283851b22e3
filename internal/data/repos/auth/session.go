package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sessions []*types.Session) ([]*types.Session, error)
	GetByTokens(ctx context.Context, tx *gorm.DB, tokens []string) ([]*types.Session, error)
	FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error
	FullDeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	return &sessionRepo{db: db, log: baseLog.With("repo", "SessionRepo")}
}

func (r *sessionRepo) Create(ctx context.Context, tx *gorm.DB, sessions []*types.Session) ([]*types.Session, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(sessions) == 0 {
		return []*types.Session{}, nil
	}
	if err := txx.WithContext(ctx).Create(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) GetByTokens(ctx context.Context, tx *gorm.DB, tokens []string) ([]*types.Session, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Session
	if len(tokens) == 0 {
		return out, nil
	}
	if err := txx.WithContext(ctx).
		Where("token IN ?", tokens).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sessionRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(userIDs) == 0 {
		return nil
	}
	return txx.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Delete(&types.Session{}).Error
}

func (r *sessionRepo) FullDeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) error {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&types.Session{}).Error
}
