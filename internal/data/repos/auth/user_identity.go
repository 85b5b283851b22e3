package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type UserIdentityRepo interface {
	// CreateIgnoreConflicts inserts identities and skips rows that lose the
	// race on (provider, provider_sub). The caller re-reads afterwards to
	// learn which user the identity is bound to.
	CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, ids []*types.UserIdentity) error
	GetByProviderSubs(ctx context.Context, tx *gorm.DB, provider string, subs []string) ([]*types.UserIdentity, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserIdentity, error)
}

type userIdentityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserIdentityRepo(db *gorm.DB, baseLog *logger.Logger) UserIdentityRepo {
	return &userIdentityRepo{db: db, log: baseLog.With("repo", "UserIdentityRepo")}
}

func (r *userIdentityRepo) CreateIgnoreConflicts(ctx context.Context, tx *gorm.DB, ids []*types.UserIdentity) error {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return txx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_sub"}},
			DoNothing: true,
		}).
		Create(&ids).Error
}

func (r *userIdentityRepo) GetByProviderSubs(ctx context.Context, tx *gorm.DB, provider string, subs []string) ([]*types.UserIdentity, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.UserIdentity
	if len(subs) == 0 {
		return out, nil
	}
	if err := txx.WithContext(ctx).
		Where("provider = ? AND provider_sub IN ?", provider, subs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userIdentityRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserIdentity, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.UserIdentity
	if len(userIDs) == 0 {
		return out, nil
	}
	if err := txx.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
