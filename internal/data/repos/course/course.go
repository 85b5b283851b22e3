package course

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error)
	// GetForUser scopes the lookup to the owner; a course owned by someone
	// else is indistinguishable from a missing one (empty result).
	GetForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.Course, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Course, error)
	UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID, fields map[string]interface{}) (int64, error)
	FullDeleteForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) (int64, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(courses) == 0 {
		return []*types.Course{}, nil
	}
	if err := txx.WithContext(ctx).Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.Course, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Course
	if err := txx.WithContext(ctx).
		Where("id = ? AND user_id = ?", courseID, userID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Course, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Course
	if len(userIDs) == 0 {
		return out, nil
	}
	if err := txx.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID, fields map[string]interface{}) (int64, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(fields) == 0 {
		return 0, nil
	}
	res := txx.WithContext(ctx).
		Model(&types.Course{}).
		Where("id = ? AND user_id = ?", courseID, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *courseRepo) FullDeleteForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) (int64, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(ctx).
		Where("id = ? AND user_id = ?", courseID, userID).
		Delete(&types.Course{})
	return res.RowsAffected, res.Error
}
