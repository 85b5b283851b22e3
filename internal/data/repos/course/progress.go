package course

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type ProgressRepo interface {
	// Upsert writes against the (user_id, course_id, video_id) unique index
	// atomically; concurrent writers for the same key serialize in the
	// database, never in application code.
	Upsert(ctx context.Context, tx *gorm.DB, p *types.Progress) (*types.Progress, error)
	GetByCourseForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.Progress, error)
	FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) Upsert(ctx context.Context, tx *gorm.DB, p *types.Progress) (*types.Progress, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	p.UpdatedAt = time.Now()
	if err := txx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "course_id"},
				{Name: "video_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"watched", "watch_time", "last_position", "updated_at",
			}),
		}).
		Create(p).Error; err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row (id and created_at come
	// from the original insert when the write hit the conflict path).
	var out []*types.Progress
	if err := txx.WithContext(ctx).
		Where("user_id = ? AND course_id = ? AND video_id = ?", p.UserID, p.CourseID, p.VideoID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return p, nil
	}
	return out[0], nil
}

func (r *progressRepo) GetByCourseForUser(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.Progress, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Progress
	if err := txx.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *progressRepo) FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(courseIDs) == 0 {
		return nil
	}
	return txx.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Delete(&types.Progress{}).Error
}
