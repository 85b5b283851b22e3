package course

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error)
	GetForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) ([]*types.Note, error)
	// GetByVideoForUser returns notes ordered by timestamp marker, ties
	// broken by creation time.
	GetByVideoForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, videoID string) ([]*types.Note, error)
	UpdateContentForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, content string) (int64, error)
	FullDeleteForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) (int64, error)
	FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	return &noteRepo{db: db, log: baseLog.With("repo", "NoteRepo")}
}

func (r *noteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(notes) == 0 {
		return []*types.Note{}, nil
	}
	if err := txx.WithContext(ctx).Create(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) ([]*types.Note, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Note
	if err := txx.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *noteRepo) GetByVideoForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, videoID string) ([]*types.Note, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	var out []*types.Note
	if err := txx.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Order("timestamp ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *noteRepo) UpdateContentForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID, content string) (int64, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(ctx).
		Model(&types.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Update("content", content)
	return res.RowsAffected, res.Error
}

func (r *noteRepo) FullDeleteForUser(ctx context.Context, tx *gorm.DB, userID, noteID uuid.UUID) (int64, error) {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	res := txx.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&types.Note{})
	return res.RowsAffected, res.Error
}

func (r *noteRepo) FullDeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) error {
	txx := tx
	if txx == nil {
		txx = r.db
	}
	if len(courseIDs) == 0 {
		return nil
	}
	return txx.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Delete(&types.Note{}).Error
}
