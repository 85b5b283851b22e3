package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courserepos "github.com/yungbote/coursetube-backend/internal/data/repos/course"
	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type ProgressInput struct {
	CourseID     uuid.UUID
	VideoID      string
	Watched      bool
	WatchTime    int
	LastPosition int
}

type ProgressService interface {
	Upsert(ctx context.Context, userID uuid.UUID, input ProgressInput) (*types.Progress, error)
	// MapForCourse has one entry per video with at least one progress write;
	// videos never started are simply absent.
	MapForCourse(ctx context.Context, userID, courseID uuid.UUID) (map[string]*types.Progress, error)
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo courserepos.ProgressRepo
}

func NewProgressService(db *gorm.DB, baseLog *logger.Logger, progressRepo courserepos.ProgressRepo) ProgressService {
	return &progressService{
		db:           db,
		log:          baseLog.With("service", "ProgressService"),
		progressRepo: progressRepo,
	}
}

func (ps *progressService) Upsert(ctx context.Context, userID uuid.UUID, input ProgressInput) (*types.Progress, error) {
	row := &types.Progress{
		ID:           uuid.New(),
		UserID:       userID,
		CourseID:     input.CourseID,
		VideoID:      input.VideoID,
		Watched:      input.Watched,
		WatchTime:    input.WatchTime,
		LastPosition: input.LastPosition,
	}
	out, err := ps.progressRepo.Upsert(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	return out, nil
}

func (ps *progressService) MapForCourse(ctx context.Context, userID, courseID uuid.UUID) (map[string]*types.Progress, error) {
	rows, err := ps.progressRepo.GetByCourseForUser(ctx, nil, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	out := make(map[string]*types.Progress, len(rows))
	for _, row := range rows {
		out[row.VideoID] = row
	}
	return out, nil
}
