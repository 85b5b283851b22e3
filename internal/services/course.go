package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courserepos "github.com/yungbote/coursetube-backend/internal/data/repos/course"
	types "github.com/yungbote/coursetube-backend/internal/domain"
	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

// CoursePatch is a partial update; nil fields are left unchanged.
type CoursePatch struct {
	Title       *string
	Description *string
}

type CourseService interface {
	// CreateFromPlaylist ingests the playlist synchronously and persists the
	// course only after the full video list has been fetched. Nothing is
	// written when any part of the ingestion fails.
	CreateFromPlaylist(ctx context.Context, userID uuid.UUID, playlistURL string) (*types.Course, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Course, error)
	Get(ctx context.Context, userID, courseID uuid.UUID) (*types.Course, error)
	Update(ctx context.Context, userID, courseID uuid.UUID, patch CoursePatch) (*types.Course, error)
	// Delete removes the course and cascades to its progress and note rows
	// in one transaction.
	Delete(ctx context.Context, userID, courseID uuid.UUID) error
}

type courseService struct {
	db           *gorm.DB
	log          *logger.Logger
	youtube      YouTubeClient
	courseRepo   courserepos.CourseRepo
	progressRepo courserepos.ProgressRepo
	noteRepo     courserepos.NoteRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	youtube YouTubeClient,
	courseRepo courserepos.CourseRepo,
	progressRepo courserepos.ProgressRepo,
	noteRepo courserepos.NoteRepo,
) CourseService {
	return &courseService{
		db:           db,
		log:          baseLog.With("service", "CourseService"),
		youtube:      youtube,
		courseRepo:   courseRepo,
		progressRepo: progressRepo,
		noteRepo:     noteRepo,
	}
}

func (cs *courseService) CreateFromPlaylist(ctx context.Context, userID uuid.UUID, playlistURL string) (*types.Course, error) {
	playlistID, err := cs.youtube.ResolvePlaylistID(playlistURL)
	if err != nil {
		return nil, err
	}

	details, err := cs.youtube.GetPlaylistDetails(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	videos, err := cs.youtube.GetPlaylistVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	course := &types.Course{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        details.Title,
		Description:  details.Description,
		PlaylistID:   playlistID,
		PlaylistURL:  playlistURL,
		ThumbnailURL: details.ThumbnailURL,
		Videos:       datatypes.NewJSONSlice(videos),
	}
	if _, err := cs.courseRepo.Create(ctx, nil, []*types.Course{course}); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	cs.log.Info("course created", "user_id", userID, "playlist_id", playlistID, "videos", len(videos))
	return course, nil
}

func (cs *courseService) List(ctx context.Context, userID uuid.UUID) ([]*types.Course, error) {
	courses, err := cs.courseRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (cs *courseService) Get(ctx context.Context, userID, courseID uuid.UUID) (*types.Course, error) {
	courses, err := cs.courseRepo.GetForUser(ctx, nil, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("course %s: %w", courseID, xerrors.ErrNotFound)
	}
	return courses[0], nil
}

func (cs *courseService) Update(ctx context.Context, userID, courseID uuid.UUID, patch CoursePatch) (*types.Course, error) {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if len(fields) > 0 {
		affected, err := cs.courseRepo.UpdateFieldsForUser(ctx, nil, userID, courseID, fields)
		if err != nil {
			return nil, fmt.Errorf("update course: %w", err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("course %s: %w", courseID, xerrors.ErrNotFound)
		}
	}
	return cs.Get(ctx, userID, courseID)
}

func (cs *courseService) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := cs.courseRepo.FullDeleteForUser(ctx, tx, userID, courseID)
		if err != nil {
			return fmt.Errorf("delete course: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("course %s: %w", courseID, xerrors.ErrNotFound)
		}
		if err := cs.progressRepo.FullDeleteByCourseIDs(ctx, tx, []uuid.UUID{courseID}); err != nil {
			return fmt.Errorf("cascade progress: %w", err)
		}
		if err := cs.noteRepo.FullDeleteByCourseIDs(ctx, tx, []uuid.UUID{courseID}); err != nil {
			return fmt.Errorf("cascade notes: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cs.log.Info("course deleted", "user_id", userID, "course_id", courseID)
	return nil
}
