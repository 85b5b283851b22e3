package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courserepos "github.com/yungbote/coursetube-backend/internal/data/repos/course"
	types "github.com/yungbote/coursetube-backend/internal/domain"
	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type NoteInput struct {
	CourseID  uuid.UUID
	VideoID   string
	Content   string
	Timestamp int
}

type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, input NoteInput) (*types.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, content string) (*types.Note, error)
	ListForVideo(ctx context.Context, userID uuid.UUID, videoID string) ([]*types.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

type noteService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo courserepos.NoteRepo
}

func NewNoteService(db *gorm.DB, baseLog *logger.Logger, noteRepo courserepos.NoteRepo) NoteService {
	return &noteService{
		db:       db,
		log:      baseLog.With("service", "NoteService"),
		noteRepo: noteRepo,
	}
}

func (ns *noteService) Create(ctx context.Context, userID uuid.UUID, input NoteInput) (*types.Note, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("note content required: %w", xerrors.ErrInvalidArgument)
	}
	note := &types.Note{
		ID:        uuid.New(),
		UserID:    userID,
		CourseID:  input.CourseID,
		VideoID:   input.VideoID,
		Content:   input.Content,
		Timestamp: input.Timestamp,
	}
	if _, err := ns.noteRepo.Create(ctx, nil, []*types.Note{note}); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

func (ns *noteService) Update(ctx context.Context, userID, noteID uuid.UUID, content string) (*types.Note, error) {
	if content == "" {
		return nil, fmt.Errorf("note content required: %w", xerrors.ErrInvalidArgument)
	}
	affected, err := ns.noteRepo.UpdateContentForUser(ctx, nil, userID, noteID, content)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("note %s: %w", noteID, xerrors.ErrNotFound)
	}
	notes, err := ns.noteRepo.GetForUser(ctx, nil, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("re-read note: %w", err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("note %s: %w", noteID, xerrors.ErrNotFound)
	}
	return notes[0], nil
}

func (ns *noteService) ListForVideo(ctx context.Context, userID uuid.UUID, videoID string) ([]*types.Note, error) {
	notes, err := ns.noteRepo.GetByVideoForUser(ctx, nil, userID, videoID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (ns *noteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	affected, err := ns.noteRepo.FullDeleteForUser(ctx, nil, userID, noteID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", noteID, xerrors.ErrNotFound)
	}
	return nil
}
