package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courserepos "github.com/yungbote/coursetube-backend/internal/data/repos/course"
	"github.com/yungbote/coursetube-backend/internal/data/repos/testutil"
	types "github.com/yungbote/coursetube-backend/internal/domain"
	xerrors "github.com/yungbote/coursetube-backend/internal/pkg/errors"
)

type fakeYouTube struct {
	playlistID string
	details    *PlaylistDetails
	videos     []types.Video
	videosErr  error
}

func (f *fakeYouTube) ResolvePlaylistID(rawURL string) (string, error) {
	return f.playlistID, nil
}

func (f *fakeYouTube) GetPlaylistDetails(ctx context.Context, playlistID string) (*PlaylistDetails, error) {
	return f.details, nil
}

func (f *fakeYouTube) GetPlaylistVideos(ctx context.Context, playlistID string) ([]types.Video, error) {
	if f.videosErr != nil {
		return nil, f.videosErr
	}
	return f.videos, nil
}

func newTestCourseService(tb testing.TB, tx *gorm.DB, yt YouTubeClient) CourseService {
	tb.Helper()
	log := testutil.Logger(tb)
	return NewCourseService(
		tx,
		log,
		yt,
		courserepos.NewCourseRepo(tx, log),
		courserepos.NewProgressRepo(tx, log),
		courserepos.NewNoteRepo(tx, log),
	)
}

func TestCourseService_CreateFromPlaylist(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	yt := &fakeYouTube{
		playlistID: "PLgo",
		details: &PlaylistDetails{
			Title:        "Go from Zero",
			Description:  "a lecture series",
			ThumbnailURL: "http://img/playlist.jpg",
		},
		videos: []types.Video{
			{ID: "v1", Title: "Intro", PublishedAt: "2024-01-01T00:00:00Z"},
			{ID: "v2", Title: "Types", PublishedAt: "2024-01-02T00:00:00Z"},
		},
	}
	svc := newTestCourseService(t, tx, yt)
	user := testutil.SeedUser(t, ctx, tx, "creator@example.com")

	course, err := svc.CreateFromPlaylist(ctx, user.ID, "https://www.youtube.com/playlist?list=PLgo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.Title != "Go from Zero" || course.PlaylistID != "PLgo" {
		t.Fatalf("metadata not mapped: %#v", course)
	}
	if len(course.Videos) != 2 || course.Videos[0].ID != "v1" || course.Videos[1].ID != "v2" {
		t.Fatalf("videos out of order: %#v", course.Videos)
	}

	got, err := svc.Get(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if got.ThumbnailURL != "http://img/playlist.jpg" {
		t.Fatalf("thumbnail not persisted: %q", got.ThumbnailURL)
	}
}

func TestCourseService_CreateFromPlaylist_NoWriteOnFailedFetch(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	yt := &fakeYouTube{
		playlistID: "PLbroken",
		details:    &PlaylistDetails{Title: "Broken"},
		videosErr:  xerrors.ErrUpstream,
	}
	svc := newTestCourseService(t, tx, yt)
	user := testutil.SeedUser(t, ctx, tx, "failed@example.com")

	if _, err := svc.CreateFromPlaylist(ctx, user.ID, "list=PLbroken"); !errors.Is(err, xerrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	courses, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("nothing should be persisted on failed ingestion, got %d courses", len(courses))
	}
}

func TestCourseService_GetForeignCourseIsNotFound(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newTestCourseService(t, tx, &fakeYouTube{})

	owner := testutil.SeedUser(t, ctx, tx, "own@example.com")
	stranger := testutil.SeedUser(t, ctx, tx, "stranger@example.com")
	course := testutil.SeedCourse(t, ctx, tx, owner.ID, "v1")

	if _, err := svc.Get(ctx, stranger.ID, course.ID); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("foreign course must read as not found, got %v", err)
	}
	if _, err := svc.Update(ctx, stranger.ID, course.ID, CoursePatch{Title: strPtr("x")}); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("foreign update must read as not found, got %v", err)
	}
	if err := svc.Delete(ctx, stranger.ID, course.ID); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("foreign delete must read as not found, got %v", err)
	}
}

func TestCourseService_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newTestCourseService(t, tx, &fakeYouTube{})

	user := testutil.SeedUser(t, ctx, tx, "patch@example.com")
	course := testutil.SeedCourse(t, ctx, tx, user.ID)

	got, err := svc.Update(ctx, user.ID, course.ID, CoursePatch{Title: strPtr("New Title")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "New Title" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.Description != course.Description {
		t.Fatalf("description should be untouched: %q", got.Description)
	}
}

func TestCourseService_DeleteCascadesProgressAndNotes(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	svc := newTestCourseService(t, tx, &fakeYouTube{})

	user := testutil.SeedUser(t, ctx, tx, "cascade@example.com")
	doomed := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")
	kept := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")

	progressRepo := courserepos.NewProgressRepo(tx, log)
	for _, courseID := range []uuid.UUID{doomed.ID, kept.ID} {
		if _, err := progressRepo.Upsert(ctx, tx, &types.Progress{
			ID:       uuid.New(),
			UserID:   user.ID,
			CourseID: courseID,
			VideoID:  "v1",
			Watched:  true,
		}); err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}
	testutil.SeedNote(t, ctx, tx, user.ID, doomed.ID, "v1", 10, "doomed note")
	keptNote := testutil.SeedNote(t, ctx, tx, user.ID, kept.ID, "v1", 20, "kept note")

	if err := svc.Delete(ctx, user.ID, doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(ctx, user.ID, doomed.ID); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("course should be gone, got %v", err)
	}

	var progressCount int64
	if err := tx.Model(&types.Progress{}).Where("course_id = ?", doomed.ID).Count(&progressCount).Error; err != nil {
		t.Fatalf("count progress: %v", err)
	}
	if progressCount != 0 {
		t.Fatalf("progress rows survived the cascade: %d", progressCount)
	}
	var noteCount int64
	if err := tx.Model(&types.Note{}).Where("course_id = ?", doomed.ID).Count(&noteCount).Error; err != nil {
		t.Fatalf("count notes: %v", err)
	}
	if noteCount != 0 {
		t.Fatalf("note rows survived the cascade: %d", noteCount)
	}

	// The sibling course keeps its rows.
	noteRepo := courserepos.NewNoteRepo(tx, log)
	notes, err := noteRepo.GetByVideoForUser(ctx, tx, user.ID, "v1")
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != keptNote.ID {
		t.Fatalf("sibling course notes should survive: %#v", notes)
	}
}

func strPtr(s string) *string { return &s }
