package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/coursetube-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:    uuid.New(),
		Email: email,
		Name:  "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, videoIDs ...string) *types.Course {
	tb.Helper()
	videos := make([]types.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		videos = append(videos, types.Video{
			ID:          id,
			Title:       "video " + id,
			PublishedAt: "2024-01-01T00:00:00Z",
		})
	}
	c := &types.Course{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "course",
		PlaylistID:  "PLTEST",
		PlaylistURL: "https://www.youtube.com/playlist?list=PLTEST",
		Videos:      datatypes.NewJSONSlice(videos),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedNote(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID, videoID string, timestamp int, content string) *types.Note {
	tb.Helper()
	n := &types.Note{
		ID:        uuid.New(),
		UserID:    userID,
		CourseID:  courseID,
		VideoID:   videoID,
		Content:   content,
		Timestamp: timestamp,
	}
	if err := tx.WithContext(ctx).Create(n).Error; err != nil {
		tb.Fatalf("seed note: %v", err)
	}
	return n
}
