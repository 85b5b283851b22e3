package course

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/data/repos/testutil"
	types "github.com/yungbote/coursetube-backend/internal/domain"
)

func TestProgressRepo_Upsert_SecondWriteWins(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewProgressRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "watcher@example.com")
	course := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")

	first, err := repo.Upsert(ctx, tx, &types.Progress{
		ID:           uuid.New(),
		UserID:       user.ID,
		CourseID:     course.ID,
		VideoID:      "v1",
		Watched:      false,
		WatchTime:    30,
		LastPosition: 30,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, tx, &types.Progress{
		ID:           uuid.New(),
		UserID:       user.ID,
		CourseID:     course.ID,
		VideoID:      "v1",
		Watched:      true,
		WatchTime:    120,
		LastPosition: 95,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert created a second row: %s vs %s", second.ID, first.ID)
	}
	if !second.Watched || second.WatchTime != 120 || second.LastPosition != 95 {
		t.Fatalf("second write did not win: %#v", second)
	}

	rows, err := repo.GetByCourseForUser(ctx, tx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one progress row, got %d", len(rows))
	}
}

func TestProgressRepo_GetByCourseForUser_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewProgressRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "a@example.com")
	other := testutil.SeedUser(t, ctx, tx, "b@example.com")
	course := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")

	if _, err := repo.Upsert(ctx, tx, &types.Progress{
		ID:       uuid.New(),
		UserID:   user.ID,
		CourseID: course.ID,
		VideoID:  "v1",
		Watched:  true,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := repo.GetByCourseForUser(ctx, tx, other.ID, course.ID)
	if err != nil {
		t.Fatalf("list for other user: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows for other user, got %d", len(rows))
	}
}

func TestProgressRepo_FullDeleteByCourseIDs(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewProgressRepo(tx, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "c@example.com")
	courseA := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")
	courseB := testutil.SeedCourse(t, ctx, tx, user.ID, "v1")

	for _, courseID := range []uuid.UUID{courseA.ID, courseB.ID} {
		if _, err := repo.Upsert(ctx, tx, &types.Progress{
			ID:       uuid.New(),
			UserID:   user.ID,
			CourseID: courseID,
			VideoID:  "v1",
		}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	if err := repo.FullDeleteByCourseIDs(ctx, tx, []uuid.UUID{courseA.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rows, err := repo.GetByCourseForUser(ctx, tx, user.ID, courseA.ID)
	if err != nil || len(rows) != 0 {
		t.Fatalf("course A progress should be gone: %v (%d rows)", err, len(rows))
	}
	rows, err = repo.GetByCourseForUser(ctx, tx, user.ID, courseB.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("course B progress should survive: %v (%d rows)", err, len(rows))
	}
}
