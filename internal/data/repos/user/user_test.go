package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/data/repos/testutil"
	types "github.com/yungbote/coursetube-backend/internal/domain"
)

func TestUserRepo_CreateIgnoreConflicts_DeduplicatesByEmail(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	first := &types.User{ID: uuid.New(), Email: "dup@example.com", Name: "First"}
	if err := repo.CreateIgnoreConflicts(ctx, tx, []*types.User{first}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	second := &types.User{ID: uuid.New(), Email: "dup@example.com", Name: "Second"}
	if err := repo.CreateIgnoreConflicts(ctx, tx, []*types.User{second}); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	got, err := repo.GetByEmails(ctx, tx, []string{"dup@example.com"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one user row, got %d", len(got))
	}
	if got[0].ID != first.ID || got[0].Name != "First" {
		t.Fatalf("first writer should win: %#v", got[0])
	}
}

func TestUserRepo_UpdateProfile_SkipsEmptyValues(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	seeded := testutil.SeedUser(t, ctx, tx, "profile@example.com")

	if err := repo.UpdateProfile(ctx, tx, seeded.ID, "Renamed", ""); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{seeded.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("re-read: %v (%d rows)", err, len(got))
	}
	if got[0].Name != "Renamed" {
		t.Fatalf("name not updated: %q", got[0].Name)
	}
}
