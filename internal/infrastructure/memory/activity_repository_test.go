package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

func TestActivityRepository_RecentFor(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()

	for i := 0; i < 5; i++ {
		repo.Record(ctx, "Alice", domain.ActivityRecipeCreated, fmt.Sprintf("event %d", i))
	}
	repo.Record(ctx, "bob", domain.ActivityReviewAdded, "bob's event")

	got := repo.RecentFor(ctx, "alice", 3)
	if len(got) != 3 {
		t.Fatalf("expected max entries honored, got %d", len(got))
	}
	// The three newest alice entries, oldest first.
	for i, want := range []string{"event 2", "event 3", "event 4"} {
		if got[i].Description != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].Description)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.Before(got[i-1].Timestamp) {
			t.Fatalf("entries not in ascending time order")
		}
	}
}

func TestActivityRepository_FiltersByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()
	repo.Record(ctx, "alice", domain.ActivityRecipeCreated, "hers")
	repo.Record(ctx, "bob", domain.ActivityRecipeCreated, "his")

	got := repo.RecentFor(ctx, "ALICE", 10)
	if len(got) != 1 || got[0].Description != "hers" {
		t.Fatalf("expected only alice's entries, got %+v", got)
	}
}

func TestActivityRepository_UnknownOrEmptyUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository()
	repo.Record(ctx, "alice", domain.ActivityRecipeCreated, "x")

	if got := repo.RecentFor(ctx, "ghost", 10); len(got) != 0 {
		t.Fatalf("expected no entries for unknown user, got %d", len(got))
	}
	if got := repo.RecentFor(ctx, "", 10); len(got) != 0 {
		t.Fatalf("expected no entries for empty username, got %d", len(got))
	}
}
