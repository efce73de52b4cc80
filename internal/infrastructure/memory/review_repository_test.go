package memory

import (
	"context"
	"math"
	"testing"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

func TestReviewRepository_AverageRating(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()

	if _, rated := repo.AverageRating(ctx, "r1"); rated {
		t.Fatalf("recipe without reviews must be unrated")
	}

	for _, rating := range []int{5, 3, 4} {
		repo.Add(ctx, &domain.Review{ID: "rev", RecipeID: "r1", AuthorUsername: "alice", Rating: rating})
	}

	avg, rated := repo.AverageRating(ctx, "r1")
	if !rated {
		t.Fatalf("expected rated recipe")
	}
	if avg != 4.0 {
		t.Fatalf("expected average 4.0, got %v", avg)
	}

	reviews := repo.ByRecipe(ctx, "r1")
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	for i, want := range []int{5, 3, 4} {
		if reviews[i].Rating != want {
			t.Fatalf("position %d: expected rating %d, got %d", i, want, reviews[i].Rating)
		}
	}
}

func TestReviewRepository_Counts(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()
	repo.Add(ctx, &domain.Review{RecipeID: "r1", AuthorUsername: "Alice", Rating: 2})
	repo.Add(ctx, &domain.Review{RecipeID: "r1", AuthorUsername: "bob", Rating: 4})
	repo.Add(ctx, &domain.Review{RecipeID: "r2", AuthorUsername: "ALICE", Rating: 4})

	if got := repo.TotalCount(ctx); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}
	if got := repo.CountByAuthor(ctx, "alice"); got != 2 {
		t.Fatalf("expected 2 reviews by alice across recipes, got %d", got)
	}
	if got := repo.CountByAuthor(ctx, "nobody"); got != 0 {
		t.Fatalf("expected 0 for unknown author, got %d", got)
	}
}

func TestReviewRepository_MultipleReviewsPerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()

	// No uniqueness constraint on (user, recipe).
	repo.Add(ctx, &domain.Review{RecipeID: "r1", AuthorUsername: "alice", Rating: 2})
	repo.Add(ctx, &domain.Review{RecipeID: "r1", AuthorUsername: "alice", Rating: 5})

	avg, _ := repo.AverageRating(ctx, "r1")
	if math.Abs(avg-3.5) > 1e-9 {
		t.Fatalf("expected average 3.5, got %v", avg)
	}
}

func TestReviewRepository_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()
	repo.Add(ctx, &domain.Review{RecipeID: "r1", AuthorUsername: "alice", Rating: 3, Comment: "fine"})

	snapshot := repo.ByRecipe(ctx, "r1")
	snapshot[0].Comment = "edited"

	if repo.ByRecipe(ctx, "r1")[0].Comment != "fine" {
		t.Fatalf("mutating a snapshot leaked into the ledger")
	}
}
