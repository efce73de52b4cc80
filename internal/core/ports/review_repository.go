package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// ReviewRepository is the append-only ledger of reviews, keyed by recipe id.
type ReviewRepository interface {
	// Add appends the review to its recipe's list, creating the list on
	// first use.
	Add(ctx context.Context, review *domain.Review)

	// ByRecipe returns a snapshot of the recipe's reviews in insertion
	// order; empty when there are none.
	ByRecipe(ctx context.Context, recipeID string) []*domain.Review

	// AverageRating returns the arithmetic mean of the recipe's ratings.
	// The second return is false when the recipe has no reviews yet.
	AverageRating(ctx context.Context, recipeID string) (float64, bool)

	// TotalCount sums review counts across all recipes.
	TotalCount(ctx context.Context) int

	// CountByAuthor counts reviews across all recipes whose author matches
	// username case-insensitively.
	CountByAuthor(ctx context.Context, username string) int
}
