package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// RatingSummary is the aggregate rating view of a recipe. Rated is false
// when the recipe has no reviews, in which case Average is meaningless.
type RatingSummary struct {
	Average float64
	Count   int
	Rated   bool
}

type ReviewService interface {
	// Add validates the rating bounds and appends a review to a recipe
	// visible to the actor.
	Add(ctx context.Context, actor *domain.User, recipeID string, rating int, comment string) (*domain.Review, error)

	ListByRecipe(ctx context.Context, actor *domain.User, recipeID string) ([]*domain.Review, error)
	Rating(ctx context.Context, actor *domain.User, recipeID string) (*RatingSummary, error)
}
