package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/policy"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// ReviewService validates input and visibility before touching the review
// ledger. The ledger itself assumes ratings are already within bounds.
type ReviewService struct {
	reviews  ports.ReviewRepository
	recipes  ports.RecipeRepository
	activity ports.ActivityRepository
	log      zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, recipes ports.RecipeRepository, activity ports.ActivityRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, recipes: recipes, activity: activity, log: log}
}

func (s *ReviewService) Add(ctx context.Context, actor *domain.User, recipeID string, rating int, comment string) (*domain.Review, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	recipe, err := s.visibleRecipe(ctx, actor, recipeID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:             uuid.NewString(),
		RecipeID:       recipe.ID,
		AuthorUsername: actor.Username,
		Rating:         rating,
		Comment:        comment,
		CreatedAt:      time.Now().UTC(),
	}
	s.reviews.Add(ctx, review)
	s.activity.Record(ctx, actor.Username, domain.ActivityReviewAdded,
		fmt.Sprintf("Reviewed %q (%d/5)", recipe.Title, rating))

	s.log.Info().
		Str("recipe_id", recipe.ID).
		Str("author", actor.Username).
		Int("rating", rating).
		Msg("review added")

	return review, nil
}

func (s *ReviewService) ListByRecipe(ctx context.Context, actor *domain.User, recipeID string) ([]*domain.Review, error) {
	if _, err := s.visibleRecipe(ctx, actor, recipeID); err != nil {
		return nil, err
	}
	return s.reviews.ByRecipe(ctx, recipeID), nil
}

func (s *ReviewService) Rating(ctx context.Context, actor *domain.User, recipeID string) (*ports.RatingSummary, error) {
	if _, err := s.visibleRecipe(ctx, actor, recipeID); err != nil {
		return nil, err
	}

	avg, rated := s.reviews.AverageRating(ctx, recipeID)
	count := len(s.reviews.ByRecipe(ctx, recipeID))
	return &ports.RatingSummary{Average: avg, Count: count, Rated: rated}, nil
}

func (s *ReviewService) visibleRecipe(ctx context.Context, actor *domain.User, recipeID string) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, recipe) {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}
