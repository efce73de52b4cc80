package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// ReviewRepository is the in-memory review ledger, keyed by recipe id.
type ReviewRepository struct {
	mu       sync.RWMutex
	byRecipe map[string][]*domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{byRecipe: make(map[string][]*domain.Review)}
}

func (r *ReviewRepository) Add(_ context.Context, review *domain.Review) {
	if review == nil || review.RecipeID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *review
	r.byRecipe[clone.RecipeID] = append(r.byRecipe[clone.RecipeID], &clone)
}

func (r *ReviewRepository) ByRecipe(_ context.Context, recipeID string) []*domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byRecipe[recipeID]
	out := make([]*domain.Review, 0, len(list))
	for _, rev := range list {
		clone := *rev
		out = append(out, &clone)
	}
	return out
}

func (r *ReviewRepository) AverageRating(_ context.Context, recipeID string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byRecipe[recipeID]
	if len(list) == 0 {
		return 0, false
	}
	sum := 0
	for _, rev := range list {
		sum += rev.Rating
	}
	return float64(sum) / float64(len(list)), true
}

func (r *ReviewRepository) TotalCount(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, list := range r.byRecipe {
		count += len(list)
	}
	return count
}

func (r *ReviewRepository) CountByAuthor(_ context.Context, username string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, list := range r.byRecipe {
		for _, rev := range list {
			if strings.EqualFold(rev.AuthorUsername, username) {
				count++
			}
		}
	}
	return count
}
