package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

type FavoriteService interface {
	// Add marks a recipe visible to the actor as a favorite. Idempotent.
	Add(ctx context.Context, actor *domain.User, recipeID string) error

	// Remove unmarks a favorite. Idempotent, no-op when absent.
	Remove(ctx context.Context, actor *domain.User, recipeID string) error

	// List resolves the actor's favorites to recipes still visible to them.
	List(ctx context.Context, actor *domain.User) []*domain.Recipe

	IsFavorite(ctx context.Context, actor *domain.User, recipeID string) bool
}
