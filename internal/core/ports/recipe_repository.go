package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// RecipeRepository owns the recipe catalog. The catalog applies no
// visibility or authorization filtering of its own; that is the calling
// layer's responsibility via the policy package.
type RecipeRepository interface {
	// Add appends the recipe. Titles are not unique.
	Add(ctx context.Context, recipe *domain.Recipe)

	// Remove deletes the recipe by id. No-op when absent.
	Remove(ctx context.Context, id string)

	// All returns a snapshot copy of every recipe in insertion order.
	All(ctx context.Context) []*domain.Recipe

	// ByAuthor returns a snapshot of the recipes whose author matches
	// username case-insensitively, in insertion order.
	ByAuthor(ctx context.Context, username string) []*domain.Recipe

	// FindByID returns a copy of the recipe or domain.ErrRecipeNotFound.
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)

	// Update overwrites the stored recipe's mutable fields with those of
	// recipe, matched by id. Returns domain.ErrRecipeNotFound when absent.
	Update(ctx context.Context, recipe *domain.Recipe) error
}
