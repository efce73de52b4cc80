package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// CreateRecipeInput carries all data needed to create a recipe.
// Approved is honored for admin actors only; contributor recipes always
// start unapproved regardless of the requested value.
type CreateRecipeInput struct {
	Title        string
	Ingredients  string
	Instructions string
	Approved     bool
}

// UpdateRecipeInput carries the content fields of a recipe edit. Nil fields
// are left untouched. Approval changes go through SetApproval, not here.
type UpdateRecipeInput struct {
	Title        *string
	Ingredients  *string
	Instructions *string
}

// ListRecipesFilter narrows a catalog listing. The zero value lists every
// recipe visible to the actor.
type ListRecipesFilter struct {
	// Author restricts the result to one author's recipes when non-empty.
	Author string
	// Query keeps only recipes whose title or ingredients contain the
	// text, matched case-insensitively.
	Query string
}

// RecipeService defines the use-case operations on the catalog. Every call
// takes the acting user explicitly; there is no session state.
type RecipeService interface {
	Create(ctx context.Context, actor *domain.User, input CreateRecipeInput) (*domain.Recipe, error)

	// List returns the recipes visible to actor that match the filter.
	List(ctx context.Context, actor *domain.User, filter ListRecipesFilter) []*domain.Recipe

	Get(ctx context.Context, actor *domain.User, id string) (*domain.Recipe, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateRecipeInput) (*domain.Recipe, error)
	SetApproval(ctx context.Context, actor *domain.User, id string, approved bool) (*domain.Recipe, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
