package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// RecipeRepository is the in-memory catalog. Reads hand out copies so no
// caller ever holds a reference into the guarded collection; edits come
// back through Update.
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe
	byID    map[string]*domain.Recipe
}

func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{byID: make(map[string]*domain.Recipe)}
}

func (r *RecipeRepository) Add(_ context.Context, recipe *domain.Recipe) {
	if recipe == nil || recipe.ID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.byID[recipe.ID]; dup {
		return
	}
	clone := *recipe
	r.recipes = append(r.recipes, &clone)
	r.byID[clone.ID] = &clone
}

func (r *RecipeRepository) Remove(_ context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, rec := range r.recipes {
		if rec.ID == id {
			r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
			break
		}
	}
}

func (r *RecipeRepository) All(_ context.Context) []*domain.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		clone := *rec
		out = append(out, &clone)
	}
	return out
}

func (r *RecipeRepository) ByAuthor(_ context.Context, username string) []*domain.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Recipe
	for _, rec := range r.recipes {
		if strings.EqualFold(rec.AuthorUsername, username) {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out
}

func (r *RecipeRepository) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *RecipeRepository) Update(_ context.Context, recipe *domain.Recipe) error {
	if recipe == nil {
		return domain.ErrRecipeNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[recipe.ID]
	if !ok {
		return domain.ErrRecipeNotFound
	}
	stored.Title = recipe.Title
	stored.Ingredients = recipe.Ingredients
	stored.Instructions = recipe.Instructions
	stored.Approved = recipe.Approved
	stored.UpdatedAt = recipe.UpdatedAt
	return nil
}
