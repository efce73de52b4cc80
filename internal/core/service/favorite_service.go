package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/policy"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// FavoriteService wraps the favorites index with visibility checks and
// activity recording. Activity follows the repository's changed report,
// which is decided under its lock, so repeated or concurrent identical
// toggles record at most one entry per state change.
type FavoriteService struct {
	favorites ports.FavoriteRepository
	recipes   ports.RecipeRepository
	activity  ports.ActivityRepository
	log       zerolog.Logger
}

func NewFavoriteService(favorites ports.FavoriteRepository, recipes ports.RecipeRepository, activity ports.ActivityRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, recipes: recipes, activity: activity, log: log}
}

func (s *FavoriteService) Add(ctx context.Context, actor *domain.User, recipeID string) error {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if !policy.CanView(actor, recipe) {
		return domain.ErrRecipeNotFound
	}

	if !s.favorites.Add(ctx, actor.Username, recipeID) {
		return nil
	}
	s.activity.Record(ctx, actor.Username, domain.ActivityFavoriteToggled,
		fmt.Sprintf("Added %q to favourites", recipe.Title))
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, actor *domain.User, recipeID string) error {
	if !s.favorites.Remove(ctx, actor.Username, recipeID) {
		return nil
	}

	description := "Removed a recipe from favourites"
	if recipe, err := s.recipes.FindByID(ctx, recipeID); err == nil {
		description = fmt.Sprintf("Removed %q from favourites", recipe.Title)
	}
	s.activity.Record(ctx, actor.Username, domain.ActivityFavoriteToggled, description)
	return nil
}

// List resolves favorite ids to recipes, dropping entries whose recipe has
// been deleted or is no longer visible to the actor.
func (s *FavoriteService) List(ctx context.Context, actor *domain.User) []*domain.Recipe {
	if actor == nil {
		return nil
	}

	ids := s.favorites.ByUser(ctx, actor.Username)
	out := make([]*domain.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, err := s.recipes.FindByID(ctx, id)
		if err != nil {
			continue
		}
		if policy.CanView(actor, recipe) {
			out = append(out, recipe)
		}
	}
	return out
}

func (s *FavoriteService) IsFavorite(ctx context.Context, actor *domain.User, recipeID string) bool {
	if actor == nil {
		return false
	}
	return s.favorites.IsFavorite(ctx, actor.Username, recipeID)
}
