package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/policy"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// RecipeService applies the catalog's authorization policy around the
// repository and records activity after each successful mutation.
type RecipeService struct {
	recipes  ports.RecipeRepository
	activity ports.ActivityRepository
	log      zerolog.Logger
}

func NewRecipeService(recipes ports.RecipeRepository, activity ports.ActivityRepository, log zerolog.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, activity: activity, log: log}
}

func (s *RecipeService) Create(ctx context.Context, actor *domain.User, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	if !policy.CanCreate(actor) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	recipe := &domain.Recipe{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Ingredients:    input.Ingredients,
		Instructions:   input.Instructions,
		AuthorUsername: actor.Username,
		Approved:       policy.InitialApproval(actor, input.Approved),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.recipes.Add(ctx, recipe)
	s.activity.Record(ctx, actor.Username, domain.ActivityRecipeCreated,
		fmt.Sprintf("Created recipe %q", recipe.Title))

	s.log.Info().
		Str("recipe_id", recipe.ID).
		Str("author", actor.Username).
		Bool("approved", recipe.Approved).
		Msg("recipe created")

	return recipe, nil
}

func (s *RecipeService) List(ctx context.Context, actor *domain.User, filter ports.ListRecipesFilter) []*domain.Recipe {
	var all []*domain.Recipe
	if filter.Author != "" {
		all = s.recipes.ByAuthor(ctx, filter.Author)
	} else {
		all = s.recipes.All(ctx)
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	visible := make([]*domain.Recipe, 0, len(all))
	for _, r := range all {
		if !policy.CanView(actor, r) {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

// matchesQuery searches the title and ingredients as one lower-cased text,
// so a query may span the boundary between them.
func matchesQuery(r *domain.Recipe, query string) bool {
	haystack := strings.ToLower(r.Title + " " + r.Ingredients)
	return strings.Contains(haystack, query)
}

func (s *RecipeService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Hidden recipes are indistinguishable from absent ones.
	if !policy.CanView(actor, recipe) {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *RecipeService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateRecipeInput) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEdit(actor, recipe) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Ingredients != nil {
		recipe.Ingredients = *input.Ingredients
	}
	if input.Instructions != nil {
		recipe.Instructions = *input.Instructions
	}
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actor.Username, domain.ActivityRecipeUpdated,
		fmt.Sprintf("Updated recipe %q", recipe.Title))

	s.log.Info().Str("recipe_id", recipe.ID).Str("actor", actor.Username).Msg("recipe updated")
	return recipe, nil
}

func (s *RecipeService) SetApproval(ctx context.Context, actor *domain.User, id string, approved bool) (*domain.Recipe, error) {
	if !policy.CanApprove(actor) {
		return nil, domain.ErrForbidden
	}

	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Approved = approved
	recipe.UpdatedAt = time.Now().UTC()
	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}

	state := "approved"
	if !approved {
		state = "unapproved"
	}
	s.activity.Record(ctx, actor.Username, domain.ActivityRecipeUpdated,
		fmt.Sprintf("Marked recipe %q as %s", recipe.Title, state))

	s.log.Info().Str("recipe_id", recipe.ID).Bool("approved", approved).Msg("recipe approval changed")
	return recipe, nil
}

func (s *RecipeService) Delete(ctx context.Context, actor *domain.User, id string) error {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(actor, recipe) {
		return domain.ErrForbidden
	}

	s.recipes.Remove(ctx, id)
	s.activity.Record(ctx, actor.Username, domain.ActivityRecipeDeleted,
		fmt.Sprintf("Deleted recipe %q", recipe.Title))

	s.log.Info().Str("recipe_id", id).Str("actor", actor.Username).Msg("recipe deleted")
	return nil
}
