package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
	"github.com/recipehub/recipe-platform/internal/infrastructure/memory"
)

type favoriteEnv struct {
	recipes   *memory.RecipeRepository
	favorites *memory.FavoriteRepository
	activity  *memory.ActivityRepository
	svc       *FavoriteService
}

func newFavoriteEnv(t *testing.T) *favoriteEnv {
	t.Helper()
	recipes := memory.NewRecipeRepository()
	favorites := memory.NewFavoriteRepository()
	activity := memory.NewActivityRepository()
	memory.Seed(context.Background(), memory.NewUserRepository(), recipes)
	return &favoriteEnv{
		recipes:   recipes,
		favorites: favorites,
		activity:  activity,
		svc:       NewFavoriteService(favorites, recipes, activity, zerolog.Nop()),
	}
}

func TestFavoriteService_AddIsIdempotentAndRecordsOnce(t *testing.T) {
	ctx := context.Background()
	env := newFavoriteEnv(t)
	target := env.recipes.All(ctx)[0]

	if err := env.svc.Add(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := env.svc.Add(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("repeated add: %v", err)
	}

	favs := env.svc.List(ctx, explorerUser)
	if len(favs) != 1 || favs[0].ID != target.ID {
		t.Fatalf("expected exactly one favorite, got %+v", favs)
	}
	if !env.svc.IsFavorite(ctx, explorerUser, target.ID) {
		t.Fatalf("expected IsFavorite true")
	}

	// Only the state change produced an activity entry.
	history := env.activity.RecentFor(ctx, "explorer", 10)
	if len(history) != 1 || history[0].Type != domain.ActivityFavoriteToggled {
		t.Fatalf("expected one favorite_toggled entry, got %+v", history)
	}
}

func TestFavoriteService_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newFavoriteEnv(t)
	target := env.recipes.All(ctx)[0]

	if err := env.svc.Add(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := env.svc.Remove(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := env.svc.Remove(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("repeated remove must be a no-op: %v", err)
	}

	if got := len(env.svc.List(ctx, explorerUser)); got != 0 {
		t.Fatalf("expected no favorites, got %d", got)
	}
	history := env.activity.RecentFor(ctx, "explorer", 10)
	if len(history) != 2 {
		t.Fatalf("expected add + remove entries only, got %d", len(history))
	}
}

func TestFavoriteService_ConcurrentAddRecordsOneEntry(t *testing.T) {
	ctx := context.Background()
	env := newFavoriteEnv(t)
	target := env.recipes.All(ctx)[0]

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := env.svc.Add(ctx, explorerUser, target.ID); err != nil {
				t.Errorf("add: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := len(env.svc.List(ctx, explorerUser)); got != 1 {
		t.Fatalf("expected one favorite, got %d", got)
	}
	history := env.activity.RecentFor(ctx, "explorer", workers)
	if len(history) != 1 {
		t.Fatalf("one state change must record one entry, got %d", len(history))
	}
}

func TestFavoriteService_AddHiddenRecipeLooksAbsent(t *testing.T) {
	ctx := context.Background()
	env := newFavoriteEnv(t)

	recipeSvc := NewRecipeService(env.recipes, env.activity, zerolog.Nop())
	pending, err := recipeSvc.Create(ctx, contribUser, ports.CreateRecipeInput{
		Title: "Hidden", Ingredients: "x", Instructions: "y",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.svc.Add(ctx, explorerUser, pending.ID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected hidden recipe to look absent, got %v", err)
	}
	// The author can favorite their own pending recipe.
	if err := env.svc.Add(ctx, contribUser, pending.ID); err != nil {
		t.Fatalf("author favorite: %v", err)
	}
}

func TestFavoriteService_ListDropsDeletedRecipes(t *testing.T) {
	ctx := context.Background()
	env := newFavoriteEnv(t)
	target := env.recipes.All(ctx)[0]

	if err := env.svc.Add(ctx, explorerUser, target.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	env.recipes.Remove(ctx, target.ID)

	if got := len(env.svc.List(ctx, explorerUser)); got != 0 {
		t.Fatalf("deleted recipes must vanish from favorites, got %d", got)
	}
}
