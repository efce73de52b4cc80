package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// Seed loads the demo fixture: one account per role and two approved
// recipes authored by the admin. Integration scenarios assume this data
// is present.
func Seed(ctx context.Context, users ports.UserRepository, recipes ports.RecipeRepository) {
	now := time.Now().UTC()

	for _, u := range []*domain.User{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin, CreatedAt: now},
		{Username: "contrib", Password: "contrib123", Role: domain.RoleContributor, CreatedAt: now},
		{Username: "explorer", Password: "explore123", Role: domain.RoleExplorer, CreatedAt: now},
	} {
		users.Add(ctx, u)
	}

	recipes.Add(ctx, &domain.Recipe{
		ID:             uuid.NewString(),
		Title:          "Spaghetti Bolognese",
		Ingredients:    "Spaghetti, minced beef, tomato sauce, onions, garlic, olive oil, salt, pepper",
		Instructions:   "1. Cook spaghetti.\n2. Brown minced beef with onions and garlic.\n3. Add tomato sauce and simmer.\n4. Serve sauce over spaghetti.",
		AuthorUsername: "admin",
		Approved:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	recipes.Add(ctx, &domain.Recipe{
		ID:             uuid.NewString(),
		Title:          "Classic Pancakes",
		Ingredients:    "Flour, milk, eggs, sugar, baking powder, butter, salt",
		Instructions:   "1. Mix dry ingredients.\n2. Whisk in milk and eggs.\n3. Cook batter on a greased pan until golden.",
		AuthorUsername: "admin",
		Approved:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}
