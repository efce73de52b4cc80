package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// DashboardStats are the stat-card numbers shown on a user's dashboard.
// TotalRecipes counts the whole catalog including unapproved entries.
type DashboardStats struct {
	TotalRecipes int `json:"total_recipes"`
	MyRecipes    int `json:"my_recipes"`
	MyFavorites  int `json:"my_favorites"`
	MyReviews    int `json:"my_reviews"`
	TotalReviews int `json:"total_reviews"`
}

type DashboardService interface {
	Stats(ctx context.Context, actor *domain.User) *DashboardStats
}
