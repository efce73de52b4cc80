package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// DashboardService aggregates the stat-card numbers by reading the catalog,
// the review ledger and the favorites index side by side. The stores share
// no state, so the figures are individually consistent snapshots.
type DashboardService struct {
	recipes   ports.RecipeRepository
	reviews   ports.ReviewRepository
	favorites ports.FavoriteRepository
	log       zerolog.Logger
}

func NewDashboardService(recipes ports.RecipeRepository, reviews ports.ReviewRepository, favorites ports.FavoriteRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{recipes: recipes, reviews: reviews, favorites: favorites, log: log}
}

func (s *DashboardService) Stats(ctx context.Context, actor *domain.User) *ports.DashboardStats {
	stats := &ports.DashboardStats{
		TotalRecipes: len(s.recipes.All(ctx)),
		TotalReviews: s.reviews.TotalCount(ctx),
	}
	if actor != nil {
		stats.MyRecipes = len(s.recipes.ByAuthor(ctx, actor.Username))
		stats.MyFavorites = len(s.favorites.ByUser(ctx, actor.Username))
		stats.MyReviews = s.reviews.CountByAuthor(ctx, actor.Username)
	}
	return stats
}
