package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

type ActivityService interface {
	// RecentFor returns the most recent activity for username, oldest
	// first. Non-admin actors may only query their own history; username
	// defaults to the actor when empty.
	RecentFor(ctx context.Context, actor *domain.User, username string, max int) ([]domain.ActivityEntry, error)
}
