package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

const defaultActivityLimit = 20

// ActivityService exposes the personal history view. Only admins may read
// another user's history.
type ActivityService struct {
	activity ports.ActivityRepository
	log      zerolog.Logger
}

func NewActivityService(activity ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{activity: activity, log: log}
}

func (s *ActivityService) RecentFor(ctx context.Context, actor *domain.User, username string, max int) ([]domain.ActivityEntry, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if username == "" {
		username = actor.Username
	}
	if !strings.EqualFold(username, actor.Username) && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if max <= 0 {
		max = defaultActivityLimit
	}
	return s.activity.RecentFor(ctx, username, max), nil
}
