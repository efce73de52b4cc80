package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// ActivityRepository is the append-only record of user actions. Entries are
// written by the caller after a mutating operation succeeds elsewhere; the
// log itself enforces nothing about completeness.
type ActivityRepository interface {
	// Record appends an entry stamped with the current time. Never fails.
	Record(ctx context.Context, username string, typ domain.ActivityType, description string)

	// RecentFor returns at most max entries for the username (matched
	// case-insensitively) in chronological oldest-first order. Empty for an
	// unknown or empty username.
	RecentFor(ctx context.Context, username string, max int) []domain.ActivityEntry
}
