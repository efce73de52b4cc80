package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// ActivityRepository is the in-memory append-only activity log. Entries
// are kept in insertion order; RecentFor scans newest-first and reverses
// the matches so callers get chronological output.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []domain.ActivityEntry
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Record(_ context.Context, username string, typ domain.ActivityType, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, domain.ActivityEntry{
		Username:    username,
		Type:        typ,
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
}

func (r *ActivityRepository) RecentFor(_ context.Context, username string, max int) []domain.ActivityEntry {
	if username == "" || max <= 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.ActivityEntry
	for i := len(r.entries) - 1; i >= 0 && len(matched) < max; i-- {
		if strings.EqualFold(r.entries[i].Username, username) {
			matched = append(matched, r.entries[i])
		}
	}

	// reverse into oldest-first order
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}
