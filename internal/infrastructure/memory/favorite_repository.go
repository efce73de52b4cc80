package memory

import (
	"context"
	"strings"
	"sync"
)

// FavoriteRepository is the in-memory favorites index. Sets are keyed by
// lower-cased username so case-variant spellings share one set. One mutex
// guards every per-user set, which keeps the read-check-then-write in Add
// and Remove from interleaving.
type FavoriteRepository struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{byUser: make(map[string][]string)}
}

func (r *FavoriteRepository) IsFavorite(_ context.Context, username, recipeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return contains(r.byUser[userKey(username)], recipeID)
}

func (r *FavoriteRepository) Add(_ context.Context, username, recipeID string) bool {
	if username == "" || recipeID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := userKey(username)
	if contains(r.byUser[key], recipeID) {
		return false
	}
	r.byUser[key] = append(r.byUser[key], recipeID)
	return true
}

func (r *FavoriteRepository) Remove(_ context.Context, username, recipeID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userKey(username)
	list := r.byUser[key]
	for i, id := range list {
		if id == recipeID {
			r.byUser[key] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (r *FavoriteRepository) ByUser(_ context.Context, username string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byUser[userKey(username)]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func userKey(username string) string {
	return strings.ToLower(username)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
