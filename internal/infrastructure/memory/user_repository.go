package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// UserRepository is the in-memory account directory. A single mutex covers
// the whole collection so the exists-check inside Add and the append are
// one atomic step.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) && u.Password == password {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *UserRepository) UsernameExists(_ context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exists(username)
}

func (r *UserRepository) Add(_ context.Context, user *domain.User) {
	if user == nil || user.Username == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exists(user.Username) {
		return
	}
	clone := *user
	r.users = append(r.users, &clone)
}

func (r *UserRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// exists must be called with the mutex held.
func (r *UserRepository) exists(username string) bool {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}
