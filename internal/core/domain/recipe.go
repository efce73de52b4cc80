package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Recipe is the core aggregate of the catalog. Identity is the surrogate ID
// assigned at creation, never the title. Two recipes may share a title.
type Recipe struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Ingredients    string    `json:"ingredients"`
	Instructions   string    `json:"instructions"`
	AuthorUsername string    `json:"author_username"`
	Approved       bool      `json:"approved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OwnedBy reports whether username authored the recipe. Ownership is
// matched case-insensitively, like every username comparison in the system.
func (r *Recipe) OwnedBy(username string) bool {
	return strings.EqualFold(r.AuthorUsername, username)
}
