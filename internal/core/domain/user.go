package domain

import "time"

// Role determines what a user is allowed to do across the platform.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
	RoleExplorer    Role = "explorer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleContributor, RoleExplorer:
		return true
	}
	return false
}

// User models an account in the directory. Accounts are immutable after
// creation. The password is a demo credential stored and compared as an
// opaque string; usernames are unique case-insensitively.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
