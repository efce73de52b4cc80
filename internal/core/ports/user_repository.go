package ports

import (
	"context"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// UserRepository is the account directory. Implementations must treat the
// exists-check inside Add as a single atomic step so two concurrent Add
// calls for the same name cannot both insert.
type UserRepository interface {
	// Authenticate matches the username case-insensitively and the password
	// exactly. It returns domain.ErrInvalidCredentials on any mismatch
	// without revealing which field was wrong.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// UsernameExists reports case-insensitive existence.
	UsernameExists(ctx context.Context, username string) bool

	// Add appends the user. It is a silent no-op when the username already
	// exists case-insensitively; callers that need to distinguish "created"
	// from "already existed" must re-check UsernameExists.
	Add(ctx context.Context, user *domain.User)

	// Count returns the number of stored accounts.
	Count(ctx context.Context) int
}
