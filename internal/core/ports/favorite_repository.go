package ports

import "context"

// FavoriteRepository owns each user's favorite-recipe set. Sets are keyed
// by lower-cased username, so any case-variant spelling of a name shares
// one set. Add and Remove are idempotent.
type FavoriteRepository interface {
	IsFavorite(ctx context.Context, username, recipeID string) bool

	// Add marks the recipe as a favorite. It reports whether membership
	// changed, decided under the same lock as the insert, so concurrent
	// identical adds yield exactly one true.
	Add(ctx context.Context, username, recipeID string) bool

	// Remove unmarks the recipe, reporting whether it was a favorite.
	Remove(ctx context.Context, username, recipeID string) bool

	// ByUser returns a snapshot of the user's favorite recipe ids in
	// insertion order; empty for an unknown user.
	ByUser(ctx context.Context, username string) []string
}
