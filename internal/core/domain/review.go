package domain

import "time"

// Rating bounds. The review ledger assumes ratings are already validated;
// enforcement happens in the calling layer before a review is submitted.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is an append-only rating with an optional comment. Once stored it
// is never edited or removed. A user may review the same recipe more than
// once.
type Review struct {
	ID             string    `json:"id"`
	RecipeID       string    `json:"recipe_id"`
	AuthorUsername string    `json:"author_username"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
