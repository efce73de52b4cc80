package handler

import (
	"time"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

type addReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID             string    `json:"id"`
	RecipeID       string    `json:"recipe_id"`
	AuthorUsername string    `json:"author_username"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type listReviewsResponse struct {
	Data  []reviewResponse `json:"data"`
	Total int              `json:"total"`
}

// ratingResponse renders the aggregate rating. Average is omitted entirely
// for unrated recipes instead of using a sentinel value.
type ratingResponse struct {
	Average *float64 `json:"average,omitempty"`
	Count   int      `json:"count"`
	Rated   bool     `json:"rated"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:             r.ID,
		RecipeID:       r.RecipeID,
		AuthorUsername: r.AuthorUsername,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}
