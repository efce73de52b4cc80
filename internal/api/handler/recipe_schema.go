package handler

import (
	"time"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createRecipeRequest struct {
	Title        string `json:"title"        validate:"required"`
	Ingredients  string `json:"ingredients"  validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
	// Approved is only honored for admin callers; contributor recipes
	// always start unapproved.
	Approved bool `json:"approved"`
}

type updateRecipeRequest struct {
	Title        *string `json:"title"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

type setApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type recipeLinks struct {
	Self    string `json:"self"`
	Reviews string `json:"reviews"`
}

type recipeResponse struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Ingredients    string      `json:"ingredients"`
	Instructions   string      `json:"instructions"`
	AuthorUsername string      `json:"author_username"`
	Approved       bool        `json:"approved"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Links          recipeLinks `json:"_links"`
}

type listRecipesResponse struct {
	Data  []recipeResponse `json:"data"`
	Total int              `json:"total"`
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:             r.ID,
		Title:          r.Title,
		Ingredients:    r.Ingredients,
		Instructions:   r.Instructions,
		AuthorUsername: r.AuthorUsername,
		Approved:       r.Approved,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Links: recipeLinks{
			Self:    "/v1/recipes/" + r.ID,
			Reviews: "/v1/recipes/" + r.ID + "/reviews",
		},
	}
}

func toRecipeList(recipes []*domain.Recipe) listRecipesResponse {
	data := make([]recipeResponse, 0, len(recipes))
	for _, r := range recipes {
		data = append(data, toRecipeResponse(r))
	}
	return listRecipesResponse{Data: data, Total: len(data)}
}
