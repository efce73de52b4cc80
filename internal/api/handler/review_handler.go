package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/api/metrics"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews and ratings.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Add handles POST /v1/recipes/:id/reviews.
//
// @Summary      Review a recipe
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Recipe id"
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/recipes/{id}/reviews [post]
func (h *ReviewHandler) Add(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.Add(c.Request().Context(), actor, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		return err
	}

	metrics.ReviewsAddedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// List handles GET /v1/recipes/:id/reviews.
//
// @Summary      List a recipe's reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  listReviewsResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/recipes/{id}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	reviews, err := h.service.ListByRecipe(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	data := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		data = append(data, toReviewResponse(r))
	}
	return c.JSON(http.StatusOK, listReviewsResponse{Data: data, Total: len(data)})
}

// Rating handles GET /v1/recipes/:id/rating.
//
// @Summary      Get a recipe's aggregate rating
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  ratingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/recipes/{id}/rating [get]
func (h *ReviewHandler) Rating(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Rating(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	resp := ratingResponse{Count: summary.Count, Rated: summary.Rated}
	if summary.Rated {
		avg := summary.Average
		resp.Average = &avg
	}
	return c.JSON(http.StatusOK, resp)
}
