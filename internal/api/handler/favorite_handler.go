package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/api/metrics"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for the favorites index.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// Add handles PUT /v1/recipes/:id/favorite. Idempotent.
//
// @Summary      Mark a recipe as favorite
// @Tags         favorites
// @Security     BearerAuth
// @Param        id  path  string  true  "Recipe id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/recipes/{id}/favorite [put]
func (h *FavoriteHandler) Add(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Add(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.FavoritesToggledTotal.WithLabelValues("add").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /v1/recipes/:id/favorite. Idempotent.
//
// @Summary      Unmark a favorite
// @Tags         favorites
// @Security     BearerAuth
// @Param        id  path  string  true  "Recipe id"
// @Success      204
// @Router       /v1/recipes/{id}/favorite [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.FavoritesToggledTotal.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/favorites.
//
// @Summary      List the caller's favorite recipes
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRecipesResponse
// @Router       /v1/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	recipes := h.service.List(c.Request().Context(), actor)
	return c.JSON(http.StatusOK, toRecipeList(recipes))
}
