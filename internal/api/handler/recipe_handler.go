package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/api/metrics"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// RecipeHandler handles HTTP requests for catalog operations.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /v1/recipes.
//
// @Summary      List recipes visible to the caller
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        author  query     string  false  "Restrict to one author's recipes"
// @Param        q       query     string  false  "Search title and ingredients"
// @Success      200     {object}  listRecipesResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	recipes := h.service.List(c.Request().Context(), actor, ports.ListRecipesFilter{
		Author: c.QueryParam("author"),
		Query:  c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, toRecipeList(recipes))
}

// Get handles GET /v1/recipes/:id.
//
// @Summary      Get a recipe by id
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  recipeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	recipe, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Create handles POST /v1/recipes.
//
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecipeRequest  true  "Recipe details"
// @Success      201   {object}  recipeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.service.Create(c.Request().Context(), actor, ports.CreateRecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Approved:     req.Approved,
	})
	if err != nil {
		return err
	}

	metrics.RecipesCreatedTotal.WithLabelValues(string(actor.Role)).Inc()
	return c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// Update handles PUT /v1/recipes/:id.
//
// @Summary      Update a recipe's content fields
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Recipe id"
// @Param        body  body      updateRecipeRequest  true  "Fields to change"
// @Success      200   {object}  recipeResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req updateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	recipe, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateRecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// SetApproval handles PATCH /v1/recipes/:id/approval.
//
// @Summary      Approve or unapprove a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Recipe id"
// @Param        body  body      setApprovalRequest  true  "Desired approval state"
// @Success      200   {object}  recipeResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/recipes/{id}/approval [patch]
func (h *RecipeHandler) SetApproval(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req setApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Approved == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is required")
	}

	recipe, err := h.service.SetApproval(c.Request().Context(), actor, c.Param("id"), *req.Approved)
	if err != nil {
		return err
	}

	state := "unapproved"
	if recipe.Approved {
		state = "approved"
	}
	metrics.ApprovalChangesTotal.WithLabelValues(state).Inc()
	return c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// Delete handles DELETE /v1/recipes/:id.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Param        id  path  string  true  "Recipe id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.RecipesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
