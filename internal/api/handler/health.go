package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// HealthHandler handles GET /health. Returns 200 immediately; confirms the
// process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. All state is in-process, so
// readiness reduces to the stores being constructed and (when seeding is
// on) the fixture being loaded.
type ReadinessHandler struct {
	users   ports.UserRepository
	recipes ports.RecipeRepository
}

func NewReadinessHandler(users ports.UserRepository, recipes ports.RecipeRepository) *ReadinessHandler {
	return &ReadinessHandler{users: users, recipes: recipes}
}

type readinessResponse struct {
	Status   string `json:"status"`
	Accounts int    `json:"accounts"`
	Recipes  int    `json:"recipes"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, readinessResponse{
		Status:   "ok",
		Accounts: h.users.Count(ctx),
		Recipes:  len(h.recipes.All(ctx)),
	})
}
