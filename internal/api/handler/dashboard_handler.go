package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// DashboardHandler serves the stat-card numbers.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /v1/dashboard.
//
// @Summary      Dashboard statistics for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.service.Stats(c.Request().Context(), actor))
}
