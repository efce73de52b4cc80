package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// ActivityHandler serves the personal history view.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type listActivityResponse struct {
	Data  []domain.ActivityEntry `json:"data"`
	Total int                    `json:"total"`
}

// Recent handles GET /v1/activity.
//
// @Summary      Recent activity, oldest first
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit     query     int     false  "Maximum entries (default 20)"
// @Param        username  query     string  false  "Another user's history (admin only)"
// @Success      200       {object}  listActivityResponse
// @Failure      403       {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
	}

	entries, err := h.service.RecentFor(c.Request().Context(), actor, c.QueryParam("username"), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return c.JSON(http.StatusOK, listActivityResponse{Data: entries, Total: len(entries)})
}
