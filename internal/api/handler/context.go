package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

// actorFromContext rebuilds the acting user from the values injected by the
// Auth middleware, which has already validated both claims. Their presence
// proves the middleware ran on this route.
func actorFromContext(c echo.Context) (*domain.User, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(domain.Role)
	if username == "" || !role.Valid() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return &domain.User{Username: username, Role: role}, nil
}
