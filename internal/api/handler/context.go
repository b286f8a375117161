package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/api/middleware"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// ctxPrincipal returns the principal injected by the Auth middleware. A
// missing principal means the route was registered without Auth.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}
	return p, nil
}
