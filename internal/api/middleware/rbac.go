package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/api/metrics"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// RequireLevel lets the request through only when the principal's effective
// level on module is at least min. It must run after Auth. A denial returns
// domain.ErrInsufficientPermission for the HTTP error handler to render.
func RequireLevel(module string, min domain.Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := GetPrincipal(c)
			if !ok {
				return fmt.Errorf("%w: no principal", domain.ErrInsufficientPermission)
			}

			perms, err := p.Permissions(c.Request().Context())
			if err != nil {
				return fmt.Errorf("resolve permissions for user %d: %w", p.ID, err)
			}

			if !perms.Can(module, min) {
				metrics.PermissionDeniedTotal.WithLabelValues(module).Inc()
				return fmt.Errorf("%w: %s", domain.ErrInsufficientPermission, module)
			}
			return next(c)
		}
	}
}

// CanView is RequireLevel with the view threshold, the gate of every read
// route.
func CanView(module string) echo.MiddlewareFunc {
	return RequireLevel(module, domain.LevelView)
}
