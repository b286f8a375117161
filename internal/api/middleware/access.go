package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// AccessLog hands an AccessEvent to recorder after each request that
// carries a principal. It must run after Auth.
func AccessLog(recorder ports.AccessRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			p, ok := GetPrincipal(c)
			if !ok {
				return err
			}

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				switch {
				case errors.As(err, &he):
					status = he.Code
				case errors.Is(err, domain.ErrInsufficientPermission):
					status = http.StatusForbidden
				case errors.Is(err, domain.ErrInvalidParam):
					status = http.StatusOK
				default:
					status = http.StatusInternalServerError
				}
			}

			recorder.Record(domain.AccessEvent{
				UserID:     p.ID,
				Email:      p.Email,
				Method:     c.Request().Method,
				Path:       c.Request().URL.Path,
				Status:     status,
				RemoteIP:   c.RealIP(),
				DurationMS: time.Since(start).Milliseconds(),
				At:         start.UTC(),
			})
			return err
		}
	}
}
