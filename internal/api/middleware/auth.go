package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/api/metrics"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

const principalKey = "principal"

// Throttle limits repeated authentication failures from one client.
type Throttle interface {
	Blocked(ctx context.Context, subject string) (bool, error)
	Fail(ctx context.Context, subject string) error
}

// Auth verifies the X-Api-Key header and injects the principal into the
// context. Every verification failure is answered with the same 403; the
// failed step is only logged and counted. throttle may be nil.
func Auth(auth ports.AuthService, throttle Throttle, log zerolog.Logger) echo.MiddlewareFunc {
	log = logger.Component(log, "auth_middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ip := c.RealIP()

			if throttle != nil {
				blocked, err := throttle.Blocked(ctx, ip)
				if err != nil {
					log.Warn().Err(err).Msg("auth throttle unavailable, continuing")
				} else if blocked {
					metrics.AuthOutcomesTotal.WithLabelValues("throttled").Inc()
					return echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
				}
			}

			raw := c.Request().Header.Get(domain.APIKeyHeader)
			if raw == "" {
				metrics.AuthOutcomesTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}

			principal, err := auth.Authenticate(ctx, raw)
			if err != nil {
				kind := domain.AuthFailureKind(err)
				if kind == "" {
					return err
				}
				metrics.AuthOutcomesTotal.WithLabelValues(kind).Inc()
				log.Warn().
					Str("outcome", kind).
					Str("ip", ip).
					Str("path", c.Path()).
					Msg("api key rejected")

				if throttle != nil {
					if ferr := throttle.Fail(ctx, ip); ferr != nil {
						log.Warn().Err(ferr).Msg("auth throttle record failed")
					}
				}
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}

			metrics.AuthOutcomesTotal.WithLabelValues("ok").Inc()
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// GetPrincipal returns the principal injected by Auth.
func GetPrincipal(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
