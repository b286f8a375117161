package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// errorResponse is the failure envelope for errors that escape the handlers.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"success": false, "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var pe *domain.ParamError
	switch {
	case domain.IsAuthFailure(err), errors.Is(err, domain.ErrInsufficientPermission):
		return http.StatusForbidden, "Forbidden"
	case errors.As(err, &pe):
		return http.StatusOK, pe.Message
	case errors.Is(err, domain.ErrInvalidParam):
		return http.StatusOK, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "No existe ese usuario"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
