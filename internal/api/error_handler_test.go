package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

func runErrorHandler(t *testing.T, log zerolog.Logger, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v5/edictos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(log)(err, c)

	var resp errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &resp); jerr != nil {
		t.Fatalf("invalid json: %v", jerr)
	}
	return rec, resp
}

func TestErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"auth failure", fmt.Errorf("verify: %w", domain.ErrKeyExpired), http.StatusForbidden, "Forbidden"},
		{"permission", fmt.Errorf("%w: %s", domain.ErrInsufficientPermission, domain.ModuleEdictos), http.StatusForbidden, "Forbidden"},
		{"param", domain.InvalidParam("Es inválida la fecha"), http.StatusOK, "Es inválida la fecha"},
		{"user", domain.ErrUserNotFound, http.StatusNotFound, "No existe ese usuario"},
		{"echo", echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Requests"), http.StatusTooManyRequests, "Too Many Requests"},
		{"unexpected", errors.New("mongo down"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := runErrorHandler(t, zerolog.Nop(), tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if resp.Success || resp.Message != tc.msg {
				t.Fatalf("unexpected body %+v", resp)
			}
		})
	}
}

func TestErrorHandler_LogsUnexpected(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	runErrorHandler(t, log, errors.New("connection refused"))

	if !strings.Contains(buf.String(), "connection refused") {
		t.Fatalf("expected the cause to be logged, got %q", buf.String())
	}

	buf.Reset()
	runErrorHandler(t, log, domain.ErrKeyMismatch)
	if buf.Len() != 0 {
		t.Fatalf("known errors must not be logged as unhandled: %q", buf.String())
	}
}
