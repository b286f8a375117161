package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, rawKey string) (*domain.Principal, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, rawKey string) (*domain.Principal, error) {
	return s.authenticateFn(ctx, rawKey)
}

func (s *stubAuthService) Issue(context.Context, string, time.Duration) (string, time.Time, error) {
	return "", time.Time{}, errors.New("not implemented")
}

type stubThrottle struct {
	blocked  bool
	checkErr error
	failures map[string]int
}

func (s *stubThrottle) Blocked(context.Context, string) (bool, error) {
	return s.blocked, s.checkErr
}

func (s *stubThrottle) Fail(_ context.Context, subject string) error {
	if s.failures == nil {
		s.failures = make(map[string]int)
	}
	s.failures[subject]++
	return nil
}

func newAuthRequest(key string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v5/edictos", nil)
	if key != "" {
		req.Header.Set(domain.APIKeyHeader, key)
	}
	req.Header.Set(echo.HeaderXRealIP, "10.1.1.1")
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidKey(t *testing.T) {
	e, c, rec := newAuthRequest("ABCD1234.WXYZ5678.nonce")
	stub := &stubAuthService{authenticateFn: func(_ context.Context, rawKey string) (*domain.Principal, error) {
		if rawKey != "ABCD1234.WXYZ5678.nonce" {
			t.Fatalf("unexpected key %q", rawKey)
		}
		return domain.NewPrincipal(domain.User{ID: 9, Email: "ana@pjecz.gob.mx"}, nil), nil
	}}

	called := false
	handler := Auth(stub, nil, zerolog.Nop())(func(c echo.Context) error {
		called = true
		p, ok := GetPrincipal(c)
		if !ok || p.ID != 9 {
			t.Fatalf("principal not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e, c, rec := newAuthRequest("")
	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
		t.Fatalf("Authenticate must not run without a header")
		return nil, nil
	}}

	handler := Auth(stub, nil, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddleware_EveryFailureIsForbidden(t *testing.T) {
	failures := []error{
		domain.ErrMalformedKey,
		domain.ErrUnresolvableID,
		domain.ErrUnknownPrincipal,
		domain.ErrKeyMismatch,
		domain.ErrIdentityBinding,
		domain.ErrKeyExpired,
		domain.ErrPrincipalDisabled,
	}

	var bodies []string
	for _, failure := range failures {
		e, c, rec := newAuthRequest("a.b.c")
		throttle := &stubThrottle{}
		stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
			return nil, failure
		}}

		handler := Auth(stub, throttle, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if rec.Code != http.StatusForbidden {
			t.Fatalf("%v: expected 403, got %d", failure, rec.Code)
		}
		if throttle.failures["10.1.1.1"] != 1 {
			t.Fatalf("%v: failure not recorded for the client ip", failure)
		}
		bodies = append(bodies, rec.Body.String())
	}

	for _, b := range bodies[1:] {
		if b != bodies[0] {
			t.Fatalf("responses must not reveal the failed step: %q vs %q", b, bodies[0])
		}
	}
}

func TestAuthMiddleware_Throttled(t *testing.T) {
	e, c, rec := newAuthRequest("a.b.c")
	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
		t.Fatalf("a throttled client must not be verified")
		return nil, nil
	}}

	handler := Auth(stub, &stubThrottle{blocked: true}, zerolog.Nop())(func(echo.Context) error { return nil })
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ThrottleErrorFailsOpen(t *testing.T) {
	e, c, rec := newAuthRequest("a.b.c")
	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
		return domain.NewPrincipal(domain.User{ID: 1}, nil), nil
	}}

	handler := Auth(stub, &stubThrottle{checkErr: errors.New("redis down")}, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when the throttle is unavailable, got %d", rec.Code)
	}
}
