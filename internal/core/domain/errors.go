package domain

import "errors"

// Authentication outcomes. Each is a distinct failure of the API key
// verification chain; callers outside the core only ever see "forbidden".
var (
	ErrMalformedKey      = errors.New("api key is malformed")
	ErrUnresolvableID    = errors.New("api key id segment does not decode")
	ErrUnknownPrincipal  = errors.New("api key principal not found")
	ErrKeyMismatch       = errors.New("api key does not match the stored key")
	ErrIdentityBinding   = errors.New("api key email checksum mismatch")
	ErrKeyExpired        = errors.New("api key expired")
	ErrPrincipalDisabled = errors.New("api key principal disabled")
)

var (
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrInvalidParam           = errors.New("invalid query parameter")
	ErrUserNotFound           = errors.New("user not found")
)

var authFailures = []error{
	ErrMalformedKey,
	ErrUnresolvableID,
	ErrUnknownPrincipal,
	ErrKeyMismatch,
	ErrIdentityBinding,
	ErrKeyExpired,
	ErrPrincipalDisabled,
}

// IsAuthFailure reports whether err is one of the verification outcomes.
func IsAuthFailure(err error) bool {
	for _, target := range authFailures {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// AuthFailureKind returns a short label for metrics and logs, or "" when err
// is not an authentication outcome.
func AuthFailureKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedKey):
		return "malformed"
	case errors.Is(err, ErrUnresolvableID):
		return "unresolvable_id"
	case errors.Is(err, ErrUnknownPrincipal):
		return "unknown_principal"
	case errors.Is(err, ErrKeyMismatch):
		return "mismatch"
	case errors.Is(err, ErrIdentityBinding):
		return "identity_binding"
	case errors.Is(err, ErrKeyExpired):
		return "expired"
	case errors.Is(err, ErrPrincipalDisabled):
		return "disabled"
	}
	return ""
}

// ParamError is a caller-facing validation failure of a filter or path value.
// Message is shown to the client verbatim.
type ParamError struct {
	Message string
}

func (e *ParamError) Error() string { return e.Message }

func (e *ParamError) Is(target error) bool { return target == ErrInvalidParam }

// InvalidParam builds a ParamError.
func InvalidParam(msg string) error {
	return &ParamError{Message: msg}
}
