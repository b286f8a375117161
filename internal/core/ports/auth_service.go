package ports

import (
	"context"
	"time"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// AuthService verifies and issues API keys.
type AuthService interface {
	// Authenticate runs the full verification chain for a presented key.
	// Every failure wraps one of the domain authentication errors.
	Authenticate(ctx context.Context, rawKey string) (*domain.Principal, error)
	// Issue generates and stores a new key for the user with that email.
	Issue(ctx context.Context, email string, ttl time.Duration) (key string, expiresAt time.Time, err error)
}

// IDCodec obfuscates integer primary keys.
type IDCodec interface {
	Encode(id int64) (string, error)
	Decode(s string) (int64, bool)
}
