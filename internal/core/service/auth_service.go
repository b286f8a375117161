package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/core/safe"
	"github.com/pjecz/hercules-api-key/pkg/hashid"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

// AuthService verifies presented API keys and issues new ones.
type AuthService struct {
	repo  ports.PrincipalRepository
	codec ports.IDCodec
	log   zerolog.Logger

	now   func() time.Time
	nonce func() string
}

func NewAuthService(repo ports.PrincipalRepository, codec ports.IDCodec, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:  repo,
		codec: codec,
		log:   logger.Component(log, "auth"),
		now:   time.Now,
		nonce: randomNonce,
	}
}

// Authenticate checks rawKey in a fixed order and stops at the first failing
// step. The returned principal resolves its permissions lazily.
func (s *AuthService) Authenticate(ctx context.Context, rawKey string) (*domain.Principal, error) {
	key, err := domain.ParseAPIKey(rawKey)
	if err != nil {
		return nil, err
	}

	id, ok := s.codec.Decode(key.ID)
	if !ok {
		return nil, domain.ErrUnresolvableID
	}

	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Int64("user_id", id).Msg("principal lookup failed")
		}
		return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownPrincipal, id)
	}

	if subtle.ConstantTimeCompare([]byte(user.APIKey), []byte(key.String())) != 1 {
		return nil, domain.ErrKeyMismatch
	}

	checksum, err := hashid.Checksum(user.Email)
	if err != nil || checksum != key.Checksum {
		return nil, domain.ErrIdentityBinding
	}

	// Expiry equal to the current instant is already expired.
	if user.APIKeyExpiresAt.IsZero() || !s.now().Before(user.APIKeyExpiresAt) {
		return nil, domain.ErrKeyExpired
	}

	if !user.Status.Active() {
		return nil, domain.ErrPrincipalDisabled
	}

	return domain.NewPrincipal(*user, s.repo.FindActiveRoleAssignments), nil
}

// Issue builds <encoded id>.<email checksum>.<nonce> for the active user
// with that email, stores it with its expiry and returns it.
func (s *AuthService) Issue(ctx context.Context, email string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, fmt.Errorf("issue api key: ttl must be positive")
	}

	normalized, err := safe.Email(email, false)
	if err != nil {
		return "", time.Time{}, domain.InvalidParam("Es inválido el correo electrónico")
	}

	user, err := s.repo.FindUserByEmail(ctx, normalized)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue api key: %w", err)
	}
	if !user.Status.Active() {
		return "", time.Time{}, fmt.Errorf("issue api key: %w", domain.ErrPrincipalDisabled)
	}

	encodedID, err := s.codec.Encode(user.ID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue api key: encode id: %w", err)
	}
	checksum, err := hashid.Checksum(user.Email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue api key: checksum: %w", err)
	}

	key := domain.APIKey{ID: encodedID, Checksum: checksum, Nonce: s.nonce()}.String()
	expiresAt := s.now().Add(ttl)

	if err := s.repo.SaveAPIKey(ctx, user.ID, key, expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("issue api key: save: %w", err)
	}

	s.log.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Time("expires_at", expiresAt).
		Msg("api key issued")

	return key, expiresAt, nil
}

func randomNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
