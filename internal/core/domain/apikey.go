package domain

import (
	"regexp"
	"strings"

	"github.com/pjecz/hercules-api-key/internal/core/safe"
)

// APIKeyHeader carries the credential on every authenticated request.
const APIKeyHeader = "X-Api-Key"

var apiKeyPattern = regexp.MustCompile(`^\w+\.\w+\.\w+$`)

// APIKey is a presented credential split into its three segments:
// <encoded id>.<email checksum>.<nonce>.
type APIKey struct {
	ID       string
	Checksum string
	Nonce    string
}

// ParseAPIKey normalizes raw (accents stripped) and splits it. It returns
// ErrMalformedKey for anything that is not three word-character segments.
func ParseAPIKey(raw string) (APIKey, error) {
	normalized := safe.Unaccent(raw)
	if !apiKeyPattern.MatchString(normalized) {
		return APIKey{}, ErrMalformedKey
	}
	parts := strings.Split(normalized, ".")
	return APIKey{ID: parts[0], Checksum: parts[1], Nonce: parts[2]}, nil
}

func (k APIKey) String() string {
	return k.ID + "." + k.Checksum + "." + k.Nonce
}
