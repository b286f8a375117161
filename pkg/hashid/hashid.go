// Package hashid wraps the hashids algorithm used to obfuscate integer
// primary keys and to derive the per-account checksum embedded in API keys.
//
// A Codec is deterministic for a given (salt, minimum length) pair, so an
// encoded value can be recomputed and compared later without storing it.
// Encoding is NOT encryption: anyone holding the salt can reverse it.
package hashid

import (
	"errors"
	"fmt"
	"regexp"

	hashids "github.com/speps/go-hashids/v2"
)

// DefaultMinLength is the minimum length of every encoded value.
const DefaultMinLength = 8

// ChecksumValue is the constant encoded under an account's email to produce
// the identity-binding segment of an API key.
const ChecksumValue = 1

// ErrEmptySalt is returned when a codec is built without a salt.
var ErrEmptySalt = errors.New("hashid: salt must not be empty")

// decodable is checked before attempting to reverse a value.
var decodable = regexp.MustCompile(`^[0-9a-zA-Z]{8,16}$`)

// Codec encodes and decodes single non-negative integers.
type Codec struct {
	h *hashids.HashID
}

// New builds a Codec for salt. minLength <= 0 selects DefaultMinLength.
func New(salt string, minLength int) (*Codec, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("hashid: build codec: %w", err)
	}
	return &Codec{h: h}, nil
}

// Encode returns the obfuscated form of id. Negative ids are rejected.
func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("hashid: cannot encode negative id %d", id)
	}
	return c.h.EncodeInt64([]int64{id})
}

// Decode reverses Encode. The second result is false for anything that is
// not a well-formed encoding of exactly one integer; Decode never panics.
func (c *Codec) Decode(s string) (int64, bool) {
	if !decodable.MatchString(s) {
		return 0, false
	}
	values, err := c.h.DecodeInt64WithError(s)
	if err != nil || len(values) != 1 {
		return 0, false
	}
	return values[0], true
}

// Checksum encodes ChecksumValue with email as the salt. It is the second
// segment of an API key and binds the key to that account.
func Checksum(email string) (string, error) {
	c, err := New(email, DefaultMinLength)
	if err != nil {
		return "", err
	}
	return c.Encode(ChecksumValue)
}
