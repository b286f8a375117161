// Package safe normalizes and validates caller-supplied strings before they
// reach a repository filter.
package safe

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DateLayout is the wire format of every date filter.
const DateLayout = "2006-01-02"

// DefaultMaxLen bounds free-text filters.
const DefaultMaxLen = 250

var (
	ErrInvalidClave = errors.New("safe: invalid clave")
	ErrInvalidEmail = errors.New("safe: invalid email")
	ErrInvalidDate  = errors.New("safe: invalid date")
)

var (
	clavePattern    = regexp.MustCompile(`^[A-Z0-9-]{2,16}$`)
	emailFragment   = regexp.MustCompile(`[^a-z0-9@._-]`)
	stringDisallow  = regexp.MustCompile(`[^a-zA-Z0-9 ,/-]`)
	spaceRuns       = regexp.MustCompile(`\s+`)
	emailFullFormat = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
)

// Unaccent removes combining marks, so "Ñuñoa Médica" becomes "Nunoa Medica".
func Unaccent(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Clave upper-cases a catalog code and checks its shape.
func Clave(s string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(Unaccent(s)))
	if !clavePattern.MatchString(c) {
		return "", ErrInvalidClave
	}
	return c, nil
}

// Email lower-cases an address. With fragment set, any partial value made of
// address characters is accepted for "contains" searches.
func Email(s string, fragment bool) (string, error) {
	e := strings.ToLower(strings.TrimSpace(s))
	if fragment {
		e = emailFragment.ReplaceAllString(e, "")
		if e == "" {
			return "", ErrInvalidEmail
		}
		return e, nil
	}
	if _, err := mail.ParseAddress(e); err != nil || !emailFullFormat.MatchString(e) {
		return "", ErrInvalidEmail
	}
	return e, nil
}

// String cleans free text: accents dropped, punctuation removed, spaces
// collapsed, upper-cased and truncated to maxLen runes followed by "...".
// maxLen <= 0 selects DefaultMaxLen.
func String(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	out := stringDisallow.ReplaceAllString(Unaccent(s), "")
	out = strings.ToUpper(strings.TrimSpace(spaceRuns.ReplaceAllString(out, " ")))
	if len(out) > maxLen {
		out = out[:maxLen] + "..."
	}
	return out
}

// Date validates a YYYY-MM-DD value and returns it re-formatted.
func Date(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidDate
	}
	return d.Format(DateLayout), nil
}
