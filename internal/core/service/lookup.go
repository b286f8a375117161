package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/core/safe"
)

// referenceMessages are shown when a filter names a record that cannot be
// used.
type referenceMessages struct {
	invalid  string
	missing  string
	disabled string
}

var (
	districtRef  = referenceMessages{"Es inválida la clave del distrito", "No existe ese distrito", "No está habilitado ese distrito"}
	authorityRef = referenceMessages{"Es inválida la clave de la autoridad", "No existe esa autoridad", "No está habilitada esa autoridad"}
	matterRef    = referenceMessages{"Es inválida la clave de la materia", "No existe esa materia", "No está habilitada esa materia"}
	branchRef    = referenceMessages{"Es inválida la clave de la rama", "No existe esa rama", "No está habilitada esa rama"}
)

// resolveReference validates a clave filter and checks that the record it
// names exists and is active. An empty value is passed through.
func resolveReference[T any](
	ctx context.Context,
	raw string,
	msgs referenceMessages,
	find func(context.Context, string) (domain.Lookup[T], error),
) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	key, err := safe.Clave(raw)
	if err != nil {
		return "", domain.InvalidParam(msgs.invalid)
	}
	lookup, err := find(ctx, key)
	if err != nil {
		return "", err
	}
	switch lookup.State {
	case domain.NotFound:
		return "", domain.InvalidParam(msgs.missing)
	case domain.Inactive:
		return "", domain.InvalidParam(msgs.disabled)
	}
	return key, nil
}

// parseRecordID accepts a positive decimal id or its encoded form.
func parseRecordID(codec ports.IDCodec, raw, msg string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if id <= 0 {
			return 0, domain.InvalidParam(msg)
		}
		return id, nil
	}
	if id, ok := codec.Decode(raw); ok && id > 0 {
		return id, nil
	}
	return 0, domain.InvalidParam(msg)
}

func pageOf[T any](items []T, total int64, err error, what string) (ports.Page[T], error) {
	if err != nil {
		return ports.Page[T]{}, fmt.Errorf("list %s: %w", what, err)
	}
	return ports.Page[T]{Items: items, Total: total}, nil
}
