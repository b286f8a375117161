package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/api/envelope"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

var queryBinder = &echo.DefaultBinder{}

// bindOffsetParams reads limit and offset, keeping the defaults for absent
// parameters.
func bindOffsetParams(c echo.Context) (envelope.OffsetParams, error) {
	p := envelope.DefaultOffsetParams()
	if err := queryBinder.BindQueryParams(c, &p); err != nil {
		return p, domain.InvalidParam("Los parámetros limit y offset deben ser números enteros")
	}
	if err := c.Validate(p); err != nil {
		return p, domain.InvalidParam(err.Error())
	}
	return p, nil
}

// bindSizeParams reads page and size, keeping the defaults for absent
// parameters.
func bindSizeParams(c echo.Context) (envelope.SizeParams, error) {
	p := envelope.DefaultSizeParams()
	if err := queryBinder.BindQueryParams(c, &p); err != nil {
		return p, domain.InvalidParam("Los parámetros page y size deben ser números enteros")
	}
	if err := c.Validate(p); err != nil {
		return p, domain.InvalidParam(err.Error())
	}
	return p, nil
}

// bindFilter binds the filters of a list into dst, a pointer to a struct
// with query and validate tags.
func bindFilter(c echo.Context, dst any) error {
	if err := queryBinder.BindQueryParams(c, dst); err != nil {
		return domain.InvalidParam("Los filtros de la consulta son inválidos")
	}
	if err := c.Validate(dst); err != nil {
		return domain.InvalidParam(err.Error())
	}
	return nil
}

type authorityFilter struct {
	DistrictKey string `query:"distrito_clave" validate:"omitempty,clave"`
	MatterKey   string `query:"materia_clave" validate:"omitempty,clave"`
}

type publicationFilter struct {
	AuthorityKey string `query:"autoridad_clave" validate:"omitempty,clave"`
	Date         string `query:"fecha"`
	DateFrom     string `query:"fecha_desde"`
	DateTo       string `query:"fecha_hasta"`
}

type trialTypeFilter struct {
	MatterKey string `query:"materia_clave" validate:"omitempty,clave"`
}

type webPageFilter struct {
	BranchKey string `query:"web_rama_clave" validate:"omitempty,clave"`
}

func offsetRequest(p envelope.OffsetParams) ports.PageRequest {
	return ports.PageRequest{Offset: p.Offset, Limit: p.Limit}
}

func sizeRequest(p envelope.SizeParams) ports.PageRequest {
	return ports.PageRequest{Offset: p.Offset(), Limit: p.Size}
}

// optionalBool parses a boolean filter. An absent value is nil.
func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.InvalidParam("Es inválido el valor de " + name)
	}
	return &v, nil
}

// optionalID parses a positive integer filter. An absent value is zero.
func optionalID(c echo.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidParam("Es inválido el valor de " + name)
	}
	return id, nil
}
