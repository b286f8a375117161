package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// JudicialHandler serves the courts catalog and the documents authorities
// publish.
type JudicialHandler struct {
	service ports.JudicialService
}

func NewJudicialHandler(service ports.JudicialService) *JudicialHandler {
	return &JudicialHandler{service: service}
}

var (
	districtMsgs  = lookupMessages{missing: "No existe ese distrito", disabled: "No está habilitado ese distrito"}
	authorityMsgs = lookupMessages{missing: "No existe esa autoridad", disabled: "No está habilitada esa autoridad"}
	noticeMsgs    = lookupMessages{missing: "No existe ese edicto", disabled: "No está habilitado ese edicto"}
	rulingMsgs    = lookupMessages{missing: "No existe esa sentencia", disabled: "No está habilitada esa sentencia"}
	agreementMsgs = lookupMessages{missing: "No existe esa lista de acuerdos", disabled: "No es activa esa lista de acuerdos, está eliminada"}
	matterMsgs    = lookupMessages{missing: "No existe esa materia", disabled: "No está habilitada esa materia"}
	municipioMsgs = lookupMessages{missing: "No existe ese municipio", disabled: "No está habilitado ese municipio"}
)

// ListDistricts handles GET /api/v5/distritos.
//
// @Summary      List districts
// @Tags         distritos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        es_distrito        query     bool  false  "Only districts"
// @Param        es_jurisdiccional  query     bool  false  "Only jurisdictional districts"
// @Param        limit              query     int   false  "Page length (1-100)"  default(10)
// @Param        offset             query     int   false  "Rows to skip"         default(0)
// @Success      200                {object}  envelope.OffsetPage[domain.District]
// @Failure      403                {object}  map[string]any
// @Router       /api/v5/distritos [get]
func (h *JudicialHandler) ListDistricts(c echo.Context) error {
	return offsetList(c, "distritos", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.District], error) {
		isDistrict, err := optionalBool(c, "es_distrito")
		if err != nil {
			return ports.Page[domain.District]{}, err
		}
		isJurisdictional, err := optionalBool(c, "es_jurisdiccional")
		if err != nil {
			return ports.Page[domain.District]{}, err
		}
		return h.service.ListDistricts(ctx, ports.DistrictQuery{
			IsDistrict:       isDistrict,
			IsJurisdictional: isJurisdictional,
		}, page)
	})
}

// GetDistrict handles GET /api/v5/distritos/:clave.
//
// @Summary      Get a district by clave
// @Tags         distritos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        clave  path      string  true  "District clave"
// @Success      200    {object}  envelope.One[domain.District]
// @Router       /api/v5/distritos/{clave} [get]
func (h *JudicialHandler) GetDistrict(c echo.Context) error {
	return detail(c, "distritos", districtMsgs, func(ctx context.Context) (domain.Lookup[domain.District], error) {
		return h.service.GetDistrict(ctx, c.Param("clave"))
	})
}

// ListAuthorities handles GET /api/v5/autoridades.
//
// @Summary      List authorities
// @Tags         autoridades
// @Produce      json
// @Security     ApiKeyAuth
// @Param        distrito_clave     query     string  false  "District clave"
// @Param        materia_clave      query     string  false  "Matter clave"
// @Param        es_jurisdiccional  query     bool    false  "Only jurisdictional authorities"
// @Param        es_notaria         query     bool    false  "Only notaries"
// @Param        limit              query     int     false  "Page length (1-100)"  default(10)
// @Param        offset             query     int     false  "Rows to skip"         default(0)
// @Success      200                {object}  envelope.OffsetPage[domain.Authority]
// @Failure      403                {object}  map[string]any
// @Router       /api/v5/autoridades [get]
func (h *JudicialHandler) ListAuthorities(c echo.Context) error {
	return offsetList(c, "autoridades", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Authority], error) {
		isJurisdictional, err := optionalBool(c, "es_jurisdiccional")
		if err != nil {
			return ports.Page[domain.Authority]{}, err
		}
		isNotary, err := optionalBool(c, "es_notaria")
		if err != nil {
			return ports.Page[domain.Authority]{}, err
		}
		var f authorityFilter
		if err := bindFilter(c, &f); err != nil {
			return ports.Page[domain.Authority]{}, err
		}
		return h.service.ListAuthorities(ctx, ports.AuthorityQuery{
			DistrictKey:      f.DistrictKey,
			MatterKey:        f.MatterKey,
			IsJurisdictional: isJurisdictional,
			IsNotary:         isNotary,
		}, page)
	})
}

// GetAuthority handles GET /api/v5/autoridades/:clave.
//
// @Summary      Get an authority by clave
// @Tags         autoridades
// @Produce      json
// @Security     ApiKeyAuth
// @Param        clave  path      string  true  "Authority clave"
// @Success      200    {object}  envelope.One[domain.Authority]
// @Router       /api/v5/autoridades/{clave} [get]
func (h *JudicialHandler) GetAuthority(c echo.Context) error {
	return detail(c, "autoridades", authorityMsgs, func(ctx context.Context) (domain.Lookup[domain.Authority], error) {
		return h.service.GetAuthority(ctx, c.Param("clave"))
	})
}

func publicationQuery(c echo.Context) (ports.PublicationQuery, error) {
	var f publicationFilter
	if err := bindFilter(c, &f); err != nil {
		return ports.PublicationQuery{}, err
	}
	return ports.PublicationQuery{
		AuthorityKey: f.AuthorityKey,
		Date:         f.Date,
		DateFrom:     f.DateFrom,
		DateTo:       f.DateTo,
	}, nil
}

// ListNotices handles GET /api/v5/edictos.
//
// @Summary      List notices
// @Tags         edictos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        autoridad_clave  query     string  false  "Authority clave"
// @Param        fecha            query     string  false  "Exact date (YYYY-MM-DD)"
// @Param        fecha_desde      query     string  false  "From date (YYYY-MM-DD)"
// @Param        fecha_hasta      query     string  false  "To date (YYYY-MM-DD)"
// @Param        limit            query     int     false  "Page length (1-100)"  default(10)
// @Param        offset           query     int     false  "Rows to skip"         default(0)
// @Success      200              {object}  envelope.OffsetPage[domain.Notice]
// @Failure      403              {object}  map[string]any
// @Router       /api/v5/edictos [get]
func (h *JudicialHandler) ListNotices(c echo.Context) error {
	return offsetList(c, "edictos", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Notice], error) {
		q, err := publicationQuery(c)
		if err != nil {
			return ports.Page[domain.Notice]{}, err
		}
		return h.service.ListNotices(ctx, q, page)
	})
}

// GetNotice handles GET /api/v5/edictos/:id.
//
// @Summary      Get a notice by id
// @Tags         edictos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Numeric or encoded id"
// @Success      200  {object}  envelope.One[domain.Notice]
// @Router       /api/v5/edictos/{id} [get]
func (h *JudicialHandler) GetNotice(c echo.Context) error {
	return detail(c, "edictos", noticeMsgs, func(ctx context.Context) (domain.Lookup[domain.Notice], error) {
		return h.service.GetNotice(ctx, c.Param("id"))
	})
}

// ListRulings handles GET /api/v5/sentencias.
//
// @Summary      List rulings
// @Tags         sentencias
// @Produce      json
// @Security     ApiKeyAuth
// @Param        autoridad_clave  query     string  false  "Authority clave"
// @Param        fecha            query     string  false  "Exact date (YYYY-MM-DD)"
// @Param        fecha_desde      query     string  false  "From date (YYYY-MM-DD)"
// @Param        fecha_hasta      query     string  false  "To date (YYYY-MM-DD)"
// @Param        limit            query     int     false  "Page length (1-100)"  default(10)
// @Param        offset           query     int     false  "Rows to skip"         default(0)
// @Success      200              {object}  envelope.OffsetPage[domain.Ruling]
// @Failure      403              {object}  map[string]any
// @Router       /api/v5/sentencias [get]
func (h *JudicialHandler) ListRulings(c echo.Context) error {
	return offsetList(c, "sentencias", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.Ruling], error) {
		q, err := publicationQuery(c)
		if err != nil {
			return ports.Page[domain.Ruling]{}, err
		}
		return h.service.ListRulings(ctx, q, page)
	})
}

// GetRuling handles GET /api/v5/sentencias/:id.
//
// @Summary      Get a ruling by id
// @Tags         sentencias
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Numeric or encoded id"
// @Success      200  {object}  envelope.One[domain.Ruling]
// @Router       /api/v5/sentencias/{id} [get]
func (h *JudicialHandler) GetRuling(c echo.Context) error {
	return detail(c, "sentencias", rulingMsgs, func(ctx context.Context) (domain.Lookup[domain.Ruling], error) {
		return h.service.GetRuling(ctx, c.Param("id"))
	})
}

// ListAgreementLists handles GET /api/v5/listas_de_acuerdos.
//
// @Summary      List agreement lists
// @Tags         listas_de_acuerdos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        autoridad_clave  query     string  false  "Authority clave"
// @Param        fecha            query     string  false  "Exact date (YYYY-MM-DD)"
// @Param        fecha_desde      query     string  false  "From date (YYYY-MM-DD)"
// @Param        fecha_hasta      query     string  false  "To date (YYYY-MM-DD)"
// @Param        limit            query     int     false  "Page length (1-100)"  default(10)
// @Param        offset           query     int     false  "Rows to skip"         default(0)
// @Success      200              {object}  envelope.OffsetPage[domain.AgreementList]
// @Failure      403              {object}  map[string]any
// @Router       /api/v5/listas_de_acuerdos [get]
func (h *JudicialHandler) ListAgreementLists(c echo.Context) error {
	return offsetList(c, "listas_de_acuerdos", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.AgreementList], error) {
		q, err := publicationQuery(c)
		if err != nil {
			return ports.Page[domain.AgreementList]{}, err
		}
		return h.service.ListAgreementLists(ctx, q, page)
	})
}

// GetAgreementList handles GET /api/v5/listas_de_acuerdos/:id.
//
// @Summary      Get an agreement list by id
// @Tags         listas_de_acuerdos
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Numeric or encoded id"
// @Success      200  {object}  envelope.One[domain.AgreementList]
// @Router       /api/v5/listas_de_acuerdos/{id} [get]
func (h *JudicialHandler) GetAgreementList(c echo.Context) error {
	return detail(c, "listas_de_acuerdos", agreementMsgs, func(ctx context.Context) (domain.Lookup[domain.AgreementList], error) {
		return h.service.GetAgreementList(ctx, c.Param("id"))
	})
}

// ListMatters handles GET /api/v5/materias.
//
// @Summary      List matters
// @Tags         materias
// @Produce      json
// @Security     ApiKeyAuth
// @Param        limit   query     int  false  "Page length (1-100)"  default(10)
// @Param        offset  query     int  false  "Rows to skip"         default(0)
// @Success      200     {object}  envelope.OffsetPage[domain.Matter]
// @Failure      403     {object}  map[string]any
// @Router       /api/v5/materias [get]
func (h *JudicialHandler) ListMatters(c echo.Context) error {
	return offsetList(c, "materias", h.service.ListMatters)
}

// GetMatter handles GET /api/v5/materias/:clave.
//
// @Summary      Get a matter by clave
// @Tags         materias
// @Produce      json
// @Security     ApiKeyAuth
// @Param        clave  path      string  true  "Matter clave"
// @Success      200    {object}  envelope.One[domain.Matter]
// @Router       /api/v5/materias/{clave} [get]
func (h *JudicialHandler) GetMatter(c echo.Context) error {
	return detail(c, "materias", matterMsgs, func(ctx context.Context) (domain.Lookup[domain.Matter], error) {
		return h.service.GetMatter(ctx, c.Param("clave"))
	})
}

// ListTrialTypes handles GET /api/v5/materias_tipos_juicios.
//
// @Summary      List trial types
// @Tags         materias_tipos_juicios
// @Produce      json
// @Security     ApiKeyAuth
// @Param        materia_clave  query     string  false  "Matter clave"
// @Param        limit          query     int     false  "Page length (1-100)"  default(10)
// @Param        offset         query     int     false  "Rows to skip"         default(0)
// @Success      200            {object}  envelope.OffsetPage[domain.TrialType]
// @Failure      403            {object}  map[string]any
// @Router       /api/v5/materias_tipos_juicios [get]
func (h *JudicialHandler) ListTrialTypes(c echo.Context) error {
	return offsetList(c, "materias_tipos_juicios", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.TrialType], error) {
		var f trialTypeFilter
		if err := bindFilter(c, &f); err != nil {
			return ports.Page[domain.TrialType]{}, err
		}
		return h.service.ListTrialTypes(ctx, ports.TrialTypeQuery{MatterKey: f.MatterKey}, page)
	})
}

// ListMunicipalities handles GET /api/v5/municipios.
//
// @Summary      List municipalities
// @Tags         municipios
// @Produce      json
// @Security     ApiKeyAuth
// @Param        limit   query     int  false  "Page length (1-100)"  default(10)
// @Param        offset  query     int  false  "Rows to skip"         default(0)
// @Success      200     {object}  envelope.OffsetPage[domain.Municipality]
// @Failure      403     {object}  map[string]any
// @Router       /api/v5/municipios [get]
func (h *JudicialHandler) ListMunicipalities(c echo.Context) error {
	return offsetList(c, "municipios", h.service.ListMunicipalities)
}

// GetMunicipality handles GET /api/v5/municipios/:id.
//
// @Summary      Get a municipality by id
// @Tags         municipios
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      int  true  "Municipality id"
// @Success      200  {object}  envelope.One[domain.Municipality]
// @Router       /api/v5/municipios/{id} [get]
func (h *JudicialHandler) GetMunicipality(c echo.Context) error {
	return detail(c, "municipios", municipioMsgs, func(ctx context.Context) (domain.Lookup[domain.Municipality], error) {
		return h.service.GetMunicipality(ctx, c.Param("id"))
	})
}
