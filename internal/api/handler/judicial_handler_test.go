package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

type stubJudicialService struct {
	listDistrictsFn   func(ctx context.Context, q ports.DistrictQuery, page ports.PageRequest) (ports.Page[domain.District], error)
	getDistrictFn     func(ctx context.Context, key string) (domain.Lookup[domain.District], error)
	listAuthoritiesFn func(ctx context.Context, q ports.AuthorityQuery, page ports.PageRequest) (ports.Page[domain.Authority], error)
	listNoticesFn     func(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.Notice], error)
	getNoticeFn       func(ctx context.Context, id string) (domain.Lookup[domain.Notice], error)
	listAgreementsFn  func(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.AgreementList], error)
	listTrialTypesFn  func(ctx context.Context, q ports.TrialTypeQuery, page ports.PageRequest) (ports.Page[domain.TrialType], error)
	getMunicipalityFn func(ctx context.Context, id string) (domain.Lookup[domain.Municipality], error)
}

func (s *stubJudicialService) ListDistricts(ctx context.Context, q ports.DistrictQuery, page ports.PageRequest) (ports.Page[domain.District], error) {
	return s.listDistrictsFn(ctx, q, page)
}

func (s *stubJudicialService) GetDistrict(ctx context.Context, key string) (domain.Lookup[domain.District], error) {
	return s.getDistrictFn(ctx, key)
}

func (s *stubJudicialService) ListAuthorities(ctx context.Context, q ports.AuthorityQuery, page ports.PageRequest) (ports.Page[domain.Authority], error) {
	return s.listAuthoritiesFn(ctx, q, page)
}

func (s *stubJudicialService) GetAuthority(context.Context, string) (domain.Lookup[domain.Authority], error) {
	return domain.Lookup[domain.Authority]{}, nil
}

func (s *stubJudicialService) ListNotices(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.Notice], error) {
	return s.listNoticesFn(ctx, q, page)
}

func (s *stubJudicialService) GetNotice(ctx context.Context, id string) (domain.Lookup[domain.Notice], error) {
	return s.getNoticeFn(ctx, id)
}

func (s *stubJudicialService) ListRulings(context.Context, ports.PublicationQuery, ports.PageRequest) (ports.Page[domain.Ruling], error) {
	return ports.Page[domain.Ruling]{}, nil
}

func (s *stubJudicialService) GetRuling(context.Context, string) (domain.Lookup[domain.Ruling], error) {
	return domain.Lookup[domain.Ruling]{}, nil
}

func (s *stubJudicialService) ListAgreementLists(ctx context.Context, q ports.PublicationQuery, page ports.PageRequest) (ports.Page[domain.AgreementList], error) {
	return s.listAgreementsFn(ctx, q, page)
}

func (s *stubJudicialService) GetAgreementList(context.Context, string) (domain.Lookup[domain.AgreementList], error) {
	return domain.Lookup[domain.AgreementList]{}, nil
}

func (s *stubJudicialService) ListMatters(context.Context, ports.PageRequest) (ports.Page[domain.Matter], error) {
	return ports.Page[domain.Matter]{}, nil
}

func (s *stubJudicialService) GetMatter(context.Context, string) (domain.Lookup[domain.Matter], error) {
	return domain.Lookup[domain.Matter]{}, nil
}

func (s *stubJudicialService) ListTrialTypes(ctx context.Context, q ports.TrialTypeQuery, page ports.PageRequest) (ports.Page[domain.TrialType], error) {
	return s.listTrialTypesFn(ctx, q, page)
}

func (s *stubJudicialService) ListMunicipalities(context.Context, ports.PageRequest) (ports.Page[domain.Municipality], error) {
	return ports.Page[domain.Municipality]{}, nil
}

func (s *stubJudicialService) GetMunicipality(ctx context.Context, id string) (domain.Lookup[domain.Municipality], error) {
	return s.getMunicipalityFn(ctx, id)
}

func newTestContext(target string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestJudicialHandler_ListDistricts_Success(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/distritos?es_distrito=true&limit=2&offset=4")
	stub := &stubJudicialService{
		listDistrictsFn: func(_ context.Context, q ports.DistrictQuery, page ports.PageRequest) (ports.Page[domain.District], error) {
			if q.IsDistrict == nil || !*q.IsDistrict || q.IsJurisdictional != nil {
				t.Fatalf("unexpected filter %+v", q)
			}
			if page.Limit != 2 || page.Offset != 4 {
				t.Fatalf("unexpected page %+v", page)
			}
			return ports.Page[domain.District]{
				Items: []domain.District{{Key: "DSAL", Name: "Distrito de Saltillo"}},
				Total: 7,
			}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListDistricts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["success"] != true || resp["message"] != "Success" {
		t.Fatalf("unexpected envelope head: %+v", resp)
	}
	if resp["total"] != float64(7) || resp["limit"] != float64(2) || resp["offset"] != float64(4) {
		t.Fatalf("unexpected envelope counters: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one item in data, got %+v", resp["data"])
	}
	if item := data[0].(map[string]any); item["clave"] != "DSAL" {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestJudicialHandler_ListDistricts_Empty(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/distritos")
	stub := &stubJudicialService{
		listDistrictsFn: func(_ context.Context, _ ports.DistrictQuery, page ports.PageRequest) (ports.Page[domain.District], error) {
			if page.Limit != 10 || page.Offset != 0 {
				t.Fatalf("defaults not applied: %+v", page)
			}
			return ports.Page[domain.District]{}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListDistricts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["success"] != true || resp["message"] != "No se encontraron registros" {
		t.Fatalf("unexpected empty envelope: %+v", resp)
	}
	if resp["total"] != nil || resp["limit"] != nil || resp["offset"] != nil {
		t.Fatalf("empty envelope must carry null counters: %+v", resp)
	}
}

func TestJudicialHandler_ListDistricts_LimitOutOfRange(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/distritos?limit=500")
	stub := &stubJudicialService{
		listDistrictsFn: func(context.Context, ports.DistrictQuery, ports.PageRequest) (ports.Page[domain.District], error) {
			t.Fatalf("service must not be called")
			return ports.Page[domain.District]{}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListDistricts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("failure envelopes are served with 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["success"] != false {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
}

func TestJudicialHandler_ListDistricts_BadBool(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/distritos?es_jurisdiccional=quizas")
	stub := &stubJudicialService{
		listDistrictsFn: func(context.Context, ports.DistrictQuery, ports.PageRequest) (ports.Page[domain.District], error) {
			t.Fatalf("service must not be called")
			return ports.Page[domain.District]{}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListDistricts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false || resp["message"] != "Es inválido el valor de es_jurisdiccional" {
		t.Fatalf("unexpected failure envelope: %+v", resp)
	}
}

func TestJudicialHandler_ListAuthorities_ReferenceFailure(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/autoridades?distrito_clave=XX")
	stub := &stubJudicialService{
		listAuthoritiesFn: func(_ context.Context, q ports.AuthorityQuery, _ ports.PageRequest) (ports.Page[domain.Authority], error) {
			if q.DistrictKey != "XX" {
				t.Fatalf("filter not forwarded: %+v", q)
			}
			return ports.Page[domain.Authority]{}, domain.InvalidParam("No existe ese distrito")
		},
	}

	if err := NewJudicialHandler(stub).ListAuthorities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false || resp["message"] != "No existe ese distrito" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if data, ok := resp["data"].([]any); !ok || len(data) != 0 {
		t.Fatalf("failure envelope must carry an empty list, got %+v", resp["data"])
	}
}

func TestJudicialHandler_ListNotices_StorageError(t *testing.T) {
	_, c, _ := newTestContext("/api/v5/edictos?fecha=2024-01-02")
	boom := errors.New("mongo down")
	stub := &stubJudicialService{
		listNoticesFn: func(_ context.Context, q ports.PublicationQuery, _ ports.PageRequest) (ports.Page[domain.Notice], error) {
			if q.Date != "2024-01-02" {
				t.Fatalf("date not forwarded: %+v", q)
			}
			return ports.Page[domain.Notice]{}, boom
		},
	}

	if err := NewJudicialHandler(stub).ListNotices(c); !errors.Is(err, boom) {
		t.Fatalf("expected storage error to reach the error handler, got %v", err)
	}
}

func TestJudicialHandler_GetDistrict_States(t *testing.T) {
	cases := []struct {
		name    string
		lookup  domain.Lookup[domain.District]
		success bool
		message string
	}{
		{"found", domain.LookupOf(&domain.District{Key: "DSAL", Status: domain.StatusActive}), true, "Success"},
		{"not found", domain.LookupOf[domain.District](nil), false, "No existe ese distrito"},
		{"inactive", domain.LookupOf(&domain.District{Key: "DSAL", Status: domain.StatusDeleted}), false, "No está habilitado ese distrito"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c, rec := newTestContext("/api/v5/distritos/DSAL")
			c.SetParamNames("clave")
			c.SetParamValues("dsal")
			stub := &stubJudicialService{
				getDistrictFn: func(_ context.Context, key string) (domain.Lookup[domain.District], error) {
					if key != "dsal" {
						t.Fatalf("unexpected key %q", key)
					}
					return tc.lookup, nil
				},
			}

			if err := NewJudicialHandler(stub).GetDistrict(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			resp := decodeBody(t, rec)
			if resp["success"] != tc.success || resp["message"] != tc.message {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
			if !tc.success && resp["data"] != nil {
				t.Fatalf("failure must carry null data, got %+v", resp["data"])
			}
		})
	}
}

func TestJudicialHandler_GetNotice_InvalidID(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/edictos/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	stub := &stubJudicialService{
		getNoticeFn: func(context.Context, string) (domain.Lookup[domain.Notice], error) {
			return domain.Lookup[domain.Notice]{}, domain.InvalidParam("Es inválido el ID del edicto")
		},
	}

	if err := NewJudicialHandler(stub).GetNotice(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false || resp["message"] != "Es inválido el ID del edicto" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestJudicialHandler_ListAuthorities_InvalidClave(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/autoridades?materia_clave=c_v")
	stub := &stubJudicialService{
		listAuthoritiesFn: func(context.Context, ports.AuthorityQuery, ports.PageRequest) (ports.Page[domain.Authority], error) {
			t.Fatalf("service must not be called")
			return ports.Page[domain.Authority]{}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListAuthorities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false || resp["message"] != "Es inválida la clave en materia_clave" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestJudicialHandler_ListAgreementLists_ForwardsFilters(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/listas_de_acuerdos?autoridad_clave=SLT-J2-FAM&fecha_desde=2025-03-01&fecha_hasta=2025-03-31")
	stub := &stubJudicialService{
		listAgreementsFn: func(_ context.Context, q ports.PublicationQuery, _ ports.PageRequest) (ports.Page[domain.AgreementList], error) {
			if q.AuthorityKey != "SLT-J2-FAM" || q.DateFrom != "2025-03-01" || q.DateTo != "2025-03-31" {
				t.Fatalf("filters not forwarded: %+v", q)
			}
			list := domain.AgreementList{}
			list.ID = 501
			list.Date = "2025-03-03"
			return ports.Page[domain.AgreementList]{Items: []domain.AgreementList{list}, Total: 1}, nil
		},
	}

	if err := NewJudicialHandler(stub).ListAgreementLists(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one agreement list, got %+v", resp)
	}
	if item := data[0].(map[string]any); item["id"] != float64(501) || item["fecha"] != "2025-03-03" {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestJudicialHandler_ListTrialTypes_ForwardsMatter(t *testing.T) {
	_, c, rec := newTestContext("/api/v5/materias_tipos_juicios?materia_clave=fam")
	stub := &stubJudicialService{
		listTrialTypesFn: func(_ context.Context, q ports.TrialTypeQuery, _ ports.PageRequest) (ports.Page[domain.TrialType], error) {
			if q.MatterKey != "fam" {
				t.Fatalf("matter not forwarded: %+v", q)
			}
			return ports.Page[domain.TrialType]{}, domain.InvalidParam("No está habilitada esa materia")
		},
	}

	if err := NewJudicialHandler(stub).ListTrialTypes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["success"] != false || resp["message"] != "No está habilitada esa materia" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestJudicialHandler_GetMunicipality_States(t *testing.T) {
	cases := []struct {
		name    string
		lookup  domain.Lookup[domain.Municipality]
		success bool
		message string
	}{
		{"found", domain.LookupOf(&domain.Municipality{ID: 30, Key: "030", Name: "Saltillo", Status: domain.StatusActive}), true, "Success"},
		{"not found", domain.LookupOf[domain.Municipality](nil), false, "No existe ese municipio"},
		{"inactive", domain.LookupOf(&domain.Municipality{ID: 30, Status: domain.StatusDeleted}), false, "No está habilitado ese municipio"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c, rec := newTestContext("/api/v5/municipios/30")
			c.SetParamNames("id")
			c.SetParamValues("30")
			stub := &stubJudicialService{
				getMunicipalityFn: func(_ context.Context, id string) (domain.Lookup[domain.Municipality], error) {
					if id != "30" {
						t.Fatalf("unexpected id %q", id)
					}
					return tc.lookup, nil
				},
			}

			if err := NewJudicialHandler(stub).GetMunicipality(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			resp := decodeBody(t, rec)
			if resp["success"] != tc.success || resp["message"] != tc.message {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
			if tc.success {
				if data := resp["data"].(map[string]any); data["clave"] != "030" || data["nombre"] != "Saltillo" {
					t.Fatalf("unexpected data %+v", data)
				}
			}
		})
	}
}
