package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

type stubSiteService struct {
	listBranchesFn func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.WebBranch], error)
	listPagesFn    func(ctx context.Context, q ports.WebPageQuery, page ports.PageRequest) (ports.Page[domain.WebPage], error)
	getPageFn      func(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error)
}

func (s *stubSiteService) ListBranches(ctx context.Context, page ports.PageRequest) (ports.Page[domain.WebBranch], error) {
	return s.listBranchesFn(ctx, page)
}

func (s *stubSiteService) GetBranch(context.Context, string) (domain.Lookup[domain.WebBranch], error) {
	return domain.Lookup[domain.WebBranch]{}, nil
}

func (s *stubSiteService) ListPages(ctx context.Context, q ports.WebPageQuery, page ports.PageRequest) (ports.Page[domain.WebPage], error) {
	return s.listPagesFn(ctx, q, page)
}

func (s *stubSiteService) GetPage(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error) {
	return s.getPageFn(ctx, key)
}

func TestSiteHandler_ListBranches_Paged(t *testing.T) {
	_, c, rec := newTestContext("/v4/web_ramas?page=3&size=2")
	stub := &stubSiteService{
		listBranchesFn: func(_ context.Context, page ports.PageRequest) (ports.Page[domain.WebBranch], error) {
			if page.Offset != 4 || page.Limit != 2 {
				t.Fatalf("page 3 of size 2 must start at row 4, got %+v", page)
			}
			return ports.Page[domain.WebBranch]{
				Items: []domain.WebBranch{{Key: "NOTICIAS"}, {Key: "AVISOS"}},
				Total: 5,
			}, nil
		},
	}

	if err := NewSiteHandler(stub).ListBranches(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["success"] != true || resp["total"] != float64(5) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp["page"] != float64(3) || resp["size"] != float64(2) || resp["pages"] != float64(3) {
		t.Fatalf("unexpected paging: %+v", resp)
	}
	if items, ok := resp["items"].([]any); !ok || len(items) != 2 {
		t.Fatalf("expected two items, got %+v", resp["items"])
	}
	if _, ok := resp["data"]; ok {
		t.Fatalf("page/size envelope must not carry data")
	}
}

func TestSiteHandler_ListBranches_ZeroSize(t *testing.T) {
	_, c, rec := newTestContext("/v4/web_ramas?size=0")
	stub := &stubSiteService{
		listBranchesFn: func(_ context.Context, page ports.PageRequest) (ports.Page[domain.WebBranch], error) {
			if page.Limit != 0 || page.Offset != 0 {
				t.Fatalf("size 0 must request every row, got %+v", page)
			}
			return ports.Page[domain.WebBranch]{
				Items: []domain.WebBranch{{Key: "A"}, {Key: "B"}, {Key: "C"}},
				Total: 3,
			}, nil
		},
	}

	if err := NewSiteHandler(stub).ListBranches(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["size"] != float64(3) || resp["pages"] != float64(1) {
		t.Fatalf("size must be coerced to the total, got %+v", resp)
	}
}

func TestSiteHandler_ListPages_BadSize(t *testing.T) {
	_, c, rec := newTestContext("/v4/web_paginas?size=abc")
	stub := &stubSiteService{
		listPagesFn: func(context.Context, ports.WebPageQuery, ports.PageRequest) (ports.Page[domain.WebPage], error) {
			t.Fatalf("service must not be called")
			return ports.Page[domain.WebPage]{}, nil
		},
	}

	if err := NewSiteHandler(stub).ListPages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["success"] != false {
		t.Fatalf("expected failure envelope, got %+v", resp)
	}
	if items, ok := resp["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("failure must carry an empty items list, got %+v", resp["items"])
	}
}

func TestSiteHandler_ListPages_ForwardsBranch(t *testing.T) {
	_, c, rec := newTestContext("/v4/web_paginas?web_rama_clave=noticias")
	stub := &stubSiteService{
		listPagesFn: func(_ context.Context, q ports.WebPageQuery, _ ports.PageRequest) (ports.Page[domain.WebPage], error) {
			if q.BranchKey != "noticias" {
				t.Fatalf("unexpected query %+v", q)
			}
			return ports.Page[domain.WebPage]{}, domain.InvalidParam("No está habilitada esa rama")
		},
	}

	if err := NewSiteHandler(stub).ListPages(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["message"] != "No está habilitada esa rama" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestSiteHandler_GetPage_IncludesContent(t *testing.T) {
	_, c, rec := newTestContext("/v4/web_paginas/ACERCA")
	c.SetParamNames("clave")
	c.SetParamValues("ACERCA")
	stub := &stubSiteService{
		getPageFn: func(context.Context, string) (domain.Lookup[domain.WebPage], error) {
			return domain.LookupOf(&domain.WebPage{Key: "ACERCA", Content: "<p>Hola</p>", Status: domain.StatusActive}), nil
		},
	}

	if err := NewSiteHandler(stub).GetPage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	data, ok := resp["data"].(map[string]any)
	if !ok || data["contenido"] != "<p>Hola</p>" {
		t.Fatalf("expected page content in detail, got %+v", resp)
	}
}
