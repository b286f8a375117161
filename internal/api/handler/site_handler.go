package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// SiteHandler serves the web site tree with page/size pagination.
type SiteHandler struct {
	service ports.SiteService
}

func NewSiteHandler(service ports.SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

var (
	branchMsgs = lookupMessages{missing: "No existe esa rama", disabled: "No está habilitada esa rama"}
	pageMsgs   = lookupMessages{missing: "No existe esa página", disabled: "No está habilitada esa página"}
)

// ListBranches handles GET /v4/web_ramas.
//
// @Summary      List web branches
// @Tags         web_ramas
// @Produce      json
// @Security     ApiKeyAuth
// @Param        page  query     int  false  "1-based page"                     default(1)
// @Param        size  query     int  false  "Page length (0-1000, 0 for all)"  default(10)
// @Success      200   {object}  envelope.SizedPage[domain.WebBranch]
// @Failure      403   {object}  map[string]any
// @Router       /v4/web_ramas [get]
func (h *SiteHandler) ListBranches(c echo.Context) error {
	return sizedList(c, "web_ramas", h.service.ListBranches)
}

// GetBranch handles GET /v4/web_ramas/:clave.
//
// @Summary      Get a web branch by clave
// @Tags         web_ramas
// @Produce      json
// @Security     ApiKeyAuth
// @Param        clave  path      string  true  "Branch clave"
// @Success      200    {object}  envelope.One[domain.WebBranch]
// @Router       /v4/web_ramas/{clave} [get]
func (h *SiteHandler) GetBranch(c echo.Context) error {
	return detail(c, "web_ramas", branchMsgs, func(ctx context.Context) (domain.Lookup[domain.WebBranch], error) {
		return h.service.GetBranch(ctx, c.Param("clave"))
	})
}

// ListPages handles GET /v4/web_paginas.
//
// @Summary      List web pages
// @Tags         web_paginas
// @Produce      json
// @Security     ApiKeyAuth
// @Param        web_rama_clave  query     string  false  "Branch clave"
// @Param        page            query     int     false  "1-based page"                     default(1)
// @Param        size            query     int     false  "Page length (0-1000, 0 for all)"  default(10)
// @Success      200             {object}  envelope.SizedPage[domain.WebPage]
// @Failure      403             {object}  map[string]any
// @Router       /v4/web_paginas [get]
func (h *SiteHandler) ListPages(c echo.Context) error {
	return sizedList(c, "web_paginas", func(ctx context.Context, page ports.PageRequest) (ports.Page[domain.WebPage], error) {
		var f webPageFilter
		if err := bindFilter(c, &f); err != nil {
			return ports.Page[domain.WebPage]{}, err
		}
		return h.service.ListPages(ctx, ports.WebPageQuery{BranchKey: f.BranchKey}, page)
	})
}

// GetPage handles GET /v4/web_paginas/:clave. Unlike the list, the detail
// carries the page content.
//
// @Summary      Get a web page by clave
// @Tags         web_paginas
// @Produce      json
// @Security     ApiKeyAuth
// @Param        clave  path      string  true  "Page clave"
// @Success      200    {object}  envelope.One[domain.WebPage]
// @Router       /v4/web_paginas/{clave} [get]
func (h *SiteHandler) GetPage(c echo.Context) error {
	return detail(c, "web_paginas", pageMsgs, func(ctx context.Context) (domain.Lookup[domain.WebPage], error) {
		return h.service.GetPage(ctx, c.Param("clave"))
	})
}
