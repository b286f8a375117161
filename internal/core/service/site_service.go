package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/internal/core/safe"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

// SiteService serves the public web site tree.
type SiteService struct {
	repo ports.SiteRepository
	log  zerolog.Logger
}

func NewSiteService(repo ports.SiteRepository, log zerolog.Logger) *SiteService {
	return &SiteService{repo: repo, log: logger.Component(log, "site")}
}

func (s *SiteService) ListBranches(ctx context.Context, page ports.PageRequest) (ports.Page[domain.WebBranch], error) {
	items, total, err := s.repo.ListBranches(ctx, page)
	return pageOf(items, total, err, "web branches")
}

func (s *SiteService) GetBranch(ctx context.Context, key string) (domain.Lookup[domain.WebBranch], error) {
	clave, err := safe.Clave(key)
	if err != nil {
		return domain.Lookup[domain.WebBranch]{}, domain.InvalidParam(branchRef.invalid)
	}
	return s.repo.FindBranch(ctx, clave)
}

func (s *SiteService) ListPages(ctx context.Context, q ports.WebPageQuery, page ports.PageRequest) (ports.Page[domain.WebPage], error) {
	branchKey, err := resolveReference(ctx, q.BranchKey, branchRef, s.repo.FindBranch)
	if err != nil {
		return ports.Page[domain.WebPage]{}, err
	}
	q.BranchKey = branchKey

	items, total, err := s.repo.ListPages(ctx, q, page)
	return pageOf(items, total, err, "web pages")
}

func (s *SiteService) GetPage(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error) {
	clave, err := safe.Clave(key)
	if err != nil {
		return domain.Lookup[domain.WebPage]{}, domain.InvalidParam("Es inválida la clave de la página")
	}
	return s.repo.FindPage(ctx, clave)
}
