package ports

import (
	"context"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// WebPageQuery filters web pages by the clave of their branch.
type WebPageQuery struct {
	BranchKey string
}

// SiteRepository reads the public site tree.
type SiteRepository interface {
	ListBranches(ctx context.Context, page PageRequest) ([]domain.WebBranch, int64, error)
	FindBranch(ctx context.Context, key string) (domain.Lookup[domain.WebBranch], error)
	// ListPages never loads page content.
	ListPages(ctx context.Context, q WebPageQuery, page PageRequest) ([]domain.WebPage, int64, error)
	FindPage(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error)
}

type SiteService interface {
	ListBranches(ctx context.Context, page PageRequest) (Page[domain.WebBranch], error)
	GetBranch(ctx context.Context, key string) (domain.Lookup[domain.WebBranch], error)
	ListPages(ctx context.Context, q WebPageQuery, page PageRequest) (Page[domain.WebPage], error)
	GetPage(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error)
}
