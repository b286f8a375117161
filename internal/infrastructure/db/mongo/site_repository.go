package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

const (
	collectionWebBranches = "web_ramas"
	collectionWebPages    = "web_paginas"
)

type SiteRepository struct {
	branches *mongo.Collection
	pages    *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) *SiteRepository {
	return &SiteRepository{
		branches: db.Collection(collectionWebBranches),
		pages:    db.Collection(collectionWebPages),
	}
}

func (r *SiteRepository) ListBranches(ctx context.Context, page ports.PageRequest) ([]domain.WebBranch, int64, error) {
	return findPage[domain.WebBranch](ctx, r.branches, activeFilter(), bson.D{{Key: "nombre", Value: 1}}, page, nil)
}

func (r *SiteRepository) FindBranch(ctx context.Context, key string) (domain.Lookup[domain.WebBranch], error) {
	return lookup[domain.WebBranch](ctx, r.branches, bson.M{"clave": key})
}

// ListPages leaves out the page content.
func (r *SiteRepository) ListPages(ctx context.Context, q ports.WebPageQuery, page ports.PageRequest) ([]domain.WebPage, int64, error) {
	filter := activeFilter()
	setString(filter, "web_rama_clave", q.BranchKey)
	return findPage[domain.WebPage](ctx, r.pages, filter, bson.D{{Key: "clave", Value: 1}}, page, bson.M{"contenido": 0})
}

func (r *SiteRepository) FindPage(ctx context.Context, key string) (domain.Lookup[domain.WebPage], error) {
	return lookup[domain.WebPage](ctx, r.pages, bson.M{"clave": key})
}

func (r *SiteRepository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	if err := createIndexes(ctx, r.branches, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
	}); err != nil {
		return err
	}
	return createIndexes(ctx, r.pages, []mongo.IndexModel{
		{Keys: bson.D{{Key: "clave", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "web_rama_clave", Value: 1}, {Key: "estatus", Value: 1}}},
	})
}
