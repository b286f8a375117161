package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

const (
	collectionAccessLog = "api_accesos"
	accessLogRetention  = 180 * 24 * time.Hour
)

// AccessLogRepository implements ports.AccessLogRepository using MongoDB.
type AccessLogRepository struct {
	col *mongo.Collection
}

func NewAccessLogRepository(db *mongo.Database) *AccessLogRepository {
	return &AccessLogRepository{col: db.Collection(collectionAccessLog)}
}

var _ ports.AccessLogRepository = (*AccessLogRepository)(nil)

func (r *AccessLogRepository) Insert(ctx context.Context, event *domain.AccessEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *event
	doc.At = doc.At.UTC()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert access event: %w", err)
	}
	return nil
}

// EnsureIndexes adds a per-user index and a TTL index that expires events
// after accessLogRetention.
func (r *AccessLogRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.col, []mongo.IndexModel{
		{Keys: bson.D{{Key: "usuario_id", Value: 1}, {Key: "creado", Value: -1}}},
		{
			Keys:    bson.D{{Key: "creado", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(accessLogRetention.Seconds())),
		},
	})
}
