package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
)

// activeFilter starts every list filter: soft-deleted records are never listed.
func activeFilter() bson.M {
	return bson.M{"estatus": string(domain.StatusActive)}
}

// setFlag adds an equality condition for an optional boolean.
func setFlag(filter bson.M, field string, v *bool) {
	if v != nil {
		filter[field] = *v
	}
}

func setString(filter bson.M, field, v string) {
	if v != "" {
		filter[field] = v
	}
}

func setID(filter bson.M, field string, v int64) {
	if v > 0 {
		filter[field] = v
	}
}

// setPrefix matches values starting with v.
func setPrefix(filter bson.M, field, v string) {
	if v != "" {
		filter[field] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v)}
	}
}

// setContains matches values containing v, ignoring case.
func setContains(filter bson.M, field, v string) {
	if v != "" {
		filter[field] = primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"}
	}
}

// setDateRange filters a YYYY-MM-DD string field by an exact date or an
// inclusive range. The format sorts lexically.
func setDateRange(filter bson.M, field, exact, from, to string) {
	if exact != "" {
		filter[field] = exact
		return
	}
	cond := bson.M{}
	if from != "" {
		cond["$gte"] = from
	}
	if to != "" {
		cond["$lte"] = to
	}
	if len(cond) > 0 {
		filter[field] = cond
	}
}

// findPage counts the matches and loads one window of them.
func findPage[T any](
	ctx context.Context,
	col *mongo.Collection,
	filter bson.M,
	sort bson.D,
	page ports.PageRequest,
	projection bson.M,
) ([]T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))
	if projection != nil {
		opts.SetProjection(projection)
	}

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	items := make([]T, 0, page.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return items, total, nil
}

// findOne returns nil without error when nothing matches.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one %s: %w", col.Name(), err)
	}
	return &doc, nil
}

// lookup wraps findOne into the three-state result.
func lookup[T domain.Record](ctx context.Context, col *mongo.Collection, filter bson.M) (domain.Lookup[T], error) {
	doc, err := findOne[T](ctx, col, filter)
	if err != nil {
		return domain.Lookup[T]{}, err
	}
	return domain.LookupOf(doc), nil
}

func createIndexes(ctx context.Context, col *mongo.Collection, models []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if _, err := col.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("ensure indexes %s: %w", col.Name(), err)
	}
	return nil
}
