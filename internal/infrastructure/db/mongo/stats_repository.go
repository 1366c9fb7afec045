package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// revenuePipeline sums price*qty over the items of every non-cancelled order.
var revenuePipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$ne", Value: string(domain.StatusCancelled)}}}}}},
	{{Key: "$unwind", Value: "$items"}},
	{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
			{Key: "$multiply", Value: bson.A{"$items.price", "$items.qty"}},
		}}}},
	}}},
}

func (r *StatsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var st domain.Stats
	counts := []struct {
		coll string
		dst  *int64
	}{
		{collectionOrders, &st.Orders},
		{collectionBookings, &st.Bookings},
		{collectionMessages, &st.Messages},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.coll).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.coll, err)
		}
		*c.dst = n
	}

	cursor, err := r.db.Collection(collectionOrders).Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) > 0 {
		st.Revenue = rows[0].Total
	}
	return &st, nil
}
