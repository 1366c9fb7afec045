package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

// WorkflowRepository implements ports.WorkflowRepository using MongoDB.
type WorkflowRepository struct {
	db *mongo.Database
}

func NewWorkflowRepository(db *mongo.Database) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

func collectionFor(kind domain.RecordKind) (string, error) {
	switch kind {
	case domain.KindOrder:
		return collectionOrders, nil
	case domain.KindBooking:
		return collectionBookings, nil
	case domain.KindMessage:
		return collectionMessages, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", domain.ErrNotFound, kind)
}

func emptyRecord(kind domain.RecordKind) domain.Record {
	switch kind {
	case domain.KindOrder:
		return &domain.Order{}
	case domain.KindBooking:
		return &domain.Booking{}
	default:
		return &domain.Message{}
	}
}

// statusUpdate sets the new status and only bumps updated_at when the status
// actually changes, so repeating the same update leaves the document as is.
func statusUpdate(to domain.Status, at time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "updated_at", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$status", string(to)}}},
				"$updated_at",
				at.UTC(),
			}}}},
			{Key: "status", Value: string(to)},
		}}},
	}
}

// UpdateStatus atomically sets the record's status when its current status is
// one of from, returning the document as it is after the update.
func (r *WorkflowRepository) UpdateStatus(
	ctx context.Context,
	kind domain.RecordKind,
	id string,
	to domain.Status,
	from []domain.Status,
	at time.Time,
) (domain.Record, error) {
	name, err := collectionFor(kind)
	if err != nil {
		return nil, err
	}
	col := r.db.Collection(name)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	allowed := make(bson.A, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}
	filter := bson.M{"_id": id, "status": bson.M{"$in": allowed}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	rec := emptyRecord(kind)
	err = col.FindOneAndUpdate(ctx, filter, statusUpdate(to, at), opts).Decode(rec)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update %s status: %w", kind, err)
	}

	// Nothing matched: either the record is gone or its status is not an allowed source.
	n, err := col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("update %s status: %w", kind, err)
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInvalidTransition
}

// InsertStatusChange persists a status change to the status_changes audit collection.
func (r *WorkflowRepository) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	return insertOne(ctx, r.db.Collection(collectionStatusChanges), change)
}
