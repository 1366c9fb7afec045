package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order document, assigning its id.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	o.ID = newID()
	return insertOne(ctx, r.col, o)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return findByID[domain.Order](ctx, r.col, id)
}

func (r *OrderRepository) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Order, error) {
	return findMany[domain.Order](ctx, r.col, recordFilter(filter))
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.ID = newID()
	return insertOne(ctx, r.col, b)
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	return findByID[domain.Booking](ctx, r.col, id)
}

func (r *BookingRepository) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Booking, error) {
	return findMany[domain.Booking](ctx, r.col, recordFilter(filter))
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// MessageRepository stores contact messages. Messages have no owner, so
// RecordFilter.UserID never matches anything but the empty filter.
type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	m.ID = newID()
	return insertOne(ctx, r.col, m)
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	return findByID[domain.Message](ctx, r.col, id)
}

func (r *MessageRepository) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Message, error) {
	return findMany[domain.Message](ctx, r.col, recordFilter(filter))
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
