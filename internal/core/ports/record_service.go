package ports

import (
	"context"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

// OrderItemInput is one requested line of an order.
type OrderItemInput struct {
	MenuItemID string
	Name       string
	Price      float64
	Qty        int
}

type PlaceOrderInput struct {
	UserID         string
	Items          []OrderItemInput
	IdempotencyKey string
}

type BookTableInput struct {
	UserID         string
	Name           string
	Date           string
	Time           string
	Guests         int
	IdempotencyKey string
}

type SubmitMessageInput struct {
	Name           string
	Email          string
	Body           string
	IdempotencyKey string
}

// Created wraps a newly created record. Replayed is true when the
// Idempotency-Key matched an earlier request and nothing new was stored.
type Created[T any] struct {
	Record   T
	Replayed bool
}

type OrderService interface {
	Place(ctx context.Context, in PlaceOrderInput) (*Created[*domain.Order], error)
	ListMine(ctx context.Context, userID string) ([]*domain.Order, error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type BookingService interface {
	Book(ctx context.Context, in BookTableInput) (*Created[*domain.Booking], error)
	ListMine(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type MessageService interface {
	Submit(ctx context.Context, in SubmitMessageInput) (*Created[*domain.Message], error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// WorkflowService moves workflow records between statuses.
type WorkflowService interface {
	SetStatus(ctx context.Context, kind domain.RecordKind, id, status string, actor domain.Claims) (domain.Record, error)
}

type MenuItemInput struct {
	Name        string
	Category    string
	Price       float64
	Description string
	ImageURL    string
}

type MenuService interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, update MenuUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
