package ports

import (
	"context"
	"time"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

// RecordFilter narrows list queries over workflow records.
type RecordFilter struct {
	UserID string        // empty = every owner
	Status domain.Status // empty = every status
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter RecordFilter) ([]*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// WorkflowRepository persists status changes across all record kinds.
type WorkflowRepository interface {
	// UpdateStatus sets the record's status to `to` provided its current status
	// is one of `from`, and returns the updated record. It returns
	// domain.ErrNotFound when the record does not exist and
	// domain.ErrInvalidTransition when it exists with a status outside `from`.
	UpdateStatus(
		ctx context.Context,
		kind domain.RecordKind,
		id string,
		to domain.Status,
		from []domain.Status,
		at time.Time,
	) (domain.Record, error)

	// InsertStatusChange appends an entry to the status audit trail.
	InsertStatusChange(ctx context.Context, change *domain.StatusChange) error
}

// IdempotencyStore remembers which record a client-supplied Idempotency-Key produced.
type IdempotencyStore interface {
	// Lookup returns the record id stored for key, or "" when none.
	Lookup(ctx context.Context, scope, key string) (string, error)
	Remember(ctx context.Context, scope, key, recordID string) error
}
