package ports

import (
	"context"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

// MenuUpdate carries the fields of a partial menu item update. Nil = unchanged.
type MenuUpdate struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	ImageURL    *string
}

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id string, update MenuUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// StatsRepository computes the admin dashboard aggregates.
type StatsRepository interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}
