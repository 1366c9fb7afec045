package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, idem: idem, logger: logger}
}

// Place creates a pending order owned by in.UserID. If an idempotency key is
// provided and already seen, the earlier order is returned without side effects.
func (s *OrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*ports.Created[*domain.Order], error) {
	if in.UserID == "" {
		return nil, invalid("order owner is required")
	}
	if len(in.Items) == 0 {
		return nil, invalid("order must contain at least one item")
	}
	items := make([]domain.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		switch {
		case strings.TrimSpace(it.Name) == "":
			return nil, invalid("items[%d]: name is required", i)
		case it.Qty < 1:
			return nil, invalid("items[%d]: qty must be at least 1", i)
		case it.Price < 0:
			return nil, invalid("items[%d]: price must not be negative", i)
		}
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Price:      it.Price,
			Qty:        it.Qty,
		})
	}

	scope := "order:" + in.UserID
	if existing, ok := replay(ctx, s.idem, s.logger, scope, in.IdempotencyKey, s.repo.FindByID, nil); ok {
		return &ports.Created[*domain.Order]{Record: existing, Replayed: true}, nil
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:    in.UserID,
		Items:     items,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("place order: %w", err)
	}
	remember(ctx, s.idem, s.logger, scope, in.IdempotencyKey, order.ID)

	s.logger.Info().Str("order_id", order.ID).Str("user_id", in.UserID).Msg("order placed")
	return &ports.Created[*domain.Order]{Record: order}, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.List(ctx, ports.RecordFilter{UserID: userID})
}

func (s *OrderService) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
