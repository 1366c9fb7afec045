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

type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

func (s *MenuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name is required")
	}
	if in.Price <= 0 {
		return nil, invalid("price must be greater than 0")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		Name:        in.Name,
		Category:    category,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.logger.Info().Str("menu_item_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return item, nil
}

// Update applies the non-nil fields of update to the item.
func (s *MenuService) Update(ctx context.Context, id string, update ports.MenuUpdate) (*domain.MenuItem, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, invalid("name must not be empty")
	}
	if update.Price != nil && *update.Price <= 0 {
		return nil, invalid("price must be greater than 0")
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		def := domain.DefaultCategory
		update.Category = &def
	}

	item, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	s.logger.Info().Str("menu_item_id", id).Msg("menu item deleted")
	return nil
}
