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
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenuItems)}
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	item.ID = newID()
	return insertOne(ctx, r.col, item)
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return findMany[domain.MenuItem](ctx, r.col, bson.M{})
}

// Update sets the supplied fields and returns the item after the update.
func (r *MenuRepository) Update(ctx context.Context, id string, u ports.MenuUpdate) (*domain.MenuItem, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.MenuItem
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return &item, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
