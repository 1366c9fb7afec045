package domain

import "time"

// OrderItem is one line of a food order.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId,omitempty" bson:"menu_item_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Qty        int     `json:"qty" bson:"qty"`
}

// Order is a food order placed by a registered user.
type Order struct {
	ID        string      `json:"id" bson:"_id"`
	UserID    string      `json:"userId" bson:"user_id"`
	Items     []OrderItem `json:"items" bson:"items"`
	Status    Status      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updated_at"`
}

func (o *Order) RecordKind() RecordKind { return KindOrder }
func (o *Order) RecordID() string       { return o.ID }
func (o *Order) CurrentStatus() Status  { return o.Status }

// Total returns the sum of price times quantity over all items.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Qty)
	}
	return total
}
