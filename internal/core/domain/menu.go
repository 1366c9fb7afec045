package domain

import "time"

// DefaultCategory is assigned to menu items created without a category.
const DefaultCategory = "General"

// MenuItem is a dish on the public menu.
type MenuItem struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	ImageURL    string    `json:"image,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Orders   int64   `json:"orders"`
	Bookings int64   `json:"bookings"`
	Messages int64   `json:"messages"`
	Revenue  float64 `json:"revenue"`
}
