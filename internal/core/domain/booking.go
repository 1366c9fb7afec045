package domain

import "time"

const (
	MinGuests = 1
	MaxGuests = 20
)

// Booking is a table reservation.
type Booking struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"user_id"`
	Name      string    `json:"name" bson:"name"`
	Date      string    `json:"date" bson:"date"` // YYYY-MM-DD
	Time      string    `json:"time" bson:"time"` // HH:MM
	Guests    int       `json:"guests" bson:"guests"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

func (b *Booking) RecordKind() RecordKind { return KindBooking }
func (b *Booking) RecordID() string       { return b.ID }
func (b *Booking) CurrentStatus() Status  { return b.Status }
