package domain

import "time"

// Message is an anonymous contact-form submission.
type Message struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Body      string    `json:"message" bson:"message"`
	Status    Status    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

func (m *Message) RecordKind() RecordKind { return KindMessage }
func (m *Message) RecordID() string       { return m.ID }
func (m *Message) CurrentStatus() Status  { return m.Status }
