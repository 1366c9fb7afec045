package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state shared by orders, bookings and messages.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusCompleted, StatusCancelled}

// ParseStatus returns the Status named by s, or ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// TransitionPolicy reports whether a record may move from one status to another.
type TransitionPolicy func(from, to Status) bool

// AnyTransition accepts every pair of valid statuses, including terminal ones.
func AnyTransition(from, to Status) bool {
	return true
}

// SourcesFor returns the statuses from which policy allows a move to target.
func SourcesFor(policy TransitionPolicy, target Status) []Status {
	out := make([]Status, 0, len(Statuses))
	for _, from := range Statuses {
		if policy(from, target) {
			out = append(out, from)
		}
	}
	return out
}

// RecordKind names a collection of workflow records.
type RecordKind string

const (
	KindOrder   RecordKind = "order"
	KindBooking RecordKind = "booking"
	KindMessage RecordKind = "message"
)

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	switch k {
	case KindOrder, KindBooking, KindMessage:
		return true
	}
	return false
}

// Record is implemented by every entity that goes through the status workflow.
type Record interface {
	RecordKind() RecordKind
	RecordID() string
	CurrentStatus() Status
}

// StatusChange is an audit entry written whenever an admin sets a status.
type StatusChange struct {
	Kind      RecordKind `json:"kind" bson:"kind"`
	RecordID  string     `json:"recordId" bson:"record_id"`
	Status    Status     `json:"status" bson:"status"`
	ActorID   string     `json:"actorId" bson:"actor_id"`
	ChangedAt time.Time  `json:"changedAt" bson:"changed_at"`
}
