package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

func TestRecordFilter(t *testing.T) {
	tests := []struct {
		name string
		in   ports.RecordFilter
		want bson.M
	}{
		{"empty", ports.RecordFilter{}, bson.M{}},
		{"owner", ports.RecordFilter{UserID: "u1"}, bson.M{"user_id": "u1"}},
		{"status", ports.RecordFilter{Status: domain.StatusApproved}, bson.M{"status": "approved"}},
		{"both", ports.RecordFilter{UserID: "u1", Status: domain.StatusPending}, bson.M{"user_id": "u1", "status": "pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recordFilter(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("%s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestCollectionFor(t *testing.T) {
	for kind, want := range map[domain.RecordKind]string{
		domain.KindOrder:   collectionOrders,
		domain.KindBooking: collectionBookings,
		domain.KindMessage: collectionMessages,
	} {
		got, err := collectionFor(kind)
		if err != nil || got != want {
			t.Fatalf("collectionFor(%q) = %q, %v; want %q", kind, got, err, want)
		}
		if emptyRecord(kind).RecordKind() != kind {
			t.Fatalf("emptyRecord(%q) has the wrong kind", kind)
		}
	}

	if _, err := collectionFor("invoice"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown kind, got %v", err)
	}
}

func TestStatusUpdate_KeepsUpdatedAtWhenUnchanged(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	stage := statusUpdate(domain.StatusApproved, at)
	if len(stage) != 1 || stage[0][0].Key != "$set" {
		t.Fatalf("expected a single $set stage, got %v", stage)
	}

	set := stage[0][0].Value.(bson.D)
	if set[0].Key != "updated_at" || set[1].Key != "status" {
		t.Fatalf("updated_at must be computed before status is overwritten: %v", set)
	}
	if set[1].Value != "approved" {
		t.Fatalf("status = %v, want approved", set[1].Value)
	}

	cond := set[0].Value.(bson.D)[0].Value.(bson.A)
	if cond[1] != "$updated_at" || cond[2] != at {
		t.Fatalf("unexpected $cond branches: %v", cond)
	}
}

func TestNewID_IsObjectIDHex(t *testing.T) {
	id := newID()
	if len(id) != 24 {
		t.Fatalf("expected 24 hex chars, got %q", id)
	}
	if newID() == id {
		t.Fatalf("ids must be unique")
	}
}
