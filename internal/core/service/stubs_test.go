package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	users   map[string]*domain.User
	findErr error
	seq     int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// ---------------------------------------------------------------------------
// Workflow records: one in-memory store backs every record repository.
// ---------------------------------------------------------------------------

type memStore struct {
	records   map[domain.RecordKind]map[string]domain.Record
	changes   []*domain.StatusChange
	seq       int
	createErr error
	updateErr error
	auditErr  error
}

func newMemStore() *memStore {
	return &memStore{records: map[domain.RecordKind]map[string]domain.Record{
		domain.KindOrder:   {},
		domain.KindBooking: {},
		domain.KindMessage: {},
	}}
}

func (m *memStore) nextID() string {
	m.seq++
	return fmt.Sprintf("rec-%d", m.seq)
}

func (m *memStore) put(rec domain.Record) {
	m.records[rec.RecordKind()][rec.RecordID()] = rec
}

func (m *memStore) UpdateStatus(_ context.Context, kind domain.RecordKind, id string, to domain.Status, from []domain.Status, at time.Time) (domain.Record, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	rec, ok := m.records[kind][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !slices.Contains(from, rec.CurrentStatus()) {
		return nil, domain.ErrInvalidTransition
	}
	switch r := rec.(type) {
	case *domain.Order:
		c := *r
		if c.Status != to {
			c.UpdatedAt = at
		}
		c.Status = to
		m.put(&c)
		out := c
		return &out, nil
	case *domain.Booking:
		c := *r
		if c.Status != to {
			c.UpdatedAt = at
		}
		c.Status = to
		m.put(&c)
		out := c
		return &out, nil
	case *domain.Message:
		c := *r
		if c.Status != to {
			c.UpdatedAt = at
		}
		c.Status = to
		m.put(&c)
		out := c
		return &out, nil
	}
	return nil, errors.New("unknown record type")
}

func (m *memStore) InsertStatusChange(_ context.Context, change *domain.StatusChange) error {
	if m.auditErr != nil {
		return m.auditErr
	}
	m.changes = append(m.changes, change)
	return nil
}

func matches(filter ports.RecordFilter, owner string, status domain.Status) bool {
	if filter.UserID != "" && owner != filter.UserID {
		return false
	}
	if filter.Status != "" && status != filter.Status {
		return false
	}
	return true
}

type stubOrderRepo struct{ *memStore }

func (r stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	o.ID = r.nextID()
	c := *o
	r.put(&c)
	return nil
}

func (r stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	rec, ok := r.records[domain.KindOrder][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *rec.(*domain.Order)
	return &c, nil
}

func (r stubOrderRepo) List(_ context.Context, f ports.RecordFilter) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for _, rec := range r.records[domain.KindOrder] {
		o := rec.(*domain.Order)
		if matches(f, o.UserID, o.Status) {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[domain.KindOrder][id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records[domain.KindOrder], id)
	return nil
}

type stubBookingRepo struct{ *memStore }

func (r stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextID()
	c := *b
	r.put(&c)
	return nil
}

func (r stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	rec, ok := r.records[domain.KindBooking][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *rec.(*domain.Booking)
	return &c, nil
}

func (r stubBookingRepo) List(_ context.Context, f ports.RecordFilter) ([]*domain.Booking, error) {
	out := []*domain.Booking{}
	for _, rec := range r.records[domain.KindBooking] {
		b := rec.(*domain.Booking)
		if matches(f, b.UserID, b.Status) {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[domain.KindBooking][id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records[domain.KindBooking], id)
	return nil
}

type stubMessageRepo struct{ *memStore }

func (r stubMessageRepo) Create(_ context.Context, m *domain.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	m.ID = r.nextID()
	c := *m
	r.put(&c)
	return nil
}

func (r stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	rec, ok := r.records[domain.KindMessage][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *rec.(*domain.Message)
	return &c, nil
}

func (r stubMessageRepo) List(_ context.Context, f ports.RecordFilter) ([]*domain.Message, error) {
	out := []*domain.Message{}
	for _, rec := range r.records[domain.KindMessage] {
		m := rec.(*domain.Message)
		if matches(f, "", m.Status) {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r stubMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[domain.KindMessage][id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records[domain.KindMessage], id)
	return nil
}

// ---------------------------------------------------------------------------
// Idempotency
// ---------------------------------------------------------------------------

type stubIdem struct {
	keys      map[string]string
	lookupErr error
}

func newStubIdem() *stubIdem {
	return &stubIdem{keys: make(map[string]string)}
}

func (s *stubIdem) Lookup(_ context.Context, scope, key string) (string, error) {
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	return s.keys[scope+"|"+key], nil
}

// Remember keeps the first id stored for a key, like SETNX.
func (s *stubIdem) Remember(_ context.Context, scope, key, id string) error {
	if _, ok := s.keys[scope+"|"+key]; !ok {
		s.keys[scope+"|"+key] = id
	}
	return nil
}
