package api

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// memDB is an in-memory stand-in for MongoDB and Redis used by the router tests.
type memDB struct {
	mu       sync.Mutex
	seq      int
	users    map[string]*domain.User
	orders   map[string]*domain.Order
	bookings map[string]*domain.Booking
	messages map[string]*domain.Message
	menu     map[string]*domain.MenuItem
	changes  []*domain.StatusChange
	idem     map[string]string
}

func newMemDB() *memDB {
	return &memDB{
		users:    map[string]*domain.User{},
		orders:   map[string]*domain.Order{},
		bookings: map[string]*domain.Booking{},
		messages: map[string]*domain.Message{},
		menu:     map[string]*domain.MenuItem{},
		idem:     map[string]string{},
	}
}

func (m *memDB) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// newestFirst copies the matching values out of src, newest first.
func newestFirst[T any](src map[string]*T, created func(*T) time.Time, keep func(*T) bool) []*T {
	out := []*T{}
	for _, v := range src {
		if keep(v) {
			out = append(out, clone(v))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return created(out[i]).After(created(out[j])) })
	return out
}

func matches(f ports.RecordFilter, userID string, status domain.Status) bool {
	return (f.UserID == "" || f.UserID == userID) && (f.Status == "" || f.Status == status)
}

// ── users ─────────────────────────────────────────────────────────────────────

type memUsers struct{ *memDB }

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	c := clone(u)
	c.ID = r.nextID("user")
	r.users[c.Email] = c
	return clone(c), nil
}

// ── orders, bookings, messages ────────────────────────────────────────────────

type memOrders struct{ *memDB }

func (r memOrders) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID("order")
	r.orders[o.ID] = clone(o)
	return nil
}

func (r memOrders) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(o), nil
}

func (r memOrders) List(_ context.Context, f ports.RecordFilter) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newestFirst(r.orders,
		func(o *domain.Order) time.Time { return o.CreatedAt },
		func(o *domain.Order) bool { return matches(f, o.UserID, o.Status) }), nil
}

func (r memOrders) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

type memBookings struct{ *memDB }

func (r memBookings) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID("booking")
	r.bookings[b.ID] = clone(b)
	return nil
}

func (r memBookings) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(b), nil
}

func (r memBookings) List(_ context.Context, f ports.RecordFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newestFirst(r.bookings,
		func(b *domain.Booking) time.Time { return b.CreatedAt },
		func(b *domain.Booking) bool { return matches(f, b.UserID, b.Status) }), nil
}

func (r memBookings) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

type memMessages struct{ *memDB }

func (r memMessages) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = r.nextID("message")
	r.messages[msg.ID] = clone(msg)
	return nil
}

func (r memMessages) FindByID(_ context.Context, id string) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(msg), nil
}

func (r memMessages) List(_ context.Context, f ports.RecordFilter) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newestFirst(r.messages,
		func(msg *domain.Message) time.Time { return msg.CreatedAt },
		func(msg *domain.Message) bool { return matches(f, "", msg.Status) }), nil
}

func (r memMessages) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

// ── workflow, idempotency, stats ──────────────────────────────────────────────

func (m *memDB) UpdateStatus(_ context.Context, kind domain.RecordKind, id string, to domain.Status, from []domain.Status, at time.Time) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rec domain.Record
	switch kind {
	case domain.KindOrder:
		if o, ok := m.orders[id]; ok {
			rec = o
		}
	case domain.KindBooking:
		if b, ok := m.bookings[id]; ok {
			rec = b
		}
	case domain.KindMessage:
		if msg, ok := m.messages[id]; ok {
			rec = msg
		}
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if !slices.Contains(from, rec.CurrentStatus()) {
		return nil, domain.ErrInvalidTransition
	}

	switch r := rec.(type) {
	case *domain.Order:
		if r.Status != to {
			r.UpdatedAt = at
		}
		r.Status = to
		return clone(r), nil
	case *domain.Booking:
		if r.Status != to {
			r.UpdatedAt = at
		}
		r.Status = to
		return clone(r), nil
	default:
		msg := rec.(*domain.Message)
		if msg.Status != to {
			msg.UpdatedAt = at
		}
		msg.Status = to
		return clone(msg), nil
	}
}

func (m *memDB) InsertStatusChange(_ context.Context, change *domain.StatusChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, clone(change))
	return nil
}

func (m *memDB) Lookup(_ context.Context, scope, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idem[scope+":"+key], nil
}

func (m *memDB) Remember(_ context.Context, scope, key, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.idem[scope+":"+key]; !ok {
		m.idem[scope+":"+key] = recordID
	}
	return nil
}

func (m *memDB) Stats(_ context.Context) (*domain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := &domain.Stats{
		Orders:   int64(len(m.orders)),
		Bookings: int64(len(m.bookings)),
		Messages: int64(len(m.messages)),
	}
	for _, o := range m.orders {
		if o.Status != domain.StatusCancelled {
			st.Revenue += o.Total()
		}
	}
	return st, nil
}

// ── menu ──────────────────────────────────────────────────────────────────────

type memMenu struct{ *memDB }

func (r memMenu) Create(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID("menu")
	r.menu[item.ID] = clone(item)
	return nil
}

func (r memMenu) List(_ context.Context) ([]*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return newestFirst(r.menu,
		func(it *domain.MenuItem) time.Time { return it.CreatedAt },
		func(*domain.MenuItem) bool { return true }), nil
}

func (r memMenu) Update(_ context.Context, id string, u ports.MenuUpdate) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.menu[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.Category != nil {
		it.Category = *u.Category
	}
	if u.Price != nil {
		it.Price = *u.Price
	}
	if u.Description != nil {
		it.Description = *u.Description
	}
	if u.ImageURL != nil {
		it.ImageURL = *u.ImageURL
	}
	return clone(it), nil
}

func (r memMenu) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menu[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.menu, id)
	return nil
}
