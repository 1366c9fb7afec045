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

const (
	bookingDateLayout = "2006-01-02"
	bookingTimeLayout = "15:04"
)

type BookingService struct {
	repo   ports.BookingRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, idem: idem, logger: logger}
}

// Book creates a pending table booking owned by in.UserID.
func (s *BookingService) Book(ctx context.Context, in ports.BookTableInput) (*ports.Created[*domain.Booking], error) {
	switch {
	case in.UserID == "":
		return nil, invalid("booking owner is required")
	case strings.TrimSpace(in.Name) == "":
		return nil, invalid("name is required")
	case in.Guests < domain.MinGuests || in.Guests > domain.MaxGuests:
		return nil, invalid("guests must be between %d and %d", domain.MinGuests, domain.MaxGuests)
	}
	if _, err := time.Parse(bookingDateLayout, in.Date); err != nil {
		return nil, invalid("date must use YYYY-MM-DD")
	}
	if _, err := time.Parse(bookingTimeLayout, in.Time); err != nil {
		return nil, invalid("time must use HH:MM")
	}

	scope := "booking:" + in.UserID
	if existing, ok := replay(ctx, s.idem, s.logger, scope, in.IdempotencyKey, s.repo.FindByID, nil); ok {
		return &ports.Created[*domain.Booking]{Record: existing, Replayed: true}, nil
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:    in.UserID,
		Name:      in.Name,
		Date:      in.Date,
		Time:      in.Time,
		Guests:    in.Guests,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, fmt.Errorf("book table: %w", err)
	}
	remember(ctx, s.idem, s.logger, scope, in.IdempotencyKey, booking.ID)

	s.logger.Info().Str("booking_id", booking.ID).Str("user_id", in.UserID).Msg("table booked")
	return &ports.Created[*domain.Booking]{Record: booking}, nil
}

func (s *BookingService) ListMine(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.List(ctx, ports.RecordFilter{UserID: userID})
}

func (s *BookingService) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
