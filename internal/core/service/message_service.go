package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

const minMessageLength = 5

const messageScope = "message"

type MessageService struct {
	repo   ports.MessageRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, idem: idem, logger: logger}
}

// Submit stores a contact message from an anonymous visitor.
func (s *MessageService) Submit(ctx context.Context, in ports.SubmitMessageInput) (*ports.Created[*domain.Message], error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, invalid("name is required")
	case !validEmail(in.Email):
		return nil, invalid("email must be a valid email")
	case utf8.RuneCountInString(in.Body) < minMessageLength:
		return nil, invalid("message must be at least %d characters", minMessageLength)
	}

	// Anonymous visitors share one scope: only an identical submission replays.
	sameSubmission := func(m *domain.Message) bool {
		return m.Name == in.Name && m.Email == in.Email && m.Body == in.Body
	}
	if existing, ok := replay(ctx, s.idem, s.logger, messageScope, in.IdempotencyKey, s.repo.FindByID, sameSubmission); ok {
		return &ports.Created[*domain.Message]{Record: existing, Replayed: true}, nil
	}

	now := time.Now().UTC()
	msg := &domain.Message{
		Name:      in.Name,
		Email:     in.Email,
		Body:      in.Body,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Msg("failed to store message")
		return nil, fmt.Errorf("submit message: %w", err)
	}
	remember(ctx, s.idem, s.logger, messageScope, in.IdempotencyKey, msg.ID)

	s.logger.Info().Str("message_id", msg.ID).Msg("message received")
	return &ports.Created[*domain.Message]{Record: msg}, nil
}

func (s *MessageService) List(ctx context.Context, filter ports.RecordFilter) ([]*domain.Message, error) {
	msgs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	s.logger.Info().Str("message_id", id).Msg("message deleted")
	return nil
}
