package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// WorkflowService applies admin status changes to orders, bookings and messages.
// Callers are expected to have passed the admin gate already.
type WorkflowService struct {
	repo   ports.WorkflowRepository
	policy domain.TransitionPolicy
	log    zerolog.Logger
	now    func() time.Time
}

// WorkflowOption customises a WorkflowService.
type WorkflowOption func(*WorkflowService)

// WithTransitionPolicy replaces the default policy, which accepts any move.
func WithTransitionPolicy(p domain.TransitionPolicy) WorkflowOption {
	return func(s *WorkflowService) { s.policy = p }
}

func NewWorkflowService(repo ports.WorkflowRepository, log zerolog.Logger, opts ...WorkflowOption) *WorkflowService {
	s := &WorkflowService{
		repo:   repo,
		policy: domain.AnyTransition,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetStatus validates the target status and persists it in a single update.
func (s *WorkflowService) SetStatus(ctx context.Context, kind domain.RecordKind, id, status string, actor domain.Claims) (domain.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("set status: %w: unknown kind %q", domain.ErrNotFound, kind)
	}

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	from := domain.SourcesFor(s.policy, next)
	if len(from) == 0 {
		return nil, fmt.Errorf("%w: nothing may move to %s", domain.ErrInvalidTransition, next)
	}

	now := s.now()
	rec, err := s.repo.UpdateStatus(ctx, kind, id, next, from, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("set %s status: %w", kind, err)
	}

	change := &domain.StatusChange{
		Kind:      kind,
		RecordID:  rec.RecordID(),
		Status:    next,
		ActorID:   actor.SubjectID,
		ChangedAt: now,
	}
	if err := s.repo.InsertStatusChange(ctx, change); err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Str("id", id).Msg("failed to record status change")
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("id", id).
		Str("status", string(next)).
		Str("actor", actor.SubjectID).
		Msg("status updated")

	return rec, nil
}
