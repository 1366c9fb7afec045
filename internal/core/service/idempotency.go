package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// replay returns the record an earlier request with the same Idempotency-Key
// created. Store failures are logged and treated as a miss. When same is not
// nil, a stored record it rejects is also a miss and is never returned.
func replay[T any](
	ctx context.Context,
	store ports.IdempotencyStore,
	log zerolog.Logger,
	scope, key string,
	find func(context.Context, string) (T, error),
	same func(T) bool,
) (T, bool) {
	var zero T
	if store == nil || key == "" {
		return zero, false
	}

	id, err := store.Lookup(ctx, scope, key)
	if err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed, creating anyway")
		return zero, false
	}
	if id == "" {
		return zero, false
	}

	rec, err := find(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn().Err(err).Str("scope", scope).Str("id", id).Msg("idempotent record lookup failed")
		}
		return zero, false
	}

	if same != nil && !same(rec) {
		log.Warn().Str("scope", scope).Str("id", id).Msg("idempotency key reused with a different payload, creating anyway")
		return zero, false
	}

	log.Info().Str("scope", scope).Str("id", id).Msg("idempotent replay")
	return rec, true
}

func remember(ctx context.Context, store ports.IdempotencyStore, log zerolog.Logger, scope, key, id string) {
	if store == nil || key == "" {
		return
	}
	if err := store.Remember(ctx, scope, key, id); err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("failed to store idempotency key")
	}
}
