package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/findmytutor/tutormatch/internal/db"
	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// Daily keys linger past midnight so yesterday's counter stays readable
// for reporting, then expire on their own.
const defaultTTL = 48 * time.Hour

// store is the consumer interface for quota counters (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Store persists per-scope daily request counters (INCR + TTL).
type Store struct {
	store store
	ttl   time.Duration
}

// New creates a usage counter store.
func New(s store) *Store {
	return &Store{store: s, ttl: defaultTTL}
}

// WithTTL overrides the counter key TTL.
func (s *Store) WithTTL(ttl time.Duration) *Store {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

// Incr consumes one request from the scope's counter for the given UTC
// day and returns the new total.
func (s *Store) Incr(ctx context.Context, scope domusage.Scope, day string) (int64, error) {
	key := counterKey(scope, day)

	n, err := s.store.IncrBy(ctx, key, 1)
	if err != nil {
		return 0, fmt.Errorf("quota INCRBY %s: %w", key, err)
	}

	// Set TTL only if the key has no expiry yet (NX — not reset on repeat).
	if err := s.store.Expire(ctx, key, s.ttl, true); err != nil {
		return 0, fmt.Errorf("quota EXPIRE %s: %w", key, err)
	}

	return n, nil
}

// Used returns the scope's consumed count for the given UTC day.
// A missing key reads as zero.
func (s *Store) Used(ctx context.Context, scope domusage.Scope, day string) (int64, error) {
	key := counterKey(scope, day)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("quota GET %s: %w", key, err)
	}

	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quota GET %s parse: %w", key, err)
	}
	return val, nil
}

// Keys follow the pattern quota:{scope}:{YYYY-MM-DD}.
func counterKey(scope domusage.Scope, day string) string {
	return fmt.Sprintf("quota:%s:%s", scope, day)
}
