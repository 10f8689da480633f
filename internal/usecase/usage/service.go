package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/findmytutor/tutormatch/internal/domain"
	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// Limits carries the per-scope daily request caps. Zero or below means
// the scope is not throttled; requests are still counted for reporting.
type Limits struct {
	RecommendPerDay int64
	SentimentPerDay int64
	MLPerDay        int64
}

func (l Limits) forScope(scope domusage.Scope) int64 {
	switch scope {
	case domusage.ScopeRecommend:
		return l.RecommendPerDay
	case domusage.ScopeSentiment:
		return l.SentimentPerDay
	case domusage.ScopeML:
		return l.MLPerDay
	default:
		return 0
	}
}

// Service enforces daily request quotas and reports usage windows.
type Service struct {
	counters Counters
	limits   Limits
	now      func() time.Time
}

// New creates a usage service over a counter store.
func New(counters Counters, limits Limits) *Service {
	return &Service{counters: counters, limits: limits, now: time.Now}
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Allow consumes one request from the scope's daily window and returns
// the remaining quota (zero for unthrottled scopes). Requests over the
// cap are still counted, then rejected with a QuotaExceededError.
func (s *Service) Allow(ctx context.Context, scope domusage.Scope) (int64, error) {
	day := s.day()
	used, err := s.counters.Incr(ctx, scope, day)
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}

	limit := s.limits.forScope(scope)
	if limit > 0 && used > limit {
		return 0, domain.NewQuotaExceeded(string(scope), int(limit))
	}

	if remaining := limit - used; limit > 0 && remaining > 0 {
		return remaining, nil
	}
	return 0, nil
}

// Windows returns today's window for every throttled scope, in
// reporting order.
func (s *Service) Windows(ctx context.Context) ([]domusage.Window, error) {
	day := s.day()
	resetsAt := s.nextMidnight().UnixMilli()

	scopes := domusage.Scopes()
	windows := make([]domusage.Window, 0, len(scopes))
	for _, scope := range scopes {
		used, err := s.counters.Used(ctx, scope, day)
		if err != nil {
			return nil, fmt.Errorf("read %s counter: %w", scope, err)
		}
		windows = append(windows, domusage.NewWindow(scope, day, used, s.limits.forScope(scope), resetsAt))
	}
	return windows, nil
}

func (s *Service) day() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *Service) nextMidnight() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}
