package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/findmytutor/tutormatch/internal/domain"
	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// --- Mock ---

type fakeCounters struct {
	counts  map[string]int64
	incrErr error
	usedErr error
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{counts: make(map[string]int64)}
}

func (f *fakeCounters) Incr(_ context.Context, scope domusage.Scope, day string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	key := string(scope) + ":" + day
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounters) Used(_ context.Context, scope domusage.Scope, day string) (int64, error) {
	if f.usedErr != nil {
		return 0, f.usedErr
	}
	return f.counts[string(scope)+":"+day], nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	}
}

// --- Tests ---

func TestAllow_UnderLimit(t *testing.T) {
	svc := New(newFakeCounters(), Limits{RecommendPerDay: 3}).WithClock(fixedClock())

	for _, wantRemaining := range []int64{2, 1, 0} {
		remaining, err := svc.Allow(context.Background(), domusage.ScopeRecommend)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remaining != wantRemaining {
			t.Errorf("expected remaining %d, got %d", wantRemaining, remaining)
		}
	}
}

func TestAllow_OverLimit(t *testing.T) {
	svc := New(newFakeCounters(), Limits{RecommendPerDay: 2}).WithClock(fixedClock())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Allow(ctx, domusage.ScopeRecommend); err != nil {
			t.Fatalf("request %d should be allowed: %v", i+1, err)
		}
	}

	_, err := svc.Allow(ctx, domusage.ScopeRecommend)
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	var qe *domain.QuotaExceededError
	if !errors.As(err, &qe) {
		t.Fatal("expected QuotaExceededError")
	}
	if qe.Scope != "recommend" || qe.Limit != 2 {
		t.Errorf("unexpected error details: scope=%q limit=%d", qe.Scope, qe.Limit)
	}
}

func TestAllow_UnthrottledScopeStillCounted(t *testing.T) {
	counters := newFakeCounters()
	svc := New(counters, Limits{}).WithClock(fixedClock())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		remaining, err := svc.Allow(ctx, domusage.ScopeSentiment)
		if err != nil {
			t.Fatalf("unthrottled request rejected: %v", err)
		}
		if remaining != 0 {
			t.Errorf("expected remaining 0 for unthrottled scope, got %d", remaining)
		}
	}

	if got := counters.counts["sentiment:2025-06-01"]; got != 5 {
		t.Errorf("expected 5 counted requests, got %d", got)
	}
}

func TestAllow_CounterError(t *testing.T) {
	counters := newFakeCounters()
	counters.incrErr = errors.New("connection refused")
	svc := New(counters, Limits{RecommendPerDay: 10}).WithClock(fixedClock())

	if _, err := svc.Allow(context.Background(), domusage.ScopeRecommend); err == nil {
		t.Fatal("expected error")
	}
}

func TestWindows(t *testing.T) {
	counters := newFakeCounters()
	svc := New(counters, Limits{RecommendPerDay: 200, SentimentPerDay: 100, MLPerDay: 50}).
		WithClock(fixedClock())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Allow(ctx, domusage.ScopeRecommend); err != nil {
			t.Fatalf("allow: %v", err)
		}
	}
	if _, err := svc.Allow(ctx, domusage.ScopeML); err != nil {
		t.Fatalf("allow: %v", err)
	}

	windows, err := svc.Windows(ctx)
	if err != nil {
		t.Fatalf("windows: %v", err)
	}
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}

	byScope := make(map[domusage.Scope]domusage.Window, len(windows))
	for _, w := range windows {
		if w.Day() != "2025-06-01" {
			t.Errorf("expected day 2025-06-01, got %s", w.Day())
		}
		byScope[w.Scope()] = w
	}
	if got := byScope[domusage.ScopeRecommend].Used(); got != 3 {
		t.Errorf("recommend used: expected 3, got %d", got)
	}
	if got := byScope[domusage.ScopeSentiment].Used(); got != 0 {
		t.Errorf("sentiment used: expected 0, got %d", got)
	}
	if got := byScope[domusage.ScopeML].Used(); got != 1 {
		t.Errorf("ml used: expected 1, got %d", got)
	}
	if got := byScope[domusage.ScopeRecommend].Remaining(); got != 197 {
		t.Errorf("recommend remaining: expected 197, got %d", got)
	}

	wantReset := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	if windows[0].ResetsAt() != wantReset {
		t.Errorf("expected reset at %d, got %d", wantReset, windows[0].ResetsAt())
	}
}

func TestWindows_CounterError(t *testing.T) {
	counters := newFakeCounters()
	counters.usedErr = errors.New("connection refused")
	svc := New(counters, Limits{}).WithClock(fixedClock())

	if _, err := svc.Windows(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
