package health

import (
	"context"
	"errors"
	"testing"

	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockCounter struct {
	n   int64
	err error
}

func (m *mockCounter) Count(_ context.Context) (int64, error) { return m.n, m.err }

type mockUsageReporter struct {
	windows []domusage.Window
	err     error
}

func (m *mockUsageReporter) Windows(_ context.Context) ([]domusage.Window, error) {
	return m.windows, m.err
}

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockDBPinger{}, nil, nil, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
}

func TestCheck_DBError(t *testing.T) {
	svc := New(&mockDBPinger{err: errors.New("conn refused")}, nil, nil, nil)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
}

func TestStatistics(t *testing.T) {
	svc := New(
		&mockDBPinger{},
		&mockCounter{n: 42},
		&mockCounter{n: 137},
		&mockUsageReporter{windows: []domusage.Window{
			domusage.NewWindow(domusage.ScopeRecommend, "2025-06-01", 17, 200, 0),
			domusage.NewWindow(domusage.ScopeSentiment, "2025-06-01", 3, 100, 0),
		}},
	)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalTutors != 42 {
		t.Errorf("total tutors: expected 42, got %d", stats.TotalTutors)
	}
	if stats.TotalReviews != 137 {
		t.Errorf("total reviews: expected 137, got %d", stats.TotalReviews)
	}
	if len(stats.RequestsToday) != 2 {
		t.Fatalf("expected 2 usage entries, got %d", len(stats.RequestsToday))
	}
	first := stats.RequestsToday[0]
	if first.Scope != "recommend" || first.Used != 17 || first.Limit != 200 || first.Remaining != 183 {
		t.Errorf("unexpected recommend usage: %+v", first)
	}
}

func TestStatistics_NilProviders(t *testing.T) {
	svc := New(&mockDBPinger{}, nil, nil, nil)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalTutors != 0 || stats.TotalReviews != 0 || stats.RequestsToday != nil {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestStatistics_Errors(t *testing.T) {
	boom := errors.New("conn refused")

	tests := []struct {
		name string
		svc  *Service
	}{
		{"tutor counter", New(&mockDBPinger{}, &mockCounter{err: boom}, nil, nil)},
		{"review counter", New(&mockDBPinger{}, &mockCounter{n: 1}, &mockCounter{err: boom}, nil)},
		{"usage reporter", New(&mockDBPinger{}, nil, nil, &mockUsageReporter{err: boom})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.Statistics(context.Background()); !errors.Is(err, boom) {
				t.Fatalf("expected wrapped error, got %v", err)
			}
		})
	}
}
