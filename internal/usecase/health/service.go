package health

import (
	"context"
	"fmt"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// ScopeUsage is one scope's consumed requests for today.
type ScopeUsage struct {
	Scope     string
	Used      int64
	Limit     int64
	Remaining int64
}

// Stats carries the service statistics exposed by the health endpoint.
type Stats struct {
	TotalTutors   int64
	TotalReviews  int64
	RequestsToday []ScopeUsage
}

// Service coordinates health checks and service statistics.
type Service struct {
	db      DBPinger
	tutors  TutorCounter
	reviews ReviewCounter
	usage   UsageReporter
}

// New creates a Service. tutors, reviews and usage may be nil; the
// corresponding statistics are then omitted.
func New(db DBPinger, tutors TutorCounter, reviews ReviewCounter, usage UsageReporter) *Service {
	return &Service{db: db, tutors: tutors, reviews: reviews, usage: usage}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

// Statistics gathers catalog, review and quota counters for the
// detailed health endpoint.
func (s *Service) Statistics(ctx context.Context) (Stats, error) {
	var stats Stats

	if s.tutors != nil {
		n, err := s.tutors.Count(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("count tutors: %w", err)
		}
		stats.TotalTutors = n
	}

	if s.reviews != nil {
		n, err := s.reviews.Count(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("count reviews: %w", err)
		}
		stats.TotalReviews = n
	}

	if s.usage != nil {
		windows, err := s.usage.Windows(ctx)
		if err != nil {
			return Stats{}, fmt.Errorf("read usage windows: %w", err)
		}
		stats.RequestsToday = make([]ScopeUsage, 0, len(windows))
		for _, w := range windows {
			stats.RequestsToday = append(stats.RequestsToday, ScopeUsage{
				Scope:     string(w.Scope()),
				Used:      w.Used(),
				Limit:     w.Limit(),
				Remaining: w.Remaining(),
			})
		}
	}

	return stats, nil
}
