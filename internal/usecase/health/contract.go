package health

import (
	"context"

	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// TutorCounter reports the catalog size.
type TutorCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ReviewCounter reports the total number of stored reviews.
type ReviewCounter interface {
	Count(ctx context.Context) (int64, error)
}

// UsageReporter reports today's quota windows.
type UsageReporter interface {
	Windows(ctx context.Context) ([]domusage.Window, error)
}
