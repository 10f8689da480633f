package usage

import (
	"context"

	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
)

// Counters is the storage contract for per-scope daily request counts.
type Counters interface {
	// Incr consumes one request from the scope's counter for the given
	// UTC day (YYYY-MM-DD) and returns the new total.
	Incr(ctx context.Context, scope domusage.Scope, day string) (int64, error)
	// Used returns the scope's consumed count for the given UTC day.
	Used(ctx context.Context, scope domusage.Scope, day string) (int64, error)
}
