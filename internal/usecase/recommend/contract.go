package recommend

import (
	"context"

	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Catalog supplies the tutor corpus. The recommender treats it as a
// pure, side-effect-free query; records are refetched per request.
type Catalog interface {
	List(ctx context.Context) ([]tutor.Tutor, error)
}

// Recommender is the full recommendation contract, implemented by
// Service and by the metrics decorator wrapping it.
type Recommender interface {
	Recommend(ctx context.Context, req match.Request) ([]match.Result, error)
	Explain(ctx context.Context, query, tutorID string) (Insight, error)
	Similar(ctx context.Context, tutorID string, limit int) ([]match.Result, error)
}
