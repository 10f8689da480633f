package pricing

import (
	"context"

	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Catalog is the read-side catalog contract the pricing engine needs.
type Catalog interface {
	List(ctx context.Context) ([]tutor.Tutor, error)
}

// Estimator produces rate suggestions and market statistics. Implemented
// by Service.
type Estimator interface {
	PredictRate(ctx context.Context, experienceYears int, subject string) (Estimate, error)
	MarketAnalysis(ctx context.Context, subject string) (MarketReport, error)
}
