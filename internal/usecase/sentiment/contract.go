package sentiment

import (
	"context"

	"github.com/findmytutor/tutormatch/internal/domain/review"
)

// Reviews is the read-side review store contract the per-tutor summary
// needs.
type Reviews interface {
	ListByTutor(ctx context.Context, tutorID string) ([]review.Review, error)
}

// Scorer is the full sentiment surface consumed by the transport.
// Implemented by Service.
type Scorer interface {
	Analyze(text string) Analysis
	AnalyzeDetailed(text string) DetailedAnalysis
	Batch(texts []string) []Analysis
	Summarize(texts []string) Summary
	ForTutor(ctx context.Context, tutorID string) (TutorSummary, error)
}
