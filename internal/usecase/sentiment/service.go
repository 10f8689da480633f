package sentiment

import (
	"context"
	"fmt"
)

// TutorSummary is the sentiment summary over one tutor's reviews.
type TutorSummary struct {
	TutorID string
	Summary
}

// Service answers sentiment queries. Embedding the analyzer keeps the
// pure scoring API available alongside the per-tutor summary.
type Service struct {
	*Analyzer
	reviews Reviews
}

// NewService creates a sentiment service over a review store.
func NewService(reviews Reviews) *Service {
	return &Service{Analyzer: NewAnalyzer(), reviews: reviews}
}

// ForTutor summarizes sentiment across a tutor's commented reviews.
// A tutor with no commented reviews yields a zero summary.
func (s *Service) ForTutor(ctx context.Context, tutorID string) (TutorSummary, error) {
	stored, err := s.reviews.ListByTutor(ctx, tutorID)
	if err != nil {
		return TutorSummary{}, fmt.Errorf("list reviews: %w", err)
	}

	texts := make([]string, 0, len(stored))
	for i := range stored {
		if comment, ok := stored[i].Comment(); ok {
			texts = append(texts, comment)
		}
	}

	return TutorSummary{TutorID: tutorID, Summary: s.Summarize(texts)}, nil
}
