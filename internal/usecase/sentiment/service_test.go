package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/findmytutor/tutormatch/internal/domain/review"
)

type mockReviews struct {
	reviews []review.Review
	err     error
	calls   int
}

func (m *mockReviews) ListByTutor(ctx context.Context, tutorID string) ([]review.Review, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

func makeReview(t *testing.T, id, comment string) review.Review {
	t.Helper()
	r, err := review.New(review.Attributes{
		ID:          id,
		TutorID:     "tutor-1",
		StudentName: "Alice",
		Rating:      4.5,
		Comment:     comment,
	})
	if err != nil {
		t.Fatalf("review.New: %v", err)
	}
	return r
}

func TestForTutor(t *testing.T) {
	store := &mockReviews{reviews: []review.Review{
		makeReview(t, "rev-1", "Excellent tutor"),
		makeReview(t, "rev-2", "not helpful"),
		makeReview(t, "rev-3", ""),
	}}
	svc := NewService(store)

	got, err := svc.ForTutor(context.Background(), "tutor-1")
	if err != nil {
		t.Fatalf("ForTutor: %v", err)
	}

	if got.TutorID != "tutor-1" {
		t.Errorf("TutorID = %q, want %q", got.TutorID, "tutor-1")
	}
	// The review without a comment is skipped entirely.
	if got.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2", got.TotalReviews)
	}
	if got.AveragePolarity != 0.35 {
		t.Errorf("AveragePolarity = %v, want 0.35", got.AveragePolarity)
	}
	if want := (Distribution{Positive: 1, Negative: 1}); got.Distribution != want {
		t.Errorf("Distribution = %+v, want %+v", got.Distribution, want)
	}
	if got.Overall != LabelPositive {
		t.Errorf("Overall = %q, want %q", got.Overall, LabelPositive)
	}
	if store.calls != 1 {
		t.Errorf("store consulted %d times, want 1", store.calls)
	}
}

func TestForTutor_NoReviews(t *testing.T) {
	svc := NewService(&mockReviews{})

	got, err := svc.ForTutor(context.Background(), "tutor-9")
	if err != nil {
		t.Fatalf("ForTutor: %v", err)
	}

	if got.TutorID != "tutor-9" {
		t.Errorf("TutorID = %q, want %q", got.TutorID, "tutor-9")
	}
	if got.TotalReviews != 0 {
		t.Errorf("TotalReviews = %d, want 0", got.TotalReviews)
	}
	if got.Overall != LabelNeutral {
		t.Errorf("Overall = %q, want %q", got.Overall, LabelNeutral)
	}
}

func TestForTutor_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(&mockReviews{err: storeErr})

	_, err := svc.ForTutor(context.Background(), "tutor-1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped %v", err, storeErr)
	}
}

func TestService_ExposesAnalyzer(t *testing.T) {
	svc := NewService(&mockReviews{})

	if got := svc.Analyze("wonderful").Label; got != LabelPositive {
		t.Errorf("Analyze through service: Label = %q, want %q", got, LabelPositive)
	}
}
