package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/findmytutor/tutormatch/internal/domain"
	"github.com/findmytutor/tutormatch/internal/domain/batch"
	"github.com/findmytutor/tutormatch/internal/domain/review"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/domain/tutor/patch"
)

// DefaultMaxBatchSize caps bulk upserts when no limit is configured.
const DefaultMaxBatchSize = 100

// Service orchestrates tutor CRUD and review recording.
type Service struct {
	tutors   Tutors
	reviews  Reviews
	maxBatch int
	newID    func() string
}

// New creates a catalog service.
func New(tutors Tutors, reviews Reviews, maxBatch int) *Service {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}
	return &Service{
		tutors:   tutors,
		reviews:  reviews,
		maxBatch: maxBatch,
		newID:    uuid.NewString,
	}
}

// WithIDGenerator overrides review id generation (tests).
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.newID = gen
	return s
}

// Create validates and stores a new tutor.
func (s *Service) Create(ctx context.Context, attrs tutor.Attributes) (tutor.Tutor, error) {
	t, err := tutor.New(attrs)
	if err != nil {
		return tutor.Tutor{}, domain.NewValidation("tutor", err.Error())
	}
	if err := s.tutors.Create(ctx, &t); err != nil {
		return tutor.Tutor{}, fmt.Errorf("create tutor %s: %w", t.ID(), err)
	}
	return t, nil
}

// Get returns a tutor by id.
func (s *Service) Get(ctx context.Context, id string) (tutor.Tutor, error) {
	if id == "" {
		return tutor.Tutor{}, domain.NewValidation("id", "must not be empty")
	}
	t, err := s.tutors.Get(ctx, id)
	if err != nil {
		return tutor.Tutor{}, fmt.Errorf("get tutor %s: %w", id, err)
	}
	return t, nil
}

// List returns every tutor in the catalog, ordered by id.
func (s *Service) List(ctx context.Context) ([]tutor.Tutor, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}

// Update applies a partial update to an existing tutor.
func (s *Service) Update(ctx context.Context, id string, p patch.Patch) (tutor.Tutor, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return tutor.Tutor{}, err
	}

	updated, err := p.Apply(current)
	if err != nil {
		return tutor.Tutor{}, domain.NewValidation("tutor", err.Error())
	}
	if err := s.tutors.Save(ctx, &updated); err != nil {
		return tutor.Tutor{}, fmt.Errorf("save tutor %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a tutor along with its reviews.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidation("id", "must not be empty")
	}
	if err := s.tutors.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tutor %s: %w", id, err)
	}
	if err := s.reviews.DeleteByTutor(ctx, id); err != nil {
		return fmt.Errorf("delete reviews of %s: %w", id, err)
	}
	return nil
}

// BulkUpsert validates a batch of tutor profiles and stores the valid
// ones in one round-trip. Invalid items are reported per-item and do
// not fail the batch.
func (s *Service) BulkUpsert(ctx context.Context, items []tutor.Attributes) ([]batch.Result, error) {
	if len(items) == 0 {
		return nil, domain.NewValidation("tutors", "must not be empty")
	}
	if len(items) > s.maxBatch {
		return nil, domain.NewValidation("tutors", fmt.Sprintf("batch too large (max %d)", s.maxBatch))
	}

	results := make([]batch.Result, len(items))
	valid := make([]tutor.Tutor, 0, len(items))
	for i, attrs := range items {
		t, err := tutor.New(attrs)
		if err != nil {
			results[i] = batch.NewError(attrs.ID, err)
			continue
		}
		results[i] = batch.NewOK(t.ID())
		valid = append(valid, t)
	}

	if len(valid) > 0 {
		if err := s.tutors.UpsertMulti(ctx, valid); err != nil {
			return nil, fmt.Errorf("upsert %d tutors: %w", len(valid), err)
		}
	}
	return results, nil
}

// AddReview records a student review and recomputes the tutor's
// average rating from all stored reviews.
func (s *Service) AddReview(ctx context.Context, tutorID string, attrs review.Attributes) (review.Review, tutor.Tutor, error) {
	t, err := s.Get(ctx, tutorID)
	if err != nil {
		return review.Review{}, tutor.Tutor{}, err
	}

	attrs.ID = s.newID()
	attrs.TutorID = tutorID
	rev, err := review.New(attrs)
	if err != nil {
		return review.Review{}, tutor.Tutor{}, err
	}

	if err := s.reviews.Add(ctx, &rev); err != nil {
		return review.Review{}, tutor.Tutor{}, fmt.Errorf("store review: %w", err)
	}

	all, err := s.reviews.ListByTutor(ctx, tutorID)
	if err != nil {
		return review.Review{}, tutor.Tutor{}, fmt.Errorf("list reviews of %s: %w", tutorID, err)
	}
	updated := t.WithAverageRating(meanRating(all))
	if err := s.tutors.Save(ctx, &updated); err != nil {
		return review.Review{}, tutor.Tutor{}, fmt.Errorf("save rating of %s: %w", tutorID, err)
	}

	return rev, updated, nil
}

// Reviews returns a tutor's reviews, oldest first.
func (s *Service) Reviews(ctx context.Context, tutorID string) ([]review.Review, error) {
	if _, err := s.Get(ctx, tutorID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", tutorID, err)
	}
	return reviews, nil
}

func meanRating(reviews []review.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for i := range reviews {
		sum += reviews[i].Rating()
	}
	return sum / float64(len(reviews))
}
