package catalog

import (
	"context"

	"github.com/findmytutor/tutormatch/internal/domain/review"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Tutors is the catalog storage contract (ISP).
type Tutors interface {
	Create(ctx context.Context, t *tutor.Tutor) error
	Save(ctx context.Context, t *tutor.Tutor) error
	UpsertMulti(ctx context.Context, tutors []tutor.Tutor) error
	Get(ctx context.Context, id string) (tutor.Tutor, error)
	List(ctx context.Context) ([]tutor.Tutor, error)
	Delete(ctx context.Context, id string) error
}

// Reviews is the review storage contract.
type Reviews interface {
	Add(ctx context.Context, rev *review.Review) error
	ListByTutor(ctx context.Context, tutorID string) ([]review.Review, error)
	DeleteByTutor(ctx context.Context, tutorID string) error
}
