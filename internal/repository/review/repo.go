package review

import (
	"context"
	"fmt"
	"sort"

	"github.com/findmytutor/tutormatch/internal/domain/review"
)

// Keys: one JSON document per review, a per-tutor id set, and a global
// member set for counting.
const allSetKey = "reviews"

// store is the consumer interface for reviews (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, key string) error
	SRem(ctx context.Context, key string, members ...string) error
}

// Repo implements the review store consumed by the catalog and
// sentiment usecases.
type Repo struct {
	store store
}

// New creates a review repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Add stores a review document and registers it in both id sets.
func (r *Repo) Add(ctx context.Context, rev *review.Review) error {
	data, err := marshalReview(rev)
	if err != nil {
		return err
	}

	key := reviewKey(rev.TutorID(), rev.ID())
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, tutorSetKey(rev.TutorID()), rev.ID()); err != nil {
		return fmt.Errorf("sadd tutor set: %w", err)
	}
	if err := r.store.SAdd(ctx, allSetKey, rev.TutorID()+":"+rev.ID()); err != nil {
		return fmt.Errorf("sadd all set: %w", err)
	}
	return nil
}

// ListByTutor returns a tutor's reviews, oldest first. Documents that
// vanished between the set read and the fetch are skipped.
func (r *Repo) ListByTutor(ctx context.Context, tutorID string) ([]review.Review, error) {
	ids, err := r.store.SMembers(ctx, tutorSetKey(tutorID))
	if err != nil {
		return nil, fmt.Errorf("smembers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = reviewKey(tutorID, id)
	}

	docs, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("json.get multi: %w", err)
	}

	reviews := make([]review.Review, 0, len(docs))
	for i, data := range docs {
		if len(data) == 0 {
			continue
		}
		rev, err := unmarshalReview(data)
		if err != nil {
			return nil, fmt.Errorf("parse review %s: %w", keys[i], err)
		}
		reviews = append(reviews, rev)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt().Equal(reviews[j].CreatedAt()) {
			return reviews[i].CreatedAt().Before(reviews[j].CreatedAt())
		}
		return reviews[i].ID() < reviews[j].ID()
	})
	return reviews, nil
}

// Count returns the total review count across all tutors.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.store.SCard(ctx, allSetKey)
	if err != nil {
		return 0, fmt.Errorf("scard: %w", err)
	}
	return n, nil
}

// DeleteByTutor removes a tutor's reviews along with the tutor itself.
func (r *Repo) DeleteByTutor(ctx context.Context, tutorID string) error {
	ids, err := r.store.SMembers(ctx, tutorSetKey(tutorID))
	if err != nil {
		return fmt.Errorf("smembers: %w", err)
	}

	for _, id := range ids {
		if err := r.store.Del(ctx, reviewKey(tutorID, id)); err != nil {
			return fmt.Errorf("del review %s: %w", id, err)
		}
		if err := r.store.SRem(ctx, allSetKey, tutorID+":"+id); err != nil {
			return fmt.Errorf("srem all set: %w", err)
		}
	}

	if err := r.store.Del(ctx, tutorSetKey(tutorID)); err != nil {
		return fmt.Errorf("del tutor set: %w", err)
	}
	return nil
}

func reviewKey(tutorID, reviewID string) string {
	return fmt.Sprintf("review:%s:%s", tutorID, reviewID)
}

func tutorSetKey(tutorID string) string {
	return fmt.Sprintf("tutor:%s:reviews", tutorID)
}
