package review

import (
	"context"
	"testing"
	"time"

	"github.com/findmytutor/tutormatch/internal/domain/review"
)

type fakeStore struct {
	docs map[string][]byte
	sets map[string]map[string]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs: make(map[string][]byte),
		sets: make(map[string]map[string]struct{}),
	}
}

func (f *fakeStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	f.docs[key] = data
	return nil
}

func (f *fakeStore) JSONGetMulti(_ context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = f.docs[k]
	}
	return out, nil
}

func (f *fakeStore) SAdd(_ context.Context, key string, members ...string) error {
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]struct{})
	}
	for _, m := range members {
		f.sets[key][m] = struct{}{}
	}
	return nil
}

func (f *fakeStore) SMembers(_ context.Context, key string) ([]string, error) {
	var out []string
	for m := range f.sets[key] {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStore) SCard(_ context.Context, key string) (int64, error) {
	return int64(len(f.sets[key])), nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	delete(f.docs, key)
	delete(f.sets, key)
	return nil
}

func (f *fakeStore) SRem(_ context.Context, key string, members ...string) error {
	for _, m := range members {
		delete(f.sets[key], m)
	}
	return nil
}

func mustReview(t *testing.T, id, tutorID, comment string, rating float64, at time.Time) review.Review {
	t.Helper()
	rev, err := review.New(review.Attributes{
		ID:        id,
		TutorID:   tutorID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("build review: %v", err)
	}
	return rev
}

func TestAddAndListByTutor(t *testing.T) {
	repo := New(newFakeStore())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := mustReview(t, "r2", "t1", "later review", 5, base.Add(time.Hour))
	first := mustReview(t, "r1", "t1", "earlier review", 4, base)
	other := mustReview(t, "r3", "t2", "other tutor", 3, base)

	for _, rev := range []review.Review{second, first, other} {
		if err := repo.Add(ctx, &rev); err != nil {
			t.Fatalf("add %s: %v", rev.ID(), err)
		}
	}

	got, err := repo.ListByTutor(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reviews for t1, got %d", len(got))
	}
	if got[0].ID() != "r1" || got[1].ID() != "r2" {
		t.Errorf("expected oldest-first order [r1 r2], got [%s %s]", got[0].ID(), got[1].ID())
	}
	if comment, ok := got[0].Comment(); !ok || comment != "earlier review" {
		t.Errorf("round-trip lost comment: %q ok=%v", comment, ok)
	}
}

func TestListByTutor_Empty(t *testing.T) {
	repo := New(newFakeStore())

	got, err := repo.ListByTutor(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no reviews, got %d", len(got))
	}
}

func TestCount_AcrossTutors(t *testing.T) {
	repo := New(newFakeStore())
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, rev := range []review.Review{
		mustReview(t, "r1", "t1", "a", 4, at),
		mustReview(t, "r2", "t1", "b", 5, at),
		mustReview(t, "r3", "t2", "c", 3, at),
	} {
		if err := repo.Add(ctx, &rev); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
}

func TestDeleteByTutor(t *testing.T) {
	fake := newFakeStore()
	repo := New(fake)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, rev := range []review.Review{
		mustReview(t, "r1", "t1", "a", 4, at),
		mustReview(t, "r2", "t2", "b", 5, at),
	} {
		if err := repo.Add(ctx, &rev); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := repo.DeleteByTutor(ctx, "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := repo.ListByTutor(ctx, "t1"); len(got) != 0 {
		t.Errorf("t1 reviews should be gone, got %d", len(got))
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("global count should drop to 1, got %d", n)
	}
	if got, _ := repo.ListByTutor(ctx, "t2"); len(got) != 1 {
		t.Errorf("t2 reviews should survive, got %d", len(got))
	}
}
