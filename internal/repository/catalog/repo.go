package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/findmytutor/tutormatch/internal/db"
	"github.com/findmytutor/tutormatch/internal/domain"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Keys: one hash per tutor plus a set of all tutor ids.
const (
	keyPrefix = "tutor:"
	idSetKey  = "tutors"
)

// store is the consumer interface for the tutor catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SCard(ctx context.Context, key string) (int64, error)
}

// Repo implements the catalog repositories consumed by the usecases.
type Repo struct {
	store store
}

// New creates a tutor catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new tutor, failing if the id is taken.
func (r *Repo) Create(ctx context.Context, t *tutor.Tutor) error {
	key := tutorKey(t.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return domain.ErrTutorExists
	}

	if err := r.store.HSet(ctx, key, buildHashFields(t)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, idSetKey, t.ID()); err != nil {
		return fmt.Errorf("sadd %s: %w", t.ID(), err)
	}
	return nil
}

// Save overwrites an existing tutor's fields.
func (r *Repo) Save(ctx context.Context, t *tutor.Tutor) error {
	key := tutorKey(t.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(t)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// UpsertMulti stores a batch of tutors in one pipelined round-trip.
func (r *Repo) UpsertMulti(ctx context.Context, tutors []tutor.Tutor) error {
	if len(tutors) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, len(tutors))
	ids := make([]string, len(tutors))
	for i := range tutors {
		items[i] = db.HashSetItem{
			Key:    tutorKey(tutors[i].ID()),
			Fields: buildHashFields(&tutors[i]),
		}
		ids[i] = tutors[i].ID()
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi: %w", err)
	}
	if err := r.store.SAdd(ctx, idSetKey, ids...); err != nil {
		return fmt.Errorf("sadd: %w", err)
	}
	return nil
}

// Get returns a tutor by id.
func (r *Repo) Get(ctx context.Context, id string) (tutor.Tutor, error) {
	key := tutorKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return tutor.Tutor{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL yields an empty map for a missing key.
	if len(fields) == 0 {
		return tutor.Tutor{}, domain.ErrTutorNotFound
	}
	return parseHashFields(id, fields), nil
}

// List returns every tutor, ordered by id. Members whose hash vanished
// between the set read and the fetch are skipped.
func (r *Repo) List(ctx context.Context) ([]tutor.Tutor, error) {
	ids, err := r.store.SMembers(ctx, idSetKey)
	if err != nil {
		return nil, fmt.Errorf("smembers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tutorKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	tutors := make([]tutor.Tutor, 0, len(hashes))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		tutors = append(tutors, parseHashFields(ids[i], fields))
	}
	return tutors, nil
}

// Count returns the number of tutors in the catalog.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := r.store.SCard(ctx, idSetKey)
	if err != nil {
		return 0, fmt.Errorf("scard: %w", err)
	}
	return n, nil
}

// Delete removes a tutor.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := tutorKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrTutorNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.SRem(ctx, idSetKey, id); err != nil {
		return fmt.Errorf("srem %s: %w", id, err)
	}
	return nil
}

func tutorKey(id string) string {
	return keyPrefix + id
}
