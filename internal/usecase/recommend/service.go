package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/findmytutor/tutormatch/internal/domain"
	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/vectorspace"
)

// DefaultSimilarLimit is the result count for similar-tutor lookups.
const DefaultSimilarLimit = 5

// Service ranks tutors against free-text queries with a vector-space
// model fitted fresh per request, and explains every ranking. It holds
// no mutable state, so concurrent requests are independent.
type Service struct {
	catalog Catalog
	model   *vectorspace.Model
}

// New creates a recommendation service.
func New(catalog Catalog, cfg vectorspace.Config) *Service {
	return &Service{catalog: catalog, model: vectorspace.NewModel(cfg)}
}

// Recommend returns the top matches for the request, best first.
// A blank query or an empty catalog yields an empty list, never an error.
// Tutors with zero term overlap are excluded even when the limit is unfilled.
func (s *Service) Recommend(ctx context.Context, req match.Request) ([]match.Result, error) {
	if strings.TrimSpace(req.Query()) == "" {
		return nil, nil
	}

	tutors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	tutors = applyFilters(tutors, req)
	if len(tutors) == 0 {
		return nil, nil
	}

	return s.rank(tutors, req.Query(), req.Limit(), ""), nil
}

// Similar ranks tutors against the given tutor's own profile document,
// excluding the tutor itself. Limit defaults to 5.
func (s *Service) Similar(ctx context.Context, tutorID string, limit int) ([]match.Result, error) {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	if limit > match.MaxLimit {
		limit = match.MaxLimit
	}

	tutors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	target, ok := findTutor(tutors, tutorID)
	if !ok {
		return nil, fmt.Errorf("tutor %q: %w", tutorID, domain.ErrTutorNotFound)
	}

	return s.rank(tutors, target.Document(), limit, tutorID), nil
}

// WeightedTerm is one term with its weight in the query vector.
type WeightedTerm struct {
	Term   string
	Weight float64
}

// Insight is the standalone breakdown of one query-tutor pairing,
// used for debugging a recommendation.
type Insight struct {
	Query          string
	TutorID        string
	TutorName      string
	Similarity     float64
	Explanation    match.Explanation
	QueryTerms     []WeightedTerm
	MatchingTerms  []match.TermMatch
	VocabularySize int
}

// Explain breaks down how the query scores against one tutor over the
// full catalog vocabulary. Unknown tutor ids surface ErrTutorNotFound.
func (s *Service) Explain(ctx context.Context, query, tutorID string) (Insight, error) {
	tutors, err := s.catalog.List(ctx)
	if err != nil {
		return Insight{}, fmt.Errorf("list tutors: %w", err)
	}
	target, ok := findTutor(tutors, tutorID)
	if !ok {
		return Insight{}, fmt.Errorf("tutor %q: %w", tutorID, domain.ErrTutorNotFound)
	}

	docs := make([]string, len(tutors))
	for i := range tutors {
		docs[i] = tutors[i].Document()
	}
	voc := s.model.Fit(docs)
	queryVec := voc.Vectorize(query)
	tutorVec := voc.Vectorize(target.Document())

	similarity := queryVec.Dot(tutorVec)
	pct := round1(similarity * 100)
	expl := buildExplanation(voc, queryVec, tutorVec, &target, pct)

	queryTerms := make([]WeightedTerm, 0, len(queryVec))
	for _, term := range queryVec {
		queryTerms = append(queryTerms, WeightedTerm{Term: voc.Term(term.Index), Weight: round4(term.Weight)})
	}
	sort.SliceStable(queryTerms, func(i, j int) bool { return queryTerms[i].Weight > queryTerms[j].Weight })
	if len(queryTerms) > maxDetailedMatches {
		queryTerms = queryTerms[:maxDetailedMatches]
	}

	return Insight{
		Query:          query,
		TutorID:        tutorID,
		TutorName:      target.FullName(),
		Similarity:     round4(similarity),
		Explanation:    expl,
		QueryTerms:     queryTerms,
		MatchingTerms:  expl.DetailedMatches(),
		VocabularySize: voc.Size(),
	}, nil
}

// rank fits the vocabulary over the corpus, scores every tutor against
// the query, and keeps the strictly positive matches in order.
func (s *Service) rank(tutors []tutor.Tutor, query string, limit int, excludeID string) []match.Result {
	docs := make([]string, len(tutors))
	for i := range tutors {
		docs[i] = tutors[i].Document()
	}
	voc := s.model.Fit(docs)

	queryVec := voc.Vectorize(query)
	if queryVec.IsZero() {
		return nil
	}

	type candidate struct {
		tut        *tutor.Tutor
		vec        vectorspace.Vector
		similarity float64
	}
	candidates := make([]candidate, 0, len(tutors))
	for i := range tutors {
		if tutors[i].ID() == excludeID {
			continue
		}
		vec := voc.Vectorize(docs[i])
		sim := queryVec.Dot(vec)
		if sim <= 0 {
			continue
		}
		candidates = append(candidates, candidate{tut: &tutors[i], vec: vec, similarity: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		ri, iok := candidates[i].tut.AverageRating()
		rj, jok := candidates[j].tut.AverageRating()
		switch {
		case iok && !jok:
			return true
		case !iok && jok:
			return false
		case iok && jok && ri != rj:
			return ri > rj
		}
		return candidates[i].tut.ID() < candidates[j].tut.ID()
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]match.Result, len(candidates))
	for i, c := range candidates {
		pct := round1(c.similarity * 100)
		expl := buildExplanation(voc, queryVec, c.vec, c.tut, pct)
		results[i] = match.NewResult(*c.tut, round4(c.similarity), pct, i+1, expl)
	}
	return results
}

// applyFilters narrows the corpus before fitting. A max price excludes
// tutors without a declared rate; rate filtering happens before the
// vocabulary is built so pruned tutors never influence term weights.
func applyFilters(tutors []tutor.Tutor, req match.Request) []tutor.Tutor {
	maxPrice, priceSet := req.MaxPrice()
	if !priceSet && !req.OnlineOnly() {
		return tutors
	}
	kept := make([]tutor.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if priceSet {
			rate, ok := t.HourlyRate()
			if !ok || rate > maxPrice {
				continue
			}
		}
		if req.OnlineOnly() && !t.IsOnline() {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

func findTutor(tutors []tutor.Tutor, id string) (tutor.Tutor, bool) {
	for _, t := range tutors {
		if t.ID() == id {
			return t, true
		}
	}
	return tutor.Tutor{}, false
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
