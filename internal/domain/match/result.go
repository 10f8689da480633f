package match

import "github.com/findmytutor/tutormatch/internal/domain/tutor"

// Result is one ranked recommendation.
// Ordering invariant across a result list: similarity descending, then
// average rating descending with absent ratings after any present rating.
type Result struct {
	tut             tutor.Tutor
	similarity      float64
	matchPercentage float64
	rank            int
	explanation     Explanation
}

// NewResult creates a ranked result. Rank positions are 1-based.
func NewResult(t tutor.Tutor, similarity, matchPercentage float64, rank int, expl Explanation) Result {
	return Result{tut: t, similarity: similarity, matchPercentage: matchPercentage, rank: rank, explanation: expl}
}

// Tutor returns the recommended tutor.
func (r *Result) Tutor() *tutor.Tutor { return &r.tut }

// Similarity returns the cosine similarity, rounded to 4 decimals.
func (r *Result) Similarity() float64 { return r.similarity }

// MatchPercentage returns similarity scaled to 0-100, rounded to 1 decimal.
func (r *Result) MatchPercentage() float64 { return r.matchPercentage }

// Rank returns the 1-based rank position.
func (r *Result) Rank() int { return r.rank }

// Explanation returns the ranking rationale.
func (r *Result) Explanation() Explanation { return r.explanation }
