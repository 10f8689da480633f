package tutormatch

import (
	"context"
	"fmt"

	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/usecase/recommend"
)

// Recommendation is one ranked match for a query.
type Recommendation struct {
	Rank            int
	Tutor           Tutor
	Similarity      float64
	MatchPercentage float64
	Explanation     Explanation
}

// Explanation is the human-readable evidence behind one recommendation.
type Explanation struct {
	Summary          string
	Strength         string
	MatchingKeywords []string
	Matches          []TermMatch
	Factors          []Factor
}

// TermMatch is one shared term with its weight in each vector and its
// contribution to the score.
type TermMatch struct {
	Term         string
	QueryWeight  float64
	TutorWeight  float64
	Contribution float64
}

// Factor is one named contributor to a recommendation.
type Factor struct {
	Name        string
	Description string
	Impact      string
	Keywords    []string
	Value       *float64
}

// WeightedTerm is a vocabulary term with its TF-IDF weight.
type WeightedTerm struct {
	Term   string
	Weight float64
}

// Insight breaks down how a query scores against a single tutor.
type Insight struct {
	Query          string
	TutorID        string
	TutorName      string
	Similarity     float64
	Explanation    Explanation
	QueryTerms     []WeightedTerm
	MatchingTerms  []TermMatch
	VocabularySize int
}

// RecommendQuery is a fluent recommendation request. Chain filters,
// then call Do.
type RecommendQuery struct {
	engine     *Engine
	query      string
	limit      int
	maxPrice   *float64
	onlineOnly bool
}

// MaxPrice keeps only tutors at or below the given hourly rate.
func (q *RecommendQuery) MaxPrice(rate float64) *RecommendQuery {
	q.maxPrice = &rate
	return q
}

// OnlineOnly keeps only tutors available for online lessons.
func (q *RecommendQuery) OnlineOnly() *RecommendQuery {
	q.onlineOnly = true
	return q
}

// Limit caps the result count. Zero uses the default of 10; values
// above 50 are clamped.
func (q *RecommendQuery) Limit(n int) *RecommendQuery {
	q.limit = n
	return q
}

// Do runs the query against the current catalog.
func (q *RecommendQuery) Do(ctx context.Context) ([]Recommendation, error) {
	req, err := match.NewRequest(q.query, q.limit, q.maxPrice, q.onlineOnly)
	if err != nil {
		return nil, fmt.Errorf("tutormatch: %w", err)
	}
	results, err := q.engine.recommender.Recommend(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutormatch: %w", err)
	}
	return toRecommendations(results), nil
}

func toRecommendations(results []match.Result) []Recommendation {
	out := make([]Recommendation, 0, len(results))
	for i := range results {
		r := &results[i]
		out = append(out, Recommendation{
			Rank:            r.Rank(),
			Tutor:           fromDomain(r.Tutor()),
			Similarity:      r.Similarity(),
			MatchPercentage: r.MatchPercentage(),
			Explanation:     toExplanation(r.Explanation()),
		})
	}
	return out
}

func toExplanation(expl match.Explanation) Explanation {
	return Explanation{
		Summary:          expl.Summary(),
		Strength:         string(expl.Strength()),
		MatchingKeywords: expl.MatchingKeywords(),
		Matches:          toTermMatches(expl.DetailedMatches()),
		Factors:          toFactors(expl.Factors()),
	}
}

func toTermMatches(matches []match.TermMatch) []TermMatch {
	out := make([]TermMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, TermMatch{
			Term:         m.Term(),
			QueryWeight:  m.QueryWeight(),
			TutorWeight:  m.TutorWeight(),
			Contribution: m.Contribution(),
		})
	}
	return out
}

func toFactors(factors []match.Factor) []Factor {
	out := make([]Factor, 0, len(factors))
	for _, f := range factors {
		rf := Factor{
			Name:        f.Name(),
			Description: f.Description(),
			Impact:      string(f.Impact()),
			Keywords:    f.Keywords(),
		}
		if v, ok := f.Value(); ok {
			rf.Value = &v
		}
		out = append(out, rf)
	}
	return out
}

func toInsight(in recommend.Insight) Insight {
	terms := make([]WeightedTerm, 0, len(in.QueryTerms))
	for _, t := range in.QueryTerms {
		terms = append(terms, WeightedTerm{Term: t.Term, Weight: t.Weight})
	}
	return Insight{
		Query:          in.Query,
		TutorID:        in.TutorID,
		TutorName:      in.TutorName,
		Similarity:     in.Similarity,
		Explanation:    toExplanation(in.Explanation),
		QueryTerms:     terms,
		MatchingTerms:  toTermMatches(in.MatchingTerms),
		VocabularySize: in.VocabularySize,
	}
}
