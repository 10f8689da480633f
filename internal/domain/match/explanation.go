package match

// TermMatch is one vocabulary term shared by query and tutor, with its
// contribution to the similarity score (product of the two weights).
type TermMatch struct {
	term         string
	queryWeight  float64
	tutorWeight  float64
	contribution float64
}

// NewTermMatch creates a term match entry. Weights are pre-rounded by the caller.
func NewTermMatch(term string, queryWeight, tutorWeight, contribution float64) TermMatch {
	return TermMatch{term: term, queryWeight: queryWeight, tutorWeight: tutorWeight, contribution: contribution}
}

// Term returns the matched vocabulary term.
func (m TermMatch) Term() string { return m.term }

// QueryWeight returns the term's weight in the query vector.
func (m TermMatch) QueryWeight() float64 { return m.queryWeight }

// TutorWeight returns the term's weight in the tutor vector.
func (m TermMatch) TutorWeight() float64 { return m.tutorWeight }

// Contribution returns the term's share of the similarity score.
func (m TermMatch) Contribution() float64 { return m.contribution }

// Explanation decomposes one recommendation into human-readable evidence.
// It is a pure function of the query and tutor vectors; identical inputs
// always produce an identical explanation.
type Explanation struct {
	summary  string
	strength Strength
	keywords []string
	matches  []TermMatch
	factors  []Factor
}

// NewExplanation creates an explanation.
func NewExplanation(summary string, strength Strength, keywords []string, matches []TermMatch, factors []Factor) Explanation {
	return Explanation{summary: summary, strength: strength, keywords: keywords, matches: matches, factors: factors}
}

// Summary returns the natural-language rationale.
func (e Explanation) Summary() string { return e.summary }

// Strength returns the match strength grade.
func (e Explanation) Strength() Strength { return e.strength }

// MatchingKeywords returns the top matched terms, most important first.
func (e Explanation) MatchingKeywords() []string { return e.keywords }

// DetailedMatches returns per-term weight breakdowns, capped by the builder.
func (e Explanation) DetailedMatches() []TermMatch { return e.matches }

// Factors returns the ordered factor breakdown.
func (e Explanation) Factors() []Factor { return e.factors }
