// Package tutormatch embeds the tutor recommendation engine in-process:
// an in-memory catalog plus the TF-IDF ranking core, with no server or
// database required.
package tutormatch

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/usecase/pricing"
	"github.com/findmytutor/tutormatch/internal/usecase/recommend"
	"github.com/findmytutor/tutormatch/internal/usecase/sentiment"
	"github.com/findmytutor/tutormatch/internal/vectorspace"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	maxFeatures    int
	maxDocFraction float64
	tutors         []Tutor
}

// WithVocabularyCap bounds the fitted vocabulary size.
func WithVocabularyCap(n int) Option {
	return func(c *engineConfig) { c.maxFeatures = n }
}

// WithMaxDocFraction drops terms present in more than the given
// fraction of tutor profiles (0 < f <= 1).
func WithMaxDocFraction(f float64) Option {
	return func(c *engineConfig) { c.maxDocFraction = f }
}

// WithTutors seeds the catalog. Invalid profiles surface on the first
// Add-like call through New's error.
func WithTutors(tutors ...Tutor) Option {
	return func(c *engineConfig) { c.tutors = append(c.tutors, tutors...) }
}

// Engine is the embedded recommendation engine. Safe for concurrent use.
type Engine struct {
	mu     sync.RWMutex
	tutors map[string]tutor.Tutor

	recommender *recommend.Service
	estimator   *pricing.Service
	analyzer    *sentiment.Analyzer
}

// New creates an in-memory engine.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, o := range opts {
		o(cfg)
	}

	e := &Engine{tutors: make(map[string]tutor.Tutor)}
	e.recommender = recommend.New(catalogView{e}, vectorspace.Config{
		MaxFeatures:    cfg.maxFeatures,
		MaxDocFraction: cfg.maxDocFraction,
	})
	e.estimator = pricing.New(catalogView{e}, pricing.Config{})
	e.analyzer = sentiment.NewAnalyzer()

	for _, t := range cfg.tutors {
		if err := e.Add(t); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Add validates and stores a tutor profile, replacing any previous
// profile with the same id.
func (e *Engine) Add(t Tutor) error {
	dom, err := tutor.New(t.attributes())
	if err != nil {
		return fmt.Errorf("tutormatch: add tutor %q: %w", t.ID, err)
	}

	e.mu.Lock()
	e.tutors[dom.ID()] = dom
	e.mu.Unlock()
	return nil
}

// Remove deletes a tutor. Reports whether the id was present.
func (e *Engine) Remove(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.tutors[id]
	delete(e.tutors, id)
	return ok
}

// Get returns a tutor profile by id.
func (e *Engine) Get(id string) (Tutor, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	dom, ok := e.tutors[id]
	if !ok {
		return Tutor{}, false
	}
	return fromDomain(&dom), true
}

// Len returns the catalog size.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.tutors)
}

// Tutors returns every profile, ordered by id.
func (e *Engine) Tutors() []Tutor {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Tutor, 0, len(e.tutors))
	for _, dom := range e.tutors {
		out = append(out, fromDomain(&dom))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Recommend starts a fluent recommendation query.
func (e *Engine) Recommend(query string) *RecommendQuery {
	return &RecommendQuery{engine: e, query: query}
}

// Similar returns up to limit tutors ranked by profile similarity to
// the given tutor. Limit zero uses the engine default.
func (e *Engine) Similar(ctx context.Context, tutorID string, limit int) ([]Recommendation, error) {
	results, err := e.recommender.Similar(ctx, tutorID, limit)
	if err != nil {
		return nil, fmt.Errorf("tutormatch: %w", err)
	}
	return toRecommendations(results), nil
}

// Explain breaks down how a query scores against one tutor.
func (e *Engine) Explain(ctx context.Context, query, tutorID string) (Insight, error) {
	insight, err := e.recommender.Explain(ctx, query, tutorID)
	if err != nil {
		return Insight{}, fmt.Errorf("tutormatch: %w", err)
	}
	return toInsight(insight), nil
}

// SuggestRate predicts an hourly rate for the given experience and
// subject from the current catalog.
func (e *Engine) SuggestRate(ctx context.Context, experienceYears int, subject string) (RateEstimate, error) {
	est, err := e.estimator.PredictRate(ctx, experienceYears, subject)
	if err != nil {
		return RateEstimate{}, fmt.Errorf("tutormatch: %w", err)
	}
	return RateEstimate{
		SuggestedRate:   est.SuggestedRate,
		Method:          est.Method,
		Confidence:      string(est.Confidence),
		ExperienceYears: est.ExperienceYears,
		Subject:         est.Subject,
	}, nil
}

// Sentiment scores a piece of review text.
func (e *Engine) Sentiment(text string) SentimentScore {
	a := e.analyzer.Analyze(text)
	return SentimentScore{
		Polarity:     a.Polarity,
		Subjectivity: a.Subjectivity,
		Label:        string(a.Label),
		Confidence:   string(a.Confidence),
		WordCount:    a.WordCount,
	}
}

// RateEstimate is a suggested hourly rate for the embedded engine's
// public surface.
type RateEstimate struct {
	SuggestedRate   float64
	Method          string
	Confidence      string
	ExperienceYears int
	Subject         string
}

// SentimentScore is a lexicon-based sentiment reading of review text.
type SentimentScore struct {
	Polarity     float64 // [-1, 1], negative to positive
	Subjectivity float64 // [0, 1], factual to opinionated
	Label        string
	Confidence   string
	WordCount    int
}

// catalogView adapts the engine's map to the read-side catalog contract
// shared by the recommender and the pricing model.
type catalogView struct {
	engine *Engine
}

func (v catalogView) List(context.Context) ([]tutor.Tutor, error) {
	v.engine.mu.RLock()
	defer v.engine.mu.RUnlock()

	out := make([]tutor.Tutor, 0, len(v.engine.tutors))
	for _, dom := range v.engine.tutors {
		out = append(out, dom)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}
