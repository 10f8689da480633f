package pricing

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Pricing bounds and fallback formula constants.
const (
	MinTrainingSamples = 10
	BaseRate           = 15.0
	RatePerYear        = 2.0
	MaxRate            = 150.0
	MinRate            = 10.0
)

// Prediction methods reported to callers.
const (
	MethodRegression = "ml_linear_regression"
	MethodFallback   = "fallback_rule_based"
)

// Confidence grades a prediction by fit quality and sample size.
type Confidence string

// Prediction confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ModelStats describes the regression fit behind a prediction.
type ModelStats struct {
	SamplesUsed    int
	Intercept      float64
	Coefficient    float64
	R2Score        float64
	RMSE           float64
	MeanRate       float64
	MinRate        float64
	MaxRate        float64
	Interpretation string
}

// Estimate is a suggested hourly rate with its provenance.
type Estimate struct {
	SuggestedRate     float64
	BaseRate          float64
	PremiumMultiplier float64
	Method            string
	Confidence        Confidence
	Stats             *ModelStats // regression method only
	Reason            string      // fallback method only
	Formula           string      // fallback method only
	ExperienceYears   int
	Subject           string
}

// RateStats summarizes observed hourly rates.
type RateStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	Std    float64
}

// ExperienceStats summarizes observed experience years.
type ExperienceStats struct {
	Mean float64
	Min  int
	Max  int
}

// Percentiles are rate distribution cut points.
type Percentiles struct {
	P25 float64
	P50 float64
	P75 float64
	P90 float64
}

// MarketReport is the pricing landscape for a subject. A zero SampleSize
// means no priced tutors matched.
type MarketReport struct {
	SubjectFilter string
	SampleSize    int
	Rates         RateStats
	Experience    ExperienceStats
	Percentiles   Percentiles
}

// Service suggests hourly rates from the current catalog. The regression
// is refit on every call so suggestions track catalog changes, the same
// freshness contract the recommender has.
type Service struct {
	catalog    Catalog
	minSamples int
	minRate    float64
	maxRate    float64
}

// Config bounds the pricing model. Zero values fall back to the
// package defaults.
type Config struct {
	MinSamples int     // samples required before the regression is trusted
	MinRate    float64 // suggestion floor
	MaxRate    float64 // suggestion ceiling
}

// New creates a pricing service over a tutor catalog.
func New(catalog Catalog, cfg Config) *Service {
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = MinTrainingSamples
	}
	if cfg.MinRate <= 0 {
		cfg.MinRate = MinRate
	}
	if cfg.MaxRate <= 0 {
		cfg.MaxRate = MaxRate
	}
	return &Service{
		catalog:    catalog,
		minSamples: cfg.MinSamples,
		minRate:    cfg.MinRate,
		maxRate:    cfg.MaxRate,
	}
}

type sample struct {
	years float64
	rate  float64
}

// PredictRate suggests an hourly rate for the given experience and
// subject. With enough priced tutors (ten by default) it fits a
// least-squares regression of rate on experience; below that it falls
// back to the rule-based formula. Negative experience is treated as zero.
func (s *Service) PredictRate(ctx context.Context, experienceYears int, subject string) (Estimate, error) {
	if experienceYears < 0 {
		experienceYears = 0
	}

	samples, err := s.trainingData(ctx, subject)
	if err != nil {
		return Estimate{}, fmt.Errorf("training data: %w", err)
	}

	premium := premiumFor(subject)

	if len(samples) < s.minSamples {
		base := BaseRate + RatePerYear*float64(experienceYears)
		return Estimate{
			SuggestedRate:     round2(s.clampRate(base * premium)),
			BaseRate:          round2(base),
			PremiumMultiplier: premium,
			Method:            MethodFallback,
			Confidence:        ConfidenceLow,
			Reason:            fmt.Sprintf("insufficient data (%d samples, need %d)", len(samples), s.minSamples),
			Formula:           fallbackFormula(experienceYears, premium),
			ExperienceYears:   experienceYears,
			Subject:           subject,
		}, nil
	}

	stats := train(samples)
	base := round2(s.clampRate(stats.model.predict(float64(experienceYears))))

	return Estimate{
		SuggestedRate:     round2(s.clampRate(base * premium)),
		BaseRate:          base,
		PremiumMultiplier: premium,
		Method:            MethodRegression,
		Confidence:        confidenceFor(stats.R2Score, stats.SamplesUsed),
		Stats:             &stats.ModelStats,
		ExperienceYears:   experienceYears,
		Subject:           subject,
	}, nil
}

// MarketAnalysis reports rate and experience statistics over priced
// tutors, optionally narrowed to a subject.
func (s *Service) MarketAnalysis(ctx context.Context, subject string) (MarketReport, error) {
	samples, err := s.trainingData(ctx, subject)
	if err != nil {
		return MarketReport{}, fmt.Errorf("training data: %w", err)
	}
	if len(samples) == 0 {
		return MarketReport{SubjectFilter: subject}, nil
	}

	rates := make([]float64, len(samples))
	years := make([]float64, len(samples))
	for i, smp := range samples {
		rates[i] = smp.rate
		years[i] = smp.years
	}
	sort.Float64s(rates)

	var yearsSum float64
	minYears, maxYears := int(years[0]), int(years[0])
	for _, y := range years {
		yearsSum += y
		if int(y) < minYears {
			minYears = int(y)
		}
		if int(y) > maxYears {
			maxYears = int(y)
		}
	}

	var ratesSum float64
	for _, r := range rates {
		ratesSum += r
	}

	return MarketReport{
		SubjectFilter: subject,
		SampleSize:    len(samples),
		Rates: RateStats{
			Mean:   round2(ratesSum / float64(len(rates))),
			Median: round2(percentile(rates, 0.50)),
			Min:    round2(rates[0]),
			Max:    round2(rates[len(rates)-1]),
			Std:    round2(sampleStd(rates)),
		},
		Experience: ExperienceStats{
			Mean: round1(yearsSum / float64(len(years))),
			Min:  minYears,
			Max:  maxYears,
		},
		Percentiles: Percentiles{
			P25: round2(percentile(rates, 0.25)),
			P50: round2(percentile(rates, 0.50)),
			P75: round2(percentile(rates, 0.75)),
			P90: round2(percentile(rates, 0.90)),
		},
	}, nil
}

// trainingData collects (experience, rate) pairs from priced tutors.
// A subject filter narrows the pool only when enough matching tutors
// remain to train on; otherwise the full market is used.
func (s *Service) trainingData(ctx context.Context, subject string) ([]sample, error) {
	tutors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	lower := strings.ToLower(subject)
	all := make([]sample, 0, len(tutors))
	var filtered []sample
	for i := range tutors {
		rate, ok := tutors[i].HourlyRate()
		if !ok || rate <= 0 {
			continue
		}
		smp := sample{years: float64(tutors[i].ExperienceYears()), rate: rate}
		all = append(all, smp)
		if lower != "" && teachesSubject(tutors[i].Qualifications(), lower) {
			filtered = append(filtered, smp)
		}
	}

	if lower != "" && len(filtered) >= s.minSamples {
		return filtered, nil
	}
	return all, nil
}

func teachesSubject(qualifications []string, subjectLower string) bool {
	for _, q := range qualifications {
		if strings.Contains(strings.ToLower(q), subjectLower) {
			return true
		}
	}
	return false
}

type fit struct {
	ModelStats
	model olsModel
}

// train fits the regression and computes in-sample quality metrics.
func train(samples []sample) fit {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, smp := range samples {
		xs[i] = smp.years
		ys[i] = smp.rate
	}

	m := fitOLS(xs, ys)

	var sum float64
	minRate, maxRate := ys[0], ys[0]
	for _, y := range ys {
		sum += y
		minRate = math.Min(minRate, y)
		maxRate = math.Max(maxRate, y)
	}

	return fit{
		model: m,
		ModelStats: ModelStats{
			SamplesUsed: len(samples),
			Intercept:   round2(m.intercept),
			Coefficient: round2(m.slope),
			R2Score:     round4(rSquared(m, xs, ys)),
			RMSE:        round2(rootMeanSquaredError(m, xs, ys)),
			MeanRate:    round2(sum / float64(len(ys))),
			MinRate:     round2(minRate),
			MaxRate:     round2(maxRate),
			Interpretation: fmt.Sprintf(
				"Base rate: $%.2f, +$%.2f per year of experience", m.intercept, m.slope,
			),
		},
	}
}

// confidenceFor grades a fit: strong fits over large samples score high.
func confidenceFor(r2 float64, samples int) Confidence {
	switch {
	case r2 > 0.7 && samples > 50:
		return ConfidenceHigh
	case r2 > 0.4 && samples > 20:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// fallbackFormula renders the rule-based calculation for transparency.
func fallbackFormula(years int, premium float64) string {
	return fmt.Sprintf("$%s + ($%s × %d years) × %s",
		formatRate(BaseRate), formatRate(RatePerYear), years, formatRate(premium))
}

// formatRate prints a float with its natural precision, keeping a
// trailing .0 on whole numbers so formulas read as currency math.
func formatRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (s *Service) clampRate(rate float64) float64 {
	return math.Max(s.minRate, math.Min(s.maxRate, rate))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
