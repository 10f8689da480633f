package chi

import (
	"net/http"

	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
	"github.com/findmytutor/tutormatch/internal/metrics"
	"github.com/findmytutor/tutormatch/internal/usecase/pricing"
)

type predictRequest struct {
	ExperienceYears int    `json:"experience_years"`
	Subject         string `json:"subject,omitempty"`
}

type modelStatsJSON struct {
	SamplesUsed    int     `json:"samples_used"`
	Intercept      float64 `json:"intercept"`
	Coefficient    float64 `json:"coefficient"`
	R2Score        float64 `json:"r2_score"`
	RMSE           float64 `json:"rmse"`
	MeanRate       float64 `json:"mean_rate"`
	MinRate        float64 `json:"min_rate"`
	MaxRate        float64 `json:"max_rate"`
	Interpretation string  `json:"interpretation"`
}

type estimateJSON struct {
	SuggestedRate     float64         `json:"suggested_hourly_rate"`
	BaseRate          float64         `json:"base_rate"`
	PremiumMultiplier float64         `json:"premium_multiplier"`
	Method            string          `json:"method"`
	Confidence        string          `json:"confidence"`
	Stats             *modelStatsJSON `json:"model_stats,omitempty"`
	Reason            string          `json:"reason,omitempty"`
	Formula           string          `json:"formula,omitempty"`
	ExperienceYears   int             `json:"experience_years"`
	Subject           string          `json:"subject,omitempty"`
}

// handlePredictRate handles POST /api/v1/pricing/predict.
func (s *Server) handlePredictRate(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if !s.allowQuota(w, r, domusage.ScopeML) {
		return
	}

	est, err := s.estimator.PredictRate(r.Context(), req.ExperienceYears, req.Subject)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.PricePredictionsTotal.WithLabelValues(est.Method, string(est.Confidence)).Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"prediction": estimateToJSON(est),
	})
}

// handleMarketAnalysis handles GET /api/v1/pricing/market.
func (s *Server) handleMarketAnalysis(w http.ResponseWriter, r *http.Request) {
	if !s.allowQuota(w, r, domusage.ScopeML) {
		return
	}

	report, err := s.estimator.MarketAnalysis(r.Context(), r.URL.Query().Get("subject"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"analysis": reportToJSON(report),
	})
}

func estimateToJSON(est pricing.Estimate) estimateJSON {
	out := estimateJSON{
		SuggestedRate:     est.SuggestedRate,
		BaseRate:          est.BaseRate,
		PremiumMultiplier: est.PremiumMultiplier,
		Method:            est.Method,
		Confidence:        string(est.Confidence),
		Reason:            est.Reason,
		Formula:           est.Formula,
		ExperienceYears:   est.ExperienceYears,
		Subject:           est.Subject,
	}
	if est.Stats != nil {
		out.Stats = &modelStatsJSON{
			SamplesUsed:    est.Stats.SamplesUsed,
			Intercept:      est.Stats.Intercept,
			Coefficient:    est.Stats.Coefficient,
			R2Score:        est.Stats.R2Score,
			RMSE:           est.Stats.RMSE,
			MeanRate:       est.Stats.MeanRate,
			MinRate:        est.Stats.MinRate,
			MaxRate:        est.Stats.MaxRate,
			Interpretation: est.Stats.Interpretation,
		}
	}
	return out
}

func reportToJSON(rep pricing.MarketReport) map[string]any {
	return map[string]any{
		"subject_filter": rep.SubjectFilter,
		"sample_size":    rep.SampleSize,
		"rates": map[string]float64{
			"mean":   rep.Rates.Mean,
			"median": rep.Rates.Median,
			"min":    rep.Rates.Min,
			"max":    rep.Rates.Max,
			"std":    rep.Rates.Std,
		},
		"experience": map[string]any{
			"mean": rep.Experience.Mean,
			"min":  rep.Experience.Min,
			"max":  rep.Experience.Max,
		},
		"percentiles": map[string]float64{
			"p25": rep.Percentiles.P25,
			"p50": rep.Percentiles.P50,
			"p75": rep.Percentiles.P75,
			"p90": rep.Percentiles.P90,
		},
	}
}
