package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/findmytutor/tutormatch/internal/domain"
	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/domain/usage"
	"github.com/findmytutor/tutormatch/internal/metrics"
)

// QuotaGate is the local interface for daily request quotas.
type QuotaGate interface {
	// Allow consumes one request from the scope's daily window and
	// returns the remaining quota. Errors wrap domain.ErrQuotaExceeded
	// when the window is spent.
	Allow(ctx context.Context, scope usage.Scope) (int64, error)
}

// Операции, различаемые в метриках и логах.
const (
	opRecommend = "recommend"
	opSimilar   = "similar"
	opExplain   = "explain"
)

// InstrumentedRecommender wraps a Recommender with quota enforcement,
// metrics, and logging. The inner service stays free of observability
// concerns; this layer owns quota tracking and quota-related metrics.
type InstrumentedRecommender struct {
	inner  Recommender
	quota  QuotaGate
	logger *zap.Logger
}

// NewInstrumentedRecommender wraps a recommender with quota and observability.
func NewInstrumentedRecommender(inner Recommender, quota QuotaGate, logger *zap.Logger) *InstrumentedRecommender {
	return &InstrumentedRecommender{inner: inner, quota: quota, logger: logger}
}

// Recommend checks the daily quota, delegates, and records the outcome.
func (p *InstrumentedRecommender) Recommend(ctx context.Context, req match.Request) ([]match.Result, error) {
	if err := p.allow(ctx, opRecommend); err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := p.inner.Recommend(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(opRecommend, "error").Inc()
		p.logger.Error("Recommendation failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	metrics.RecommendRequestsTotal.WithLabelValues(opRecommend, "ok").Inc()
	metrics.RecommendDuration.WithLabelValues(opRecommend).Observe(duration.Seconds())
	metrics.RecommendResultsReturned.WithLabelValues(opRecommend).Observe(float64(len(results)))

	p.logger.Debug("Recommendation completed",
		zap.Duration("duration", duration),
		zap.Int("results", len(results)),
		zap.Int("limit", req.Limit()),
	)

	return results, nil
}

// Similar checks the daily quota, delegates, and records the outcome.
func (p *InstrumentedRecommender) Similar(ctx context.Context, tutorID string, limit int) ([]match.Result, error) {
	if err := p.allow(ctx, opSimilar); err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := p.inner.Similar(ctx, tutorID, limit)
	duration := time.Since(start)

	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(opSimilar, "error").Inc()
		p.logger.Error("Similar-tutor lookup failed",
			zap.String("tutor_id", tutorID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, fmt.Errorf("similar: %w", err)
	}

	metrics.RecommendRequestsTotal.WithLabelValues(opSimilar, "ok").Inc()
	metrics.RecommendDuration.WithLabelValues(opSimilar).Observe(duration.Seconds())
	metrics.RecommendResultsReturned.WithLabelValues(opSimilar).Observe(float64(len(results)))

	p.logger.Debug("Similar-tutor lookup completed",
		zap.String("tutor_id", tutorID),
		zap.Duration("duration", duration),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// Explain checks the daily quota, delegates, and records the outcome.
func (p *InstrumentedRecommender) Explain(ctx context.Context, query, tutorID string) (Insight, error) {
	if err := p.allow(ctx, opExplain); err != nil {
		return Insight{}, err
	}

	start := time.Now()
	insight, err := p.inner.Explain(ctx, query, tutorID)
	duration := time.Since(start)

	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(opExplain, "error").Inc()
		p.logger.Error("Match explanation failed",
			zap.String("tutor_id", tutorID),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return Insight{}, fmt.Errorf("explain: %w", err)
	}

	metrics.RecommendRequestsTotal.WithLabelValues(opExplain, "ok").Inc()
	metrics.RecommendDuration.WithLabelValues(opExplain).Observe(duration.Seconds())

	p.logger.Debug("Match explanation completed",
		zap.String("tutor_id", tutorID),
		zap.Duration("duration", duration),
		zap.Float64("similarity", insight.Similarity),
		zap.Int("matching_terms", len(insight.MatchingTerms)),
	)

	return insight, nil
}

// allow consumes quota for the recommendation scope, or rejects.
func (p *InstrumentedRecommender) allow(ctx context.Context, op string) error {
	if p.quota == nil {
		return nil
	}

	remaining, err := p.quota.Allow(ctx, usage.ScopeRecommend)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			metrics.QuotaRejectionsTotal.WithLabelValues(string(usage.ScopeRecommend)).Inc()
		}
		p.logger.Error("Quota check failed",
			zap.String("operation", op),
			zap.Error(err),
		)
		return fmt.Errorf("quota check: %w", err)
	}

	metrics.QuotaRemaining.WithLabelValues(string(usage.ScopeRecommend)).Set(float64(remaining))
	return nil
}
