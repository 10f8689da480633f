// Package chi exposes the tutormatch API over HTTP using the chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/findmytutor/tutormatch/internal/domain"
	"github.com/findmytutor/tutormatch/internal/domain/batch"
	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/domain/review"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/domain/tutor/patch"
	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
	"github.com/findmytutor/tutormatch/internal/usecase/pricing"
	"github.com/findmytutor/tutormatch/internal/usecase/recommend"
	"github.com/findmytutor/tutormatch/internal/usecase/sentiment"
	"github.com/findmytutor/tutormatch/internal/version"

	healthuc "github.com/findmytutor/tutormatch/internal/usecase/health"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeTutorNotFound    = "tutor_not_found"
	codeTutorExists      = "tutor_already_exists"
	codeReviewNotFound   = "review_not_found"
	codeQuotaExceeded    = "quota_exceeded"
	codeRateLimited      = "rate_limited"
	codeInternalError    = "internal_error"
)

// CatalogService is the tutor catalog surface consumed by the handlers.
type CatalogService interface {
	Create(ctx context.Context, attrs tutor.Attributes) (tutor.Tutor, error)
	Get(ctx context.Context, id string) (tutor.Tutor, error)
	List(ctx context.Context) ([]tutor.Tutor, error)
	Update(ctx context.Context, id string, p patch.Patch) (tutor.Tutor, error)
	Delete(ctx context.Context, id string) error
	BulkUpsert(ctx context.Context, items []tutor.Attributes) ([]batch.Result, error)
	AddReview(ctx context.Context, tutorID string, attrs review.Attributes) (review.Review, tutor.Tutor, error)
	Reviews(ctx context.Context, tutorID string) ([]review.Review, error)
}

// HealthService is the health and statistics surface.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
	Statistics(ctx context.Context) (healthuc.Stats, error)
}

// QuotaGate consumes daily quota for the sentiment and ML scopes. The
// recommendation scope is enforced inside the instrumented recommender.
type QuotaGate interface {
	Allow(ctx context.Context, scope domusage.Scope) (int64, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the usecase services into HTTP handlers.
type Server struct {
	recommender recommend.Recommender
	catalog     CatalogService
	scorer      sentiment.Scorer
	estimator   pricing.Estimator
	health      HealthService
	quota       QuotaGate
	logger      *zap.Logger

	mlRatePerMinute int
	recommendLimits match.Bounds
	errorHandlers   []errorHandler
}

// NewServer creates an HTTP API server. quota may be nil (no throttling
// of the sentiment and pricing routes).
func NewServer(
	recommender recommend.Recommender,
	catalog CatalogService,
	scorer sentiment.Scorer,
	estimator pricing.Estimator,
	health HealthService,
	quota QuotaGate,
	logger *zap.Logger,
) *Server {
	s := &Server{
		recommender: recommender,
		catalog:     catalog,
		scorer:      scorer,
		estimator:   estimator,
		health:      health,
		quota:       quota,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrTutorNotFound, http.StatusNotFound, codeTutorNotFound),
		sentinelHandler(domain.ErrTutorExists, http.StatusConflict, codeTutorExists),
		sentinelHandler(domain.ErrReviewNotFound, http.StatusNotFound, codeReviewNotFound),
		sentinelHandler(domain.ErrQuotaExceeded, http.StatusTooManyRequests, codeQuotaExceeded),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, codeRateLimited),
	}
	return s
}

// WithMLRateLimit caps the sentiment and pricing routes to n requests
// per client per minute. Zero disables the limiter.
func (s *Server) WithMLRateLimit(n int) *Server {
	s.mlRatePerMinute = n
	return s
}

// WithRecommendLimits overrides the default and maximum result counts
// for the recommendation routes. Zero values keep the built-in limits.
func (s *Server) WithRecommendLimits(defaultLimit, maxLimit int) *Server {
	s.recommendLimits = match.Bounds{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
	return s
}

// Routes mounts every API route on a fresh sub-router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.handleLiveness)
	r.Get("/version", s.handleVersion)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/", s.handleRecommend)
			r.Get("/health", s.handleRecommendHealth)
			r.Post("/explain", s.handleExplain)
		})

		r.Route("/tutors", func(r chi.Router) {
			r.Post("/", s.handleCreateTutor)
			r.Get("/", s.handleListTutors)
			r.Post("/bulk", s.handleBulkUpsert)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetTutor)
				r.Patch("/", s.handlePatchTutor)
				r.Delete("/", s.handleDeleteTutor)
				r.Get("/similar", s.handleSimilar)
				r.Post("/reviews", s.handleAddReview)
				r.Get("/reviews", s.handleListReviews)
				r.Get("/sentiment", s.handleTutorSentiment)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.mlRateLimiter())
			r.Post("/reviews/analyze", s.handleAnalyze)
			r.Post("/reviews/analyze/batch", s.handleAnalyzeBatch)
			r.Post("/pricing/predict", s.handlePredictRate)
			r.Get("/pricing/market", s.handleMarketAnalysis)
		})
	})

	return r
}

// mlRateLimiter builds the per-client limiter for the ML routes. The
// rejection body matches the API error format instead of httprate's
// plain-text default.
func (s *Server) mlRateLimiter() func(http.Handler) http.Handler {
	if s.mlRatePerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		s.mlRatePerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, codeRateLimited, domain.ErrRateLimited.Error())
		}),
	)
}

// handleLiveness handles GET /health.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// handleVersion handles GET /version.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// allowQuota consumes quota for a scope, writing the rejection if the
// daily window is spent. Returns false when the request must not proceed.
func (s *Server) allowQuota(w http.ResponseWriter, r *http.Request, scope domusage.Scope) bool {
	if s.quota == nil {
		return true
	}
	if _, err := s.quota.Allow(r.Context(), scope); err != nil {
		s.handleDomainError(w, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// safeDomainMessage returns a sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var qe *domain.QuotaExceededError
	if errors.As(err, &qe) {
		return qe.Error()
	}
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrTutorNotFound,
		domain.ErrTutorExists,
		domain.ErrReviewNotFound,
		domain.ErrQuotaExceeded,
		domain.ErrRateLimited,
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
