package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/findmytutor/tutormatch/internal/config"
	dbRedis "github.com/findmytutor/tutormatch/internal/db/redis"
	logpkg "github.com/findmytutor/tutormatch/internal/logger"
	"github.com/findmytutor/tutormatch/internal/metrics"
	"github.com/findmytutor/tutormatch/internal/vectorspace"
	"github.com/findmytutor/tutormatch/internal/version"

	catalogrepo "github.com/findmytutor/tutormatch/internal/repository/catalog"
	reviewrepo "github.com/findmytutor/tutormatch/internal/repository/review"
	usagerepo "github.com/findmytutor/tutormatch/internal/repository/usage"
	chiTransport "github.com/findmytutor/tutormatch/internal/transport/chi"
	cataloguc "github.com/findmytutor/tutormatch/internal/usecase/catalog"
	healthuc "github.com/findmytutor/tutormatch/internal/usecase/health"
	pricinguc "github.com/findmytutor/tutormatch/internal/usecase/pricing"
	recommenduc "github.com/findmytutor/tutormatch/internal/usecase/recommend"
	sentimentuc "github.com/findmytutor/tutormatch/internal/usecase/sentiment"
	usageuc "github.com/findmytutor/tutormatch/internal/usecase/usage"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tutormatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterRecommendMetrics()
	metrics.RegisterMLMetrics()

	// Repositories (domain-native, no adapters)
	tutorRepo := catalogrepo.New(store)
	reviewRepo := reviewrepo.New(store)
	counterRepo := usagerepo.New(store)

	// Use case services — composition root
	quotaSvc := usageuc.New(counterRepo, usageuc.Limits{
		RecommendPerDay: cfg.Quotas.RecommendPerDay,
		SentimentPerDay: cfg.Quotas.SentimentPerDay,
		MLPerDay:        cfg.Quotas.MLPerDay,
	})

	recommender := recommenduc.NewInstrumentedRecommender(
		recommenduc.New(tutorRepo, vectorspace.Config{
			MaxFeatures:    cfg.Recommender.MaxFeatures,
			MaxDocFraction: cfg.Recommender.MaxDocFraction,
		}),
		quotaSvc,
		logger,
	)

	catalogSvc := cataloguc.New(tutorRepo, reviewRepo, cfg.Recommender.MaxBatchSize)
	scorer := sentimentuc.NewService(reviewRepo)
	estimator := pricinguc.New(tutorRepo, pricinguc.Config{
		MinSamples: cfg.Pricing.MinSamples,
		MinRate:    cfg.Pricing.MinRate,
		MaxRate:    cfg.Pricing.MaxRate,
	})
	healthSvc := healthuc.New(store, tutorRepo, reviewRepo, quotaSvc)

	server := chiTransport.NewServer(
		recommender, catalogSvc, scorer, estimator, healthSvc, quotaSvc, logger,
	).WithMLRateLimit(cfg.RateLimit.RequestsPerMinute).
		WithRecommendLimits(cfg.Recommender.DefaultLimit, cfg.Recommender.MaxLimit)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Mount("/", server.Routes())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
