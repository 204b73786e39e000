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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/catalog"
	"github.com/kailas-cloud/shopbot/internal/config"
	"github.com/kailas-cloud/shopbot/internal/db"
	dbRedis "github.com/kailas-cloud/shopbot/internal/db/redis"
	"github.com/kailas-cloud/shopbot/internal/domain"
	logpkg "github.com/kailas-cloud/shopbot/internal/logger"
	"github.com/kailas-cloud/shopbot/internal/metrics"
	"github.com/kailas-cloud/shopbot/internal/repository/embcache"
	chiTransport "github.com/kailas-cloud/shopbot/internal/transport/chi"
	openaiAPI "github.com/kailas-cloud/shopbot/internal/transport/openai"
	filteruc "github.com/kailas-cloud/shopbot/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/shopbot/internal/usecase/health"
	intentuc "github.com/kailas-cloud/shopbot/internal/usecase/intent"
	searchuc "github.com/kailas-cloud/shopbot/internal/usecase/search"
	"github.com/kailas-cloud/shopbot/internal/version"
)

func main() {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shopbot API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.Bool("search_enabled", cfg.Search.Enabled),
	)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load product catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("products", cat.Len()),
		zap.String("fingerprint", cat.Fingerprint()),
	)

	// Optional embedding cache store
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to embedding cache store", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Register model API metrics explicitly (no init())
	metrics.RegisterModelMetrics()

	embedder := buildEmbedder(cfg, store, logger)
	logger.Info("Embedder created",
		zap.String("model", cfg.LLM.EmbeddingModel),
		zap.Int("dimensions", cfg.LLM.Dimensions),
	)

	chatModel := openaiAPI.NewChatModel(&openaiAPI.Config{
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.ChatModel,
		Provider: "openrouter",
		Timeout:  time.Duration(cfg.LLM.TimeoutSec) * time.Second,
		Logger:   logger,
	})

	// Semantic matcher is optional; without it intents carry no match list.
	var matcher intentuc.Matcher
	if cfg.Search.Enabled {
		matcher = searchuc.New(embedder, cat, searchuc.NewVectorCache(), logger)
	}

	intentSvc := intentuc.New(chatModel, matcher, cfg.Search.TopK, logger)
	filterSvc := filteruc.New()

	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, newModelHealthChecker(embedder), cat.Len())

	server := chiTransport.NewServer(intentSvc, filterSvc, cat, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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

// modelHealthChecker wraps domain.Embedder to implement health.ModelChecker.
type modelHealthChecker struct {
	embedder domain.Embedder
}

func newModelHealthChecker(embedder domain.Embedder) *modelHealthChecker {
	return &modelHealthChecker{embedder: embedder}
}

func (h *modelHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.embedder.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("model health check: %w", err)
		}
	}
	return nil
}

// buildEmbedder assembles the decorator chain: OpenAI -> Cached
func buildEmbedder(cfg config.Config, store db.Store, logger *zap.Logger) domain.Embedder {
	// Base provider (with transport metrics built-in)
	base := openaiAPI.NewEmbedder(&openaiAPI.Config{
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		Model:      cfg.LLM.EmbeddingModel,
		Dimensions: cfg.LLM.Dimensions,
		Provider:   "openrouter",
		Timeout:    time.Duration(cfg.LLM.TimeoutSec) * time.Second,
		Logger:     logger,
	})

	if store == nil {
		return base
	}
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	return embcache.New(base, store, ttl, metrics.EmbeddingCacheTotal, logger)
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
						"error": "Failed to process message",
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
