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

	"github.com/calcportal/searchd/internal/config"
	logpkg "github.com/calcportal/searchd/internal/logger"
	"github.com/calcportal/searchd/internal/metrics"
	"github.com/calcportal/searchd/internal/repository/content"
	"github.com/calcportal/searchd/internal/synonym"
	chiTransport "github.com/calcportal/searchd/internal/transport/chi"
	corpusuc "github.com/calcportal/searchd/internal/usecase/corpus"
	healthuc "github.com/calcportal/searchd/internal/usecase/health"
	searchuc "github.com/calcportal/searchd/internal/usecase/search"
	"github.com/calcportal/searchd/internal/version"

	"github.com/calcportal/searchd/internal/domain"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting searchd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("content_source", cfg.Content.Source),
	)

	// Create content store based on source
	ctx := context.Background()
	store, err := newContentStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create content store", zap.Error(err))
	}

	// Synonym table: embedded default unless an external file is configured
	synonyms, err := loadSynonyms(cfg.Search.SynonymsPath)
	if err != nil {
		logger.Fatal("Failed to load synonym table", zap.Error(err))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create use case services
	corpusSvc := corpusuc.New(store, store, store, logger)
	searchSvc := searchuc.New(corpusSvc, synonyms).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.MaxLimit).
		WithDefaultLocale(domain.Locale(cfg.Search.DefaultLocale))
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
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

// newContentStore builds the configured content backend and waits for it to
// become reachable.
func newContentStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (content.Store, error) {
	switch cfg.Content.Source {
	case "file":
		store := content.NewFileStore(cfg.Content.Dir)
		if err := store.Ping(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using file content store", zap.String("dir", cfg.Content.Dir))
		return store, nil
	case "redis":
		store, err := content.NewRedisStore(content.RedisConfig{
			Addrs:     cfg.Content.Redis.Addrs,
			Username:  cfg.Content.Redis.Username,
			Password:  cfg.Content.Redis.Password,
			DB:        cfg.Content.Redis.DB,
			KeyPrefix: cfg.Content.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		timeout := time.Duration(cfg.Content.Redis.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			return nil, err
		}
		logger.Info("Using redis content store", zap.Strings("addrs", cfg.Content.Redis.Addrs))
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownContentSource, cfg.Content.Source)
	}
}

func loadSynonyms(path string) (*synonym.Table, error) {
	if path == "" {
		return synonym.Default()
	}
	return synonym.LoadFile(path)
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
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
