package cli

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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadex-io/acadex/internal/config"
	logpkg "github.com/acadex-io/acadex/internal/logger"
	"github.com/acadex-io/acadex/internal/metrics"
	"github.com/acadex-io/acadex/internal/repository/corpus"
	"github.com/acadex-io/acadex/internal/transport/httpapi"
	openaiTransport "github.com/acadex-io/acadex/internal/transport/openai"
	extractuc "github.com/acadex-io/acadex/internal/usecase/extract"
	healthuc "github.com/acadex-io/acadex/internal/usecase/health"
	intentuc "github.com/acadex-io/acadex/internal/usecase/intent"
	"github.com/acadex-io/acadex/internal/usecase/pipeline"
	"github.com/acadex-io/acadex/internal/usecase/respond"
	"github.com/acadex-io/acadex/internal/usecase/retrieval"
	verifyuc "github.com/acadex-io/acadex/internal/usecase/verify"
	"github.com/acadex-io/acadex/internal/version"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve starts the advisory HTTP API: query answering, raw
document search, corpus appends, health, and Prometheus metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	env := config.GetEnv()

	var cfg config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting acadex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_path", cfg.Corpus.Path),
	)

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	repo, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	docCount, _ := repo.Len(context.Background())
	logger.Info("Corpus loaded", zap.Int("documents", docCount))

	searchSvc := retrieval.New(repo)

	// Answer polisher is optional; the pipeline renders templated
	// answers without it.
	var polisher respond.Polisher
	var polisherCheck healthuc.PolisherChecker
	if cfg.Polish.Enabled {
		p, err := openaiTransport.NewPolisher(&openaiTransport.Config{
			APIKey:     cfg.Polish.APIKey,
			BaseURL:    cfg.Polish.BaseURL,
			Model:      cfg.Polish.Model,
			MaxTokens:  cfg.Polish.MaxTokens,
			TimeoutSec: cfg.Polish.TimeoutSec,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("create polisher: %w", err)
		}
		polisher = p
		polisherCheck = p
		logger.Info("Answer polisher enabled", zap.String("model", cfg.Polish.Model))
	}

	pipe := pipeline.New(
		intentuc.New(),
		searchSvc,
		extractuc.New(),
		verifyuc.New(),
		respond.New(polisher),
	).
		WithTopK(cfg.Retrieval.TopK).
		WithHistoryLimit(cfg.Pipeline.HistoryLimit)
	if cfg.Pipeline.CacheTTLSec > 0 {
		pipe = pipe.WithCache(time.Duration(cfg.Pipeline.CacheTTLSec) * time.Second)
	}

	healthSvc := healthuc.New(repo, polisherCheck)

	server := httpapi.NewServer(pipe, searchSvc, repo, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(httpapi.BearerAuthMiddleware(cfg.Auth.APIKeys))
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
	return nil
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

			requestID := chiMiddleware.GetReqID(r.Context())
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
