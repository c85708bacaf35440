// Package main is the entrypoint for the Smart Hire API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/smarthire/backend/internal/api"
	"github.com/smarthire/backend/internal/api/handler"
	mw "github.com/smarthire/backend/internal/api/middleware"
	"github.com/smarthire/backend/internal/api/response"
	"github.com/smarthire/backend/internal/cache"
	"github.com/smarthire/backend/internal/config"
	"github.com/smarthire/backend/internal/inference"
	"github.com/smarthire/backend/internal/report"
	"github.com/smarthire/backend/internal/store"
	"github.com/unidoc/unipdf/v3/common/license"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "env", cfg.Server.Env, "model_path", cfg.Model.ModelPath)

	if cfg.Model.LicenseKey != "" {
		if err := license.SetMeteredKey(cfg.Model.LicenseKey); err != nil {
			return fmt.Errorf("set pdf license key: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to database
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	// 3. Run migrations
	if err := store.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// 4. Create Redis cache
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis cache: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 5. Load the trained model and scaler; both are immutable after this point
	model, err := inference.LoadModel(cfg.Model.ModelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	scaler, err := inference.LoadScaler(cfg.Model.ScalerPath)
	if err != nil {
		return fmt.Errorf("load scaler: %w", err)
	}
	svc, err := inference.NewService(model, scaler)
	if err != nil {
		return fmt.Errorf("create inference service: %w", err)
	}
	slog.Info("model loaded", "features", len(model.Coefficients))

	// 6. Create store and report renderer
	pgStore := store.NewPostgresStore(pool)

	renderer, err := report.NewRenderer(cfg.Reports.Dir)
	if err != nil {
		return fmt.Errorf("create report renderer: %w", err)
	}

	// 7. Build router with dependencies
	deps := api.Dependencies{
		RateLimit: mw.NewRateLimit(redisCache, cfg.Server.RateLimitPerMin),

		HealthHandler:      healthHandler(pgStore, redisCache),
		PredictHandler:     handler.NewPredictHandler(svc, pgStore),
		HistoryHandler:     handler.NewHistoryHandler(pgStore),
		GeneratePDFHandler: handler.NewGeneratePDFHandler(pgStore, renderer),
		ServeReportHandler: handler.NewServeReportHandler(renderer.Dir()),
		ContactHandler:     handler.NewContactHandler(pgStore),
	}

	router := api.NewRouter(deps)

	// 8. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks database and cache connectivity.
func healthHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}

		if err := s.Ping(r.Context()); err != nil {
			checks["database"] = "degraded"
		}
		if err := c.Ping(r.Context()); err != nil {
			checks["cache"] = "degraded"
		}

		if checks["database"] != "ok" || checks["cache"] != "ok" {
			response.Status(w, http.StatusServiceUnavailable, map[string]any{
				"status":   "degraded",
				"services": checks,
			})
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"services": checks,
		})
	}
}
