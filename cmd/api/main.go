// Package main is the entry point for the itinerary API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/itinerary-planner/internal/app"
	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/middleware"
)

// writeQueueTimeout bounds how long a mutating request waits for its turn.
const writeQueueTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("store close failed", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg, logger, a.HandlerDeps()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + writeQueueTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	// Graceful shutdown: wait for a signal or a failed listener, then give
	// in-flight requests up to 15 seconds to complete.
	g.Go(func() error {
		sigCtx, stop := signal.NotifyContext(gCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-sigCtx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newRouter applies the middleware stack in order: RequestID, RealIP,
// request logging, Recoverer, CORS, body limit, write serialization.
func newRouter(cfg config.Config, logger *slog.Logger, deps handler.Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewWriteSerializer(cfg.SerializeWrites, writeQueueTimeout))

	r.Mount("/", handler.NewServer(deps).Routes())
	return r
}
