// Package app wires configuration, storage and services together. The HTTP
// server and the CLI both build their dependencies through New.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/service"
	"github.com/pkordes/itinerary-planner/internal/store"
	"github.com/pkordes/itinerary-planner/seed"
	"github.com/pkordes/itinerary-planner/spec"
)

// File names used inside STORE_PATH by the single-file backends.
const (
	boltFile   = "itinerary.bolt"
	sqliteFile = "itinerary.sqlite"
)

// App holds every service over one shared store.
type App struct {
	Store          *store.Store
	History        *service.HistoryService
	Trips          *service.TripService
	Flights        *service.FlightService
	Accommodations *service.AccommodationService
	Activities     *service.ActivityService
	Export         *service.ExportService
	Stats          *service.StatsService

	log *slog.Logger
}

// New opens the configured backend and builds the services. extra options
// are applied after the ones derived from cfg.
func New(ctx context.Context, cfg config.Config, log *slog.Logger, extra ...service.Option) (*App, error) {
	kv, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var trips []domain.Trip
	if cfg.SeedTrips {
		if trips, err = loadSeed(cfg.SeedFile); err != nil {
			_ = kv.Close()
			return nil, err
		}
	}

	opts := append([]service.Option{
		service.WithLogger(log),
		service.WithHistoryLimit(cfg.HistoryLimit),
		service.WithSeed(trips),
	}, extra...)

	st := store.New(kv, log)
	history := service.NewHistoryService(st, opts...)
	tripSvc := service.NewTripService(st, history, opts...)

	log.Info("store opened",
		slog.String("driver", cfg.StoreDriver),
		slog.Int("history_limit", cfg.HistoryLimit),
		slog.Int("seed_trips", len(trips)))

	return &App{
		Store:          st,
		History:        history,
		Trips:          tripSvc,
		Flights:        service.NewFlightService(tripSvc),
		Accommodations: service.NewAccommodationService(tripSvc),
		Activities:     service.NewActivityService(tripSvc),
		Export:         service.NewExportService(tripSvc),
		Stats:          service.NewStatsService(tripSvc, opts...),
		log:            log,
	}, nil
}

// OpenKV opens the key-value backend named by cfg.StoreDriver.
func OpenKV(ctx context.Context, cfg config.Config) (store.KV, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemory(), nil
	case config.DriverFile:
		return store.NewFile(cfg.StorePath)
	case config.DriverBolt:
		if err := os.MkdirAll(cfg.StorePath, 0o755); err != nil {
			return nil, fmt.Errorf("app: create store dir: %w", err)
		}
		return store.NewBolt(filepath.Join(cfg.StorePath, boltFile))
	case config.DriverSQLite:
		if err := os.MkdirAll(cfg.StorePath, 0o755); err != nil {
			return nil, fmt.Errorf("app: create store dir: %w", err)
		}
		return store.NewSQLite(filepath.Join(cfg.StorePath, sqliteFile))
	case config.DriverPostgres:
		return store.OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("app: unknown store driver %q", cfg.StoreDriver)
	}
}

func loadSeed(path string) ([]domain.Trip, error) {
	if path != "" {
		return seed.Load(path)
	}
	return seed.Trips()
}

// HandlerDeps returns the dependencies of the HTTP handlers.
func (a *App) HandlerDeps() handler.Deps {
	return handler.Deps{
		Trips:          a.Trips,
		Flights:        a.Flights,
		Accommodations: a.Accommodations,
		Activities:     a.Activities,
		History:        a.History,
		Export:         a.Export,
		Stats:          a.Stats,
		OpenAPI:        spec.OpenAPI,
		Log:            a.log,
	}
}

// Close releases the backend.
func (a *App) Close() error {
	return a.Store.Close()
}
