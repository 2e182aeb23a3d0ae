// Package handler implements the JSON HTTP API over the itinerary services.
// All handlers are methods on Server (or on the nested-collection handlers it
// builds). Methods are split into domain-specific files but share the same
// Server so they can reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage.
type TripServicer interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// NestedServicer is the repository contract shared by flights,
// accommodations and activities.
type NestedServicer[T any, P any] interface {
	List(ctx context.Context, tripID string) []T
	GetByID(ctx context.Context, tripID, id string) (T, error)
	Add(ctx context.Context, tripID string, item T) (T, error)
	Update(ctx context.Context, tripID, id string, patch P) (T, error)
	Delete(ctx context.Context, tripID, id string) error
}

// ActivityServicer adds the day view and the conflict check to the activity repository.
type ActivityServicer interface {
	NestedServicer[domain.Activity, domain.ActivityPatch]
	ListByDate(ctx context.Context, tripID, date string) []domain.Activity
	HasSchedulingConflict(ctx context.Context, tripID, date, clock, excludeID string) bool
}

// HistoryServicer defines the history log operations the handlers depend on.
type HistoryServicer interface {
	List(ctx context.Context) []domain.HistoryEntry
	Latest(ctx context.Context) (domain.HistoryEntry, error)
	Remove(ctx context.Context, id string) error
	Undo(ctx context.Context) (domain.HistoryEntry, error)
}

// Exporter defines the export operation the handlers depend on.
type Exporter interface {
	Export(ctx context.Context) []domain.ExportRow
}

// StatsProvider defines the dashboard totals the handlers depend on.
type StatsProvider interface {
	Stats(ctx context.Context) domain.Stats
}

// Deps bundles the services a Server is built from. Nil members leave their
// routes unmounted.
type Deps struct {
	Trips          TripServicer
	Flights        NestedServicer[domain.Flight, domain.FlightPatch]
	Accommodations NestedServicer[domain.Accommodation, domain.AccommodationPatch]
	Activities     ActivityServicer
	History        HistoryServicer
	Export         Exporter
	Stats          StatsProvider

	// OpenAPI is served verbatim at /openapi.yaml when non-empty.
	OpenAPI []byte

	Log *slog.Logger
}

// Server holds the dependencies of every handler.
type Server struct {
	Deps
}

// NewServer constructs the Server with all its dependencies.
func NewServer(deps Deps) *Server {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Server{Deps: deps}
}

// Routes returns a chi router with every API route mounted.
// Cross-cutting middleware (request id, logging, CORS, limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	if len(s.OpenAPI) > 0 {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	if s.Trips != nil {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Patch("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)

				if s.Flights != nil {
					r.Route("/flights", s.flightRoutes)
				}
				if s.Accommodations != nil {
					r.Route("/accommodations", s.accommodationRoutes)
				}
				if s.Activities != nil {
					r.Route("/activities", s.activityRoutes)
				}
			})
		})
	}

	if s.History != nil {
		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.ListHistory)
			r.Get("/latest", s.LatestHistory)
			r.Post("/undo", s.Undo)
			r.Delete("/{entryID}", s.DeleteHistoryEntry)
		})
	}
	if s.Export != nil {
		r.Get("/export", s.GetExport)
	}
	if s.Stats != nil {
		r.Get("/stats", s.GetStats)
	}
	return r
}
