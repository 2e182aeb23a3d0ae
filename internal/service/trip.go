package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// TripService is the trip repository. It owns the stored trip list, seeds it
// on first use and is the only writer of trips for the nested entity
// services. Every mutation rewrites the whole list.
type TripService struct {
	store   Store
	history *HistoryService
	opts    options
}

// NewTripService constructs a TripService backed by st that records its
// mutations in history.
func NewTripService(st Store, history *HistoryService, opts ...Option) *TripService {
	return &TripService{store: st, history: history, opts: newOptions(opts)}
}

// List returns all trips in insertion order, seeding the store on first use.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) []domain.Trip {
	if err := s.store.InitTrips(ctx, s.opts.seed); err != nil {
		s.opts.log.WarnContext(ctx, "trip seeding failed", slog.String("error", err.Error()))
	}
	return s.store.ReadTrips(ctx)
}

// ListPaged returns one page of List and the total number of trips.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int) {
	trips := s.List(ctx)
	lo, hi := p.Bounds(len(trips))
	return trips[lo:hi], len(trips)
}

// GetByID returns a single trip.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trips := s.List(ctx)
	idx := indexTrip(trips, id)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrNotFound)
	}
	return trips[idx], nil
}

// Create stores a new trip with a generated id and empty flight,
// accommodation and activity lists, whatever trip carried.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trips := s.List(ctx)

	trip.ID = s.opts.ids.NewID(prefixTrip)
	trip.Flights = []domain.Flight{}
	trip.Accommodations = []domain.Accommodation{}
	trip.Activities = []domain.Activity{}

	if err := s.store.WriteTrips(ctx, append(trips, trip)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	s.history.record(ctx, domain.ActionCreate, domain.EntityTrip, trip.ID, trip.ID, nil, trip)
	return trip, nil
}

// Update shallow-merges patch onto an existing trip.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Update(ctx context.Context, id string, patch domain.TripPatch) (domain.Trip, error) {
	trips := s.List(ctx)
	idx := indexTrip(trips, id)
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", domain.ErrNotFound)
	}

	prev := trips[idx]
	updated := patch.Apply(prev)
	trips[idx] = updated

	if err := s.store.WriteTrips(ctx, trips); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	s.history.record(ctx, domain.ActionUpdate, domain.EntityTrip, id, id, prev, updated)
	return updated, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Delete(ctx context.Context, id string) error {
	trips := s.List(ctx)
	idx := indexTrip(trips, id)
	if idx < 0 {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrNotFound)
	}

	removed := trips[idx]
	if err := s.store.WriteTrips(ctx, slices.Delete(trips, idx, idx+1)); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}

	s.history.record(ctx, domain.ActionDelete, domain.EntityTrip, id, id, removed, nil)
	return nil
}

// save replaces the stored trip with the same ID without recording history.
// Nested entity services persist through it and record their own entry.
func (s *TripService) save(ctx context.Context, trip domain.Trip) error {
	trips := s.List(ctx)
	idx := indexTrip(trips, trip.ID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	trips[idx] = trip
	return s.store.WriteTrips(ctx, trips)
}

func indexTrip(trips []domain.Trip, id string) int {
	return slices.IndexFunc(trips, func(t domain.Trip) bool { return t.ID == id })
}
