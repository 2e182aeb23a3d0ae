package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/service"
	"github.com/pkordes/itinerary-planner/internal/store"
)

// fixedNow is the clock every test planner runs at.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// planner bundles every service over one shared store, the way main wires them.
type planner struct {
	store          service.Store
	history        *service.HistoryService
	trips          *service.TripService
	flights        *service.FlightService
	accommodations *service.AccommodationService
	activities     *service.ActivityService
}

func newPlanner(t *testing.T, st service.Store, extra ...service.Option) planner {
	t.Helper()
	if st == nil {
		st = store.New(store.NewMemory(), discardLogger())
	}
	opts := append([]service.Option{
		service.WithIDGenerator(service.NewSequenceGenerator()),
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLogger(discardLogger()),
	}, extra...)

	history := service.NewHistoryService(st, opts...)
	trips := service.NewTripService(st, history, opts...)
	return planner{
		store:          st,
		history:        history,
		trips:          trips,
		flights:        service.NewFlightService(trips),
		accommodations: service.NewAccommodationService(trips),
		activities:     service.NewActivityService(trips),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func tripFixture() domain.Trip {
	return domain.Trip{
		Name:        "Paris Getaway",
		Destination: "Paris, France",
		StartDate:   "2025-06-15",
		EndDate:     "2025-06-22",
		Description: "A week-long adventure in the City of Lights",
	}
}

func flightFixture() domain.Flight {
	return domain.Flight{
		Airline:          "Air France",
		FlightNumber:     "AF123",
		DepartureCity:    "New York",
		DepartureAirport: "JFK",
		DepartureTime:    "2025-06-15T08:00:00",
		ArrivalCity:      "Paris",
		ArrivalAirport:   "CDG",
		ArrivalTime:      "2025-06-15T20:00:00",
	}
}

func accommodationFixture() domain.Accommodation {
	return domain.Accommodation{
		Name:     "Le Grand Hotel",
		Type:     "Hotel",
		Location: "Paris, France",
		Address:  "123 Champs-Élysées, Paris, 75008",
		CheckIn:  "2025-06-15",
		CheckOut: "2025-06-22",
		Price:    "$200/night",
	}
}

func activityFixture() domain.Activity {
	return domain.Activity{
		Name:     "Eiffel Tower Visit",
		Date:     "2025-06-16",
		Time:     "10:00",
		Duration: "3 hours",
		Location: "Eiffel Tower, Paris",
	}
}

// mustCreateTrip creates a trip and returns it.
func mustCreateTrip(t *testing.T, p planner) domain.Trip {
	t.Helper()
	trip, err := p.trips.Create(context.Background(), tripFixture())
	require.NoError(t, err)
	return trip
}

// failingWrites wraps a Store and fails every trip write.
type failingWrites struct {
	service.Store
	err error
}

func (f failingWrites) WriteTrips(context.Context, []domain.Trip) error { return f.err }
