package service

import (
	"context"
	"math"
	"time"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// upcomingFlightWindow is how far ahead a flight counts as upcoming.
const upcomingFlightWindow = 30 * 24 * time.Hour

// StatsService computes dashboard totals.
type StatsService struct {
	trips *TripService
	now   func() time.Time
}

// NewStatsService constructs a StatsService reading through trips.
// Only WithClock is honoured among opts.
func NewStatsService(trips *TripService, opts ...Option) *StatsService {
	o := newOptions(opts)
	return &StatsService{trips: trips, now: o.now}
}

// Stats returns the totals across every stored trip.
// A trip is upcoming when it starts after now. Nights sum the whole days
// between check-in and check-out, rounded up.
func (s *StatsService) Stats(ctx context.Context) domain.Stats {
	now := s.now()
	horizon := now.Add(upcomingFlightWindow)
	locations := map[string]struct{}{}

	var st domain.Stats
	for _, t := range s.trips.List(ctx) {
		st.Trips++
		if start, ok := domain.ParseDate(t.StartDate); ok && start.After(now) {
			st.UpcomingTrips++
		}

		st.Flights += len(t.Flights)
		for _, f := range t.Flights {
			if dep, ok := parseDateTime(f.DepartureTime); ok && dep.After(now) && dep.Before(horizon) {
				st.UpcomingFlights++
			}
		}

		st.Accommodations += len(t.Accommodations)
		for _, a := range t.Accommodations {
			in, ok1 := domain.ParseDate(a.CheckIn)
			out, ok2 := domain.ParseDate(a.CheckOut)
			if ok1 && ok2 {
				st.Nights += int(math.Ceil(out.Sub(in).Hours() / 24))
			}
		}

		st.Activities += len(t.Activities)
		for _, a := range t.Activities {
			if a.Location != "" {
				locations[a.Location] = struct{}{}
			}
		}
	}
	st.ActivityLocations = len(locations)
	return st
}

// parseDateTime parses an ISO date-time without zone as UTC, falling back to
// a bare date.
func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return domain.ParseDate(s)
}
