package service

import "github.com/pkordes/itinerary-planner/internal/domain"

// FlightService is the repository for the flights of a trip.
type FlightService struct {
	*Collection[domain.Flight, domain.FlightPatch]
}

// NewFlightService constructs a FlightService persisting through trips.
func NewFlightService(trips *TripService) *FlightService {
	return &FlightService{&Collection[domain.Flight, domain.FlightPatch]{
		name:   "FlightService",
		kind:   domain.EntityFlight,
		prefix: prefixFlight,
		trips:  trips,
		items:  flightsOf,
		withID: func(f domain.Flight, id string) domain.Flight { f.ID = id; return f },
	}}
}
