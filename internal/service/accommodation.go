package service

import "github.com/pkordes/itinerary-planner/internal/domain"

// AccommodationService is the repository for the accommodations of a trip.
type AccommodationService struct {
	*Collection[domain.Accommodation, domain.AccommodationPatch]
}

// NewAccommodationService constructs an AccommodationService persisting through trips.
func NewAccommodationService(trips *TripService) *AccommodationService {
	return &AccommodationService{&Collection[domain.Accommodation, domain.AccommodationPatch]{
		name:   "AccommodationService",
		kind:   domain.EntityAccommodation,
		prefix: prefixAccommodation,
		trips:  trips,
		items:  accommodationsOf,
		withID: func(a domain.Accommodation, id string) domain.Accommodation { a.ID = id; return a },
	}}
}
