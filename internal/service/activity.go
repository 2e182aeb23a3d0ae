package service

import (
	"context"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// ActivityService is the repository for the activities of a trip.
type ActivityService struct {
	*Collection[domain.Activity, domain.ActivityPatch]
}

// NewActivityService constructs an ActivityService persisting through trips.
func NewActivityService(trips *TripService) *ActivityService {
	return &ActivityService{&Collection[domain.Activity, domain.ActivityPatch]{
		name:   "ActivityService",
		kind:   domain.EntityActivity,
		prefix: prefixActivity,
		trips:  trips,
		items:  activitiesOf,
		withID: func(a domain.Activity, id string) domain.Activity { a.ID = id; return a },
	}}
}

// ListByDate returns the trip's activities on date.
func (s *ActivityService) ListByDate(ctx context.Context, tripID, date string) []domain.Activity {
	out := []domain.Activity{}
	for _, a := range s.List(ctx, tripID) {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// HasSchedulingConflict reports whether an activity at clock on date would
// clash with another activity of the trip, ignoring excludeID. See
// domain.ActivityConflicts for the matching rule. The result is advisory.
func (s *ActivityService) HasSchedulingConflict(ctx context.Context, tripID, date, clock, excludeID string) bool {
	return domain.ActivityConflicts(s.ListByDate(ctx, tripID, date), date, clock, excludeID)
}
