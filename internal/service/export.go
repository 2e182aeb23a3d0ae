package service

import (
	"context"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// ExportService assembles a flat export of every trip and its bookings.
type ExportService struct {
	trips *TripService
}

// NewExportService constructs an ExportService reading through trips.
func NewExportService(trips *TripService) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one row per flight, accommodation and activity across all
// trips, in stored order. Trips with nothing booked contribute one row with
// empty item fields.
func (s *ExportService) Export(ctx context.Context) []domain.ExportRow {
	rows := []domain.ExportRow{}
	for _, t := range s.trips.List(ctx) {
		base := domain.ExportRow{
			TripID:          t.ID,
			TripName:        t.Name,
			TripDestination: t.Destination,
			TripStartDate:   t.StartDate,
			TripEndDate:     t.EndDate,
		}
		n := len(rows)

		for _, f := range t.Flights {
			r := base
			r.ItemType = domain.EntityFlight
			r.ItemID = f.ID
			r.ItemName = f.Airline + " " + f.FlightNumber
			r.Location = f.DepartureAirport + " → " + f.ArrivalAirport
			r.Start = f.DepartureTime
			r.End = f.ArrivalTime
			rows = append(rows, r)
		}
		for _, a := range t.Accommodations {
			r := base
			r.ItemType = domain.EntityAccommodation
			r.ItemID = a.ID
			r.ItemName = a.Name
			r.Location = a.Address
			r.Start = a.CheckIn
			r.End = a.CheckOut
			r.Notes = a.Notes
			rows = append(rows, r)
		}
		for _, a := range t.Activities {
			r := base
			r.ItemType = domain.EntityActivity
			r.ItemID = a.ID
			r.ItemName = a.Name
			r.Location = a.Location
			r.Start = a.Date + " " + a.Time
			r.Notes = a.Notes
			rows = append(rows, r)
		}

		if len(rows) == n {
			rows = append(rows, base)
		}
	}
	return rows
}
