package handler

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

var (
	dateRule  = validation.Date(domain.DateLayout).Error("must be a date (YYYY-MM-DD)")
	clockRule = validation.Date("15:04").Error("must be a time of day (HH:MM)")
	dateTime  = validation.By(func(v any) error {
		s, _ := v.(string)
		if s == "" {
			return nil
		}
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339} {
			if _, err := time.Parse(layout, s); err == nil {
				return nil
			}
		}
		return errors.New("must be a date-time (YYYY-MM-DDTHH:MM)")
	})
)

// validateTrip checks a trip as it would be stored after a create or patch.
func validateTrip(t domain.Trip) error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.Destination, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.StartDate, validation.Required, dateRule),
		validation.Field(&t.EndDate, validation.Required, dateRule, validation.By(func(any) error {
			if _, ok := domain.ParseDate(t.StartDate); !ok {
				return nil
			}
			if !domain.ValidTripDates(t.StartDate, t.EndDate) {
				return errors.New("must not be before startDate")
			}
			return nil
		})),
	)
}

// validateFlight checks a flight against the trip it belongs to.
func validateFlight(f domain.Flight, trip domain.Trip) error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Airline, validation.Required),
		validation.Field(&f.FlightNumber, validation.Required),
		validation.Field(&f.DepartureCity, validation.Required),
		validation.Field(&f.DepartureAirport, validation.Required),
		validation.Field(&f.DepartureTime, validation.Required, dateTime, validation.By(func(any) error {
			if !domain.ValidFlightDate(trip.StartDate, trip.EndDate, f.DepartureTime) {
				return errors.New("must be within one day of the trip dates")
			}
			return nil
		})),
		validation.Field(&f.ArrivalCity, validation.Required),
		validation.Field(&f.ArrivalAirport, validation.Required),
		validation.Field(&f.ArrivalTime, validation.Required, dateTime),
	)
}

// validateAccommodation checks a stay against the trip it belongs to.
func validateAccommodation(a domain.Accommodation, trip domain.Trip) error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Location, validation.Required),
		validation.Field(&a.CheckIn, validation.Required, dateRule),
		validation.Field(&a.CheckOut, validation.Required, dateRule, validation.By(func(any) error {
			if _, ok := domain.ParseDate(a.CheckIn); !ok {
				return nil
			}
			if !domain.ValidAccommodationDates(trip.StartDate, trip.EndDate, a.CheckIn, a.CheckOut) {
				return errors.New("stay must fall within the trip dates and end after check-in")
			}
			return nil
		})),
	)
}

func validateActivity(a domain.Activity) error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Date, validation.Required, dateRule),
		validation.Field(&a.Time, validation.Required, clockRule),
	)
}
