// Package domain contains the core data types for the itinerary planner.
// This package has no I/O and is imported by every other internal package
// (store, service, handler).
package domain

// Trip is the top-level aggregate. Flights, accommodations and activities are
// stored nested inside the trip record they belong to.
//
// StartDate and EndDate are calendar dates in "2006-01-02" form. EndDate on or
// after StartDate is checked by callers, not by the repositories.
type Trip struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Destination    string          `json:"destination" yaml:"destination"`
	StartDate      string          `json:"startDate" yaml:"startDate"`
	EndDate        string          `json:"endDate" yaml:"endDate"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Flights        []Flight        `json:"flights" yaml:"flights"`
	Accommodations []Accommodation `json:"accommodations" yaml:"accommodations"`
	Activities     []Activity      `json:"activities" yaml:"activities"`
}

// RecordID implements Record.
func (t Trip) RecordID() string { return t.ID }

// Kind implements Record.
func (Trip) Kind() EntityType { return EntityTrip }

// TripPatch is a partial update for a Trip. Nil fields keep their prior value.
// The id and the nested collections cannot be patched.
type TripPatch struct {
	Name        *string `json:"name,omitempty"`
	Destination *string `json:"destination,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// Apply returns t with every non-nil field of p copied over it.
func (p TripPatch) Apply(t Trip) Trip {
	setIf(&t.Name, p.Name)
	setIf(&t.Destination, p.Destination)
	setIf(&t.StartDate, p.StartDate)
	setIf(&t.EndDate, p.EndDate)
	setIf(&t.Description, p.Description)
	setIf(&t.ImageURL, p.ImageURL)
	return t
}

// setIf overwrites *dst with *src when src is non-nil.
func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
