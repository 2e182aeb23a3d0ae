package domain

// ExportRow is a single row in the full itinerary export.
// It is a flat, denormalized view: one row per flight, accommodation or
// activity, with trip fields repeated on every row. Trips with nothing booked
// yield one row with an empty ItemType.
type ExportRow struct {
	// Trip fields, repeated for every item on the trip.
	TripID          string `json:"tripId"`
	TripName        string `json:"tripName"`
	TripDestination string `json:"tripDestination"`
	TripStartDate   string `json:"tripStartDate"`
	TripEndDate     string `json:"tripEndDate"`

	// Item fields, zero values when the trip has no items.
	ItemType EntityType `json:"itemType,omitempty"`
	ItemID   string     `json:"itemId,omitempty"`
	ItemName string     `json:"itemName,omitempty"`
	Location string     `json:"location,omitempty"`
	Start    string     `json:"start,omitempty"` // departure time, check-in date, or activity date + time
	End      string     `json:"end,omitempty"`   // arrival time or check-out date; empty for activities
	Notes    string     `json:"notes,omitempty"`
}

// ExportHeader names the columns of ExportRow.Record, in order.
var ExportHeader = []string{
	"trip_id", "trip_name", "trip_destination", "trip_start_date", "trip_end_date",
	"item_type", "item_id", "item_name", "location", "start", "end", "notes",
}

// Record returns the row as CSV fields matching ExportHeader.
func (r ExportRow) Record() []string {
	return []string{
		r.TripID, r.TripName, r.TripDestination, r.TripStartDate, r.TripEndDate,
		string(r.ItemType), r.ItemID, r.ItemName, r.Location, r.Start, r.End, r.Notes,
	}
}
