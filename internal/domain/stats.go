package domain

// Stats are the dashboard totals across every stored trip.
type Stats struct {
	Trips             int `json:"trips"`
	UpcomingTrips     int `json:"upcomingTrips"`
	Flights           int `json:"flights"`
	UpcomingFlights   int `json:"upcomingFlights"` // departing within the next 30 days
	Accommodations    int `json:"accommodations"`
	Nights            int `json:"nights"`
	Activities        int `json:"activities"`
	ActivityLocations int `json:"activityLocations"` // distinct non-empty locations
}
