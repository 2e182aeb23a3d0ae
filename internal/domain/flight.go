package domain

// Flight is a single flight leg booked for a trip.
// DepartureTime and ArrivalTime are ISO date-time strings ("2006-01-02T15:04:05").
type Flight struct {
	ID               string `json:"id" yaml:"id"`
	Airline          string `json:"airline" yaml:"airline"`
	FlightNumber     string `json:"flightNumber" yaml:"flightNumber"`
	DepartureCity    string `json:"departureCity" yaml:"departureCity"`
	DepartureAirport string `json:"departureAirport" yaml:"departureAirport"`
	DepartureTime    string `json:"departureTime" yaml:"departureTime"`
	ArrivalCity      string `json:"arrivalCity" yaml:"arrivalCity"`
	ArrivalAirport   string `json:"arrivalAirport" yaml:"arrivalAirport"`
	ArrivalTime      string `json:"arrivalTime" yaml:"arrivalTime"`
}

// RecordID implements Record.
func (f Flight) RecordID() string { return f.ID }

// Kind implements Record.
func (Flight) Kind() EntityType { return EntityFlight }

// FlightPatch is a partial update for a Flight.
type FlightPatch struct {
	Airline          *string `json:"airline,omitempty"`
	FlightNumber     *string `json:"flightNumber,omitempty"`
	DepartureCity    *string `json:"departureCity,omitempty"`
	DepartureAirport *string `json:"departureAirport,omitempty"`
	DepartureTime    *string `json:"departureTime,omitempty"`
	ArrivalCity      *string `json:"arrivalCity,omitempty"`
	ArrivalAirport   *string `json:"arrivalAirport,omitempty"`
	ArrivalTime      *string `json:"arrivalTime,omitempty"`
}

// Apply returns f with every non-nil field of p copied over it.
func (p FlightPatch) Apply(f Flight) Flight {
	setIf(&f.Airline, p.Airline)
	setIf(&f.FlightNumber, p.FlightNumber)
	setIf(&f.DepartureCity, p.DepartureCity)
	setIf(&f.DepartureAirport, p.DepartureAirport)
	setIf(&f.DepartureTime, p.DepartureTime)
	setIf(&f.ArrivalCity, p.ArrivalCity)
	setIf(&f.ArrivalAirport, p.ArrivalAirport)
	setIf(&f.ArrivalTime, p.ArrivalTime)
	return f
}
