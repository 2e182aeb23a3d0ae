package domain

// Accommodation is a stay booked for a trip. CheckIn and CheckOut are
// calendar dates. Price and Notes are free text and optional.
type Accommodation struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Location string `json:"location" yaml:"location"`
	Address  string `json:"address" yaml:"address"`
	CheckIn  string `json:"checkIn" yaml:"checkIn"`
	CheckOut string `json:"checkOut" yaml:"checkOut"`
	Price    string `json:"price,omitempty" yaml:"price,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// RecordID implements Record.
func (a Accommodation) RecordID() string { return a.ID }

// Kind implements Record.
func (Accommodation) Kind() EntityType { return EntityAccommodation }

// AccommodationPatch is a partial update for an Accommodation.
type AccommodationPatch struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	Location *string `json:"location,omitempty"`
	Address  *string `json:"address,omitempty"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Price    *string `json:"price,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Apply returns a with every non-nil field of p copied over it.
func (p AccommodationPatch) Apply(a Accommodation) Accommodation {
	setIf(&a.Name, p.Name)
	setIf(&a.Type, p.Type)
	setIf(&a.Location, p.Location)
	setIf(&a.Address, p.Address)
	setIf(&a.CheckIn, p.CheckIn)
	setIf(&a.CheckOut, p.CheckOut)
	setIf(&a.Price, p.Price)
	setIf(&a.Notes, p.Notes)
	return a
}
