package domain

// Activity is something planned on a given day of a trip.
// Date is a calendar date and Time is a 24h "15:04" time of day.
type Activity struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time" yaml:"time"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Cost     string `json:"cost,omitempty" yaml:"cost,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// RecordID implements Record.
func (a Activity) RecordID() string { return a.ID }

// Kind implements Record.
func (Activity) Kind() EntityType { return EntityActivity }

// ActivityPatch is a partial update for an Activity.
type ActivityPatch struct {
	Name     *string `json:"name,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Location *string `json:"location,omitempty"`
	Cost     *string `json:"cost,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Apply returns a with every non-nil field of p copied over it.
func (p ActivityPatch) Apply(a Activity) Activity {
	setIf(&a.Name, p.Name)
	setIf(&a.Date, p.Date)
	setIf(&a.Time, p.Time)
	setIf(&a.Duration, p.Duration)
	setIf(&a.Location, p.Location)
	setIf(&a.Cost, p.Cost)
	setIf(&a.Notes, p.Notes)
	return a
}
