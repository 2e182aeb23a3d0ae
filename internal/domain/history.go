package domain

import (
	"encoding/json"
	"fmt"
)

// ActionType is the kind of mutation a history entry records.
type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// EntityType names the record shape carried by a history entry.
type EntityType string

const (
	EntityTrip          EntityType = "TRIP"
	EntityFlight        EntityType = "FLIGHT"
	EntityAccommodation EntityType = "ACCOMMODATION"
	EntityActivity      EntityType = "ACTIVITY"
)

// Record is the closed set of entity shapes a history entry can snapshot:
// Trip, Flight, Accommodation and Activity.
type Record interface {
	RecordID() string
	Kind() EntityType
}

// HistoryEntry records a single mutation so that it can be undone.
//
// PreviousState is nil for CREATE and CurrentState is nil for DELETE; UPDATE
// carries both. When set, both hold the concrete type matching EntityType.
// Timestamp is in Unix milliseconds.
type HistoryEntry struct {
	ID            string
	Timestamp     int64
	ActionType    ActionType
	EntityType    EntityType
	EntityID      string
	TripID        string
	PreviousState Record
	CurrentState  Record
}

// historyWire is the persisted JSON shape of a HistoryEntry.
type historyWire struct {
	ID            string          `json:"id"`
	Timestamp     int64           `json:"timestamp"`
	ActionType    ActionType      `json:"actionType"`
	EntityType    EntityType      `json:"entityType"`
	EntityID      string          `json:"entityId"`
	TripID        string          `json:"tripId"`
	PreviousState json.RawMessage `json:"previousState"`
	CurrentState  json.RawMessage `json:"currentState"`
}

// MarshalJSON writes the entry with null for an absent state.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	prev, err := marshalRecord(e.PreviousState)
	if err != nil {
		return nil, fmt.Errorf("previousState: %w", err)
	}
	cur, err := marshalRecord(e.CurrentState)
	if err != nil {
		return nil, fmt.Errorf("currentState: %w", err)
	}
	return json.Marshal(historyWire{
		ID:            e.ID,
		Timestamp:     e.Timestamp,
		ActionType:    e.ActionType,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		TripID:        e.TripID,
		PreviousState: prev,
		CurrentState:  cur,
	})
}

// UnmarshalJSON decodes the state payloads into the concrete type selected by
// entityType. An unknown entity type is an error.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var w historyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	prev, err := DecodeRecord(w.EntityType, w.PreviousState)
	if err != nil {
		return fmt.Errorf("previousState: %w", err)
	}
	cur, err := DecodeRecord(w.EntityType, w.CurrentState)
	if err != nil {
		return fmt.Errorf("currentState: %w", err)
	}
	*e = HistoryEntry{
		ID:            w.ID,
		Timestamp:     w.Timestamp,
		ActionType:    w.ActionType,
		EntityType:    w.EntityType,
		EntityID:      w.EntityID,
		TripID:        w.TripID,
		PreviousState: prev,
		CurrentState:  cur,
	}
	return nil
}

func marshalRecord(r Record) (json.RawMessage, error) {
	if r == nil {
		return json.RawMessage("null"), nil
	}
	return json.Marshal(r)
}

// DecodeRecord decodes raw into the Record type for kind.
// Empty input and JSON null decode to a nil Record.
func DecodeRecord(kind EntityType, raw json.RawMessage) (Record, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch kind {
	case EntityTrip:
		return decodeAs[Trip](raw)
	case EntityFlight:
		return decodeAs[Flight](raw)
	case EntityAccommodation:
		return decodeAs[Accommodation](raw)
	case EntityActivity:
		return decodeAs[Activity](raw)
	default:
		return nil, fmt.Errorf("unknown entity type %q", kind)
	}
}

func decodeAs[T Record](raw json.RawMessage) (Record, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
