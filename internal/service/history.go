package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// HistoryService owns the history log: a most-recent-first list capped at a
// fixed number of entries. Undo replays the latest entry against the trip
// list and then consumes it. Undo itself is not recorded.
type HistoryService struct {
	store Store
	opts  options
}

// NewHistoryService constructs a HistoryService backed by st.
func NewHistoryService(st Store, opts ...Option) *HistoryService {
	return &HistoryService{store: st, opts: newOptions(opts)}
}

// List returns every entry, most recent first.
func (h *HistoryService) List(ctx context.Context) []domain.HistoryEntry {
	return h.store.ReadHistory(ctx)
}

// Append records a mutation at the head of the log. When the log is full the
// oldest entries are dropped first.
func (h *HistoryService) Append(
	ctx context.Context,
	action domain.ActionType,
	kind domain.EntityType,
	entityID, tripID string,
	prev, cur domain.Record,
) (domain.HistoryEntry, error) {
	history := h.store.ReadHistory(ctx)
	if len(history) >= h.opts.historyLimit {
		history = history[:h.opts.historyLimit-1]
	}

	entry := domain.HistoryEntry{
		ID:            h.opts.ids.NewID(prefixHistory),
		Timestamp:     h.opts.now().UnixMilli(),
		ActionType:    action,
		EntityType:    kind,
		EntityID:      entityID,
		TripID:        tripID,
		PreviousState: prev,
		CurrentState:  cur,
	}

	if err := h.store.WriteHistory(ctx, append([]domain.HistoryEntry{entry}, history...)); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("service.HistoryService.Append: %w", err)
	}
	return entry, nil
}

// record appends an entry for a mutation that has already been persisted.
// A failure is logged rather than returned: the mutation stands either way.
func (h *HistoryService) record(
	ctx context.Context,
	action domain.ActionType,
	kind domain.EntityType,
	entityID, tripID string,
	prev, cur domain.Record,
) {
	if _, err := h.Append(ctx, action, kind, entityID, tripID, prev, cur); err != nil {
		h.opts.log.ErrorContext(ctx, "history append failed",
			slog.String("action", string(action)),
			slog.String("entity_type", string(kind)),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()))
	}
}

// Latest returns the head of the log, or domain.ErrNothingToUndo.
func (h *HistoryService) Latest(ctx context.Context) (domain.HistoryEntry, error) {
	history := h.store.ReadHistory(ctx)
	if len(history) == 0 {
		return domain.HistoryEntry{}, domain.ErrNothingToUndo
	}
	return history[0], nil
}

// Remove deletes the entry with the given id.
// Returns domain.ErrNotFound if no such entry exists.
func (h *HistoryService) Remove(ctx context.Context, id string) error {
	history := h.store.ReadHistory(ctx)
	kept := slices.DeleteFunc(slices.Clone(history), func(e domain.HistoryEntry) bool { return e.ID == id })
	if len(kept) == len(history) {
		return fmt.Errorf("service.HistoryService.Remove: %w", domain.ErrNotFound)
	}
	if err := h.store.WriteHistory(ctx, kept); err != nil {
		return fmt.Errorf("service.HistoryService.Remove: %w", err)
	}
	return nil
}

// Undo reverses the latest entry and removes it from the log, returning the
// consumed entry. Returns domain.ErrNothingToUndo on an empty log and a
// wrapped domain.ErrNotFound when the trip or item the entry refers to is
// gone. A failed replay leaves the entry in the log.
func (h *HistoryService) Undo(ctx context.Context) (domain.HistoryEntry, error) {
	entry, err := h.Latest(ctx)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	trips, err := replay(h.store.ReadTrips(ctx), entry)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("service.HistoryService.Undo: %s %s %s: %w",
			entry.ActionType, entry.EntityType, entry.EntityID, err)
	}
	if err := h.store.WriteTrips(ctx, trips); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("service.HistoryService.Undo: %w", err)
	}
	if err := h.Remove(ctx, entry.ID); err != nil {
		return domain.HistoryEntry{}, err
	}

	h.opts.log.InfoContext(ctx, "undo applied",
		slog.String("action", string(entry.ActionType)),
		slog.String("entity_type", string(entry.EntityType)),
		slog.String("entity_id", entry.EntityID))
	return entry, nil
}

// errMalformedEntry is returned when an entry's state does not match its
// action and entity type.
var errMalformedEntry = errors.New("malformed history entry")

// replay returns trips with the effect of e reversed.
func replay(trips []domain.Trip, e domain.HistoryEntry) ([]domain.Trip, error) {
	switch e.EntityType {
	case domain.EntityTrip:
		return replayTrip(trips, e)
	case domain.EntityFlight:
		return replayNested(trips, e, flightsOf)
	case domain.EntityAccommodation:
		return replayNested(trips, e, accommodationsOf)
	case domain.EntityActivity:
		return replayNested(trips, e, activitiesOf)
	default:
		return nil, fmt.Errorf("%w: entity type %q", errMalformedEntry, e.EntityType)
	}
}

func replayTrip(trips []domain.Trip, e domain.HistoryEntry) ([]domain.Trip, error) {
	idx := slices.IndexFunc(trips, func(t domain.Trip) bool { return t.ID == e.EntityID })

	switch e.ActionType {
	case domain.ActionDelete:
		prev, err := stateAs[domain.Trip](e.PreviousState)
		if err != nil {
			return nil, err
		}
		return append(trips, prev), nil
	case domain.ActionUpdate:
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		prev, err := stateAs[domain.Trip](e.PreviousState)
		if err != nil {
			return nil, err
		}
		trips[idx] = prev
		return trips, nil
	case domain.ActionCreate:
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return slices.DeleteFunc(trips, func(t domain.Trip) bool { return t.ID == e.EntityID }), nil
	default:
		return nil, fmt.Errorf("%w: action %q", errMalformedEntry, e.ActionType)
	}
}

// replayNested reverses e inside the owning trip's collection selected by items.
// Deleted items are appended, so their position among siblings is not restored.
func replayNested[T domain.Record](trips []domain.Trip, e domain.HistoryEntry, items func(*domain.Trip) *[]T) ([]domain.Trip, error) {
	ti := slices.IndexFunc(trips, func(t domain.Trip) bool { return t.ID == e.TripID })
	if ti < 0 {
		return nil, fmt.Errorf("trip %s: %w", e.TripID, domain.ErrNotFound)
	}
	list := items(&trips[ti])
	matches := func(v T) bool { return v.RecordID() == e.EntityID }

	switch e.ActionType {
	case domain.ActionDelete:
		prev, err := stateAs[T](e.PreviousState)
		if err != nil {
			return nil, err
		}
		*list = append(*list, prev)
	case domain.ActionUpdate:
		idx := slices.IndexFunc(*list, matches)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		prev, err := stateAs[T](e.PreviousState)
		if err != nil {
			return nil, err
		}
		(*list)[idx] = prev
	case domain.ActionCreate:
		*list = slices.DeleteFunc(*list, matches)
	default:
		return nil, fmt.Errorf("%w: action %q", errMalformedEntry, e.ActionType)
	}
	return trips, nil
}

// stateAs asserts a recorded state to the concrete type T.
func stateAs[T domain.Record](r domain.Record) (T, error) {
	v, ok := r.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: state is %T, want %T", errMalformedEntry, r, zero)
	}
	return v, nil
}

func flightsOf(t *domain.Trip) *[]domain.Flight               { return &t.Flights }
func accommodationsOf(t *domain.Trip) *[]domain.Accommodation { return &t.Accommodations }
func activitiesOf(t *domain.Trip) *[]domain.Activity          { return &t.Activities }
