package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// Patch is a partial update that can be merged onto a T.
type Patch[T any] interface {
	Apply(T) T
}

// Collection is the repository for one kind of record nested inside trips.
// It reads the owning trip, changes its nested slice, writes the trip back
// through the TripService and records one history entry per mutation.
type Collection[T domain.Record, P Patch[T]] struct {
	name   string
	kind   domain.EntityType
	prefix string
	trips  *TripService
	items  func(*domain.Trip) *[]T
	withID func(T, string) T
}

// List returns every item of the trip in stored order. A missing trip
// yields an empty list.
func (c *Collection[T, P]) List(ctx context.Context, tripID string) []T {
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		return []T{}
	}
	items := *c.items(&trip)
	if items == nil {
		return []T{}
	}
	return items
}

// GetByID returns one item of the trip.
// Returns domain.ErrNotFound if the trip or the item does not exist.
func (c *Collection[T, P]) GetByID(ctx context.Context, tripID, id string) (T, error) {
	var zero T
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		return zero, fmt.Errorf("service.%s.GetByID: %w", c.name, err)
	}
	items := *c.items(&trip)
	idx := c.index(items, id)
	if idx < 0 {
		return zero, fmt.Errorf("service.%s.GetByID: %w", c.name, domain.ErrNotFound)
	}
	return items[idx], nil
}

// Add appends item to the trip under a newly generated id; any id on item
// is ignored. Returns domain.ErrNotFound if the trip does not exist.
func (c *Collection[T, P]) Add(ctx context.Context, tripID string, item T) (T, error) {
	var zero T
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Add: %w", c.name, err)
	}

	item = c.withID(item, c.trips.opts.ids.NewID(c.prefix))
	items := c.items(&trip)
	*items = append(*items, item)

	if err := c.trips.save(ctx, trip); err != nil {
		return zero, fmt.Errorf("service.%s.Add: %w", c.name, err)
	}

	c.trips.history.record(ctx, domain.ActionCreate, c.kind, item.RecordID(), tripID, nil, item)
	return item, nil
}

// Update shallow-merges patch onto an item, keeping its position.
// Returns domain.ErrNotFound if the trip or the item does not exist.
func (c *Collection[T, P]) Update(ctx context.Context, tripID, id string, patch P) (T, error) {
	var zero T
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Update: %w", c.name, err)
	}
	items := c.items(&trip)
	idx := c.index(*items, id)
	if idx < 0 {
		return zero, fmt.Errorf("service.%s.Update: %w", c.name, domain.ErrNotFound)
	}

	prev := (*items)[idx]
	updated := patch.Apply(prev)
	(*items)[idx] = updated

	if err := c.trips.save(ctx, trip); err != nil {
		return zero, fmt.Errorf("service.%s.Update: %w", c.name, err)
	}

	c.trips.history.record(ctx, domain.ActionUpdate, c.kind, id, tripID, prev, updated)
	return updated, nil
}

// Delete removes an item from the trip.
// Returns domain.ErrNotFound if the trip or the item does not exist.
func (c *Collection[T, P]) Delete(ctx context.Context, tripID, id string) error {
	trip, err := c.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.%s.Delete: %w", c.name, err)
	}
	items := c.items(&trip)
	idx := c.index(*items, id)
	if idx < 0 {
		return fmt.Errorf("service.%s.Delete: %w", c.name, domain.ErrNotFound)
	}

	removed := (*items)[idx]
	*items = slices.Delete(*items, idx, idx+1)

	if err := c.trips.save(ctx, trip); err != nil {
		return fmt.Errorf("service.%s.Delete: %w", c.name, err)
	}

	c.trips.history.record(ctx, domain.ActionDelete, c.kind, id, tripID, removed, nil)
	return nil
}

func (c *Collection[T, P]) index(items []T, id string) int {
	return slices.IndexFunc(items, func(v T) bool { return v.RecordID() == id })
}
