package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/store"
)

// failingKV is a backend whose every call fails.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Put(context.Context, string, []byte) error   { return f.err }
func (f failingKV) Close() error                                { return nil }

var _ store.KV = failingKV{}

func sampleTrips() []domain.Trip {
	return []domain.Trip{{
		ID:          "trip-1",
		Name:        "Paris Getaway",
		Destination: "Paris, France",
		StartDate:   "2025-06-15",
		EndDate:     "2025-06-22",
		Flights:     []domain.Flight{{ID: "flight-1", Airline: "Air France"}},
	}}
}

func TestStore_ReadAbsentIsEmpty(t *testing.T) {
	s := store.New(store.NewMemory(), nil)
	ctx := context.Background()

	trips := s.ReadTrips(ctx)
	history := s.ReadHistory(ctx)

	assert.NotNil(t, trips)
	assert.Empty(t, trips)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestStore_ReadCorruptIsEmpty(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, store.KeyTrips, []byte(`{not json`)))
	require.NoError(t, kv.Put(ctx, store.KeyHistory, []byte(`[{"entityType":"SPACESHIP","previousState":{}}]`)))

	s := store.New(kv, nil)

	assert.Empty(t, s.ReadTrips(ctx))
	assert.Empty(t, s.ReadHistory(ctx))
}

func TestStore_ReadBackendErrorIsEmpty(t *testing.T) {
	s := store.New(failingKV{err: errors.New("disk on fire")}, nil)

	assert.Empty(t, s.ReadTrips(context.Background()))
}

func TestStore_WriteErrorIsReturned(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := store.New(failingKV{err: boom}, nil)

	err := s.WriteTrips(context.Background(), sampleTrips())

	assert.ErrorIs(t, err, boom)
}

func TestStore_TripsRoundTrip(t *testing.T) {
	s := store.New(store.NewMemory(), nil)
	ctx := context.Background()

	require.NoError(t, s.WriteTrips(ctx, sampleTrips()))

	assert.Equal(t, sampleTrips(), s.ReadTrips(ctx))
}

func TestStore_HistoryRoundTrip(t *testing.T) {
	s := store.New(store.NewMemory(), nil)
	ctx := context.Background()
	entries := []domain.HistoryEntry{{
		ID:            "history-1",
		Timestamp:     42,
		ActionType:    domain.ActionDelete,
		EntityType:    domain.EntityAccommodation,
		EntityID:      "accom-1",
		TripID:        "trip-1",
		PreviousState: domain.Accommodation{ID: "accom-1", Name: "Le Grand Hotel"},
	}}

	require.NoError(t, s.WriteHistory(ctx, entries))

	assert.Equal(t, entries, s.ReadHistory(ctx))
}

func TestStore_InitTrips_SeedsFromBundled(t *testing.T) {
	kv := store.NewMemory()
	s := store.New(kv, nil)
	ctx := context.Background()

	require.NoError(t, s.InitTrips(ctx, sampleTrips()))

	assert.Equal(t, sampleTrips(), s.ReadTrips(ctx))
	_, err := kv.Get(ctx, store.KeyInitialTrips)
	assert.NoError(t, err, "bundled seed should be kept as initialTrips")
}

func TestStore_InitTrips_PrefersStoredInitialTrips(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, store.KeyInitialTrips, []byte(`[{"id":"trip-9","name":"Stored Seed","flights":[],"accommodations":[],"activities":[]}]`)))
	s := store.New(kv, nil)

	require.NoError(t, s.InitTrips(ctx, sampleTrips()))

	trips := s.ReadTrips(ctx)
	require.Len(t, trips, 1)
	assert.Equal(t, "Stored Seed", trips[0].Name)
}

func TestStore_InitTrips_NoSeedWritesEmptyList(t *testing.T) {
	kv := store.NewMemory()
	s := store.New(kv, nil)
	ctx := context.Background()

	require.NoError(t, s.InitTrips(ctx, nil))

	raw, err := kv.Get(ctx, store.KeyTrips)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestStore_InitTrips_DoesNotReseed(t *testing.T) {
	s := store.New(store.NewMemory(), nil)
	ctx := context.Background()
	require.NoError(t, s.InitTrips(ctx, sampleTrips()))

	// Deleting every trip must not bring the seed back.
	require.NoError(t, s.WriteTrips(ctx, nil))
	require.NoError(t, s.InitTrips(ctx, sampleTrips()))

	assert.Empty(t, s.ReadTrips(ctx))
}
