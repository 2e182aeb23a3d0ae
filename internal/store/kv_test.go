package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/store"
	"github.com/pkordes/itinerary-planner/testutil"
)

// backends returns one freshly opened instance of every embedded backend.
func backends(t *testing.T) map[string]store.KV {
	t.Helper()
	dir := t.TempDir()

	file, err := store.NewFile(filepath.Join(dir, "files"))
	require.NoError(t, err)

	bolt, err := store.NewBolt(filepath.Join(dir, "itinerary.bolt"))
	require.NoError(t, err)

	sqlite, err := store.NewSQLite(filepath.Join(dir, "itinerary.sqlite"))
	require.NoError(t, err)

	kvs := map[string]store.KV{
		"memory": store.NewMemory(),
		"file":   file,
		"bolt":   bolt,
		"sqlite": sqlite,
	}
	t.Cleanup(func() {
		for _, kv := range kvs {
			_ = kv.Close()
		}
	})
	return kvs
}

func exerciseKV(t *testing.T, kv store.KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, store.KeyTrips)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	require.NoError(t, kv.Put(ctx, store.KeyTrips, []byte(`[{"id":"trip-1"}]`)))
	got, err := kv.Get(ctx, store.KeyTrips)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"trip-1"}]`, string(got))

	require.NoError(t, kv.Put(ctx, store.KeyTrips, []byte(`[]`)))
	got, err = kv.Get(ctx, store.KeyTrips)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got), "Put replaces the previous value")

	_, err = kv.Get(ctx, store.KeyHistory)
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "keys are independent")
}

func TestKV_Backends(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			exerciseKV(t, kv)
		})
	}
}

func TestKV_Postgres(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx, pool))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() {
		// Rollback discards all changes made during the test.
		_ = tx.Rollback(context.Background())
	})

	exerciseKV(t, store.NewPostgres(tx))
}

func TestFile_RejectsPathKeys(t *testing.T) {
	f, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	err = f.Put(context.Background(), "../escape", []byte(`[]`))

	assert.Error(t, err)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := store.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, store.New(first, nil).WriteTrips(ctx, sampleTrips()))

	second, err := store.NewFile(dir)
	require.NoError(t, err)

	assert.Equal(t, sampleTrips(), store.New(second, nil).ReadTrips(ctx))
}
