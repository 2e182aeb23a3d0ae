// Package store persists the planner's two top-level records, the trip list
// and the history log, as JSON documents in a key-value backend.
//
// Reads never fail: an absent key, a backend error and unparseable JSON all
// read as an empty list. Writes replace the whole record. There is no
// isolation between a read and a later write; callers doing read-modify-write
// from several goroutines can lose updates.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// Keys of the persisted records.
const (
	KeyTrips        = "trips"
	KeyHistory      = "history"
	KeyInitialTrips = "initialTrips"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is a raw key-value backend. Implementations must be safe for concurrent
// use of individual calls; they give no guarantee across calls.
type KV interface {
	// Get returns the stored value, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases the backend.
	Close() error
}

// Store is the typed adapter over a KV backend.
type Store struct {
	kv  KV
	log *slog.Logger
}

// New wraps kv. A nil logger falls back to slog.Default().
func New(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, log: log}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// ReadTrips returns the stored trip list, or an empty list.
func (s *Store) ReadTrips(ctx context.Context) []domain.Trip {
	return readList[domain.Trip](ctx, s, KeyTrips)
}

// WriteTrips replaces the stored trip list.
func (s *Store) WriteTrips(ctx context.Context, trips []domain.Trip) error {
	return writeList(ctx, s, KeyTrips, trips)
}

// ReadHistory returns the stored history log, most recent first, or an empty list.
func (s *Store) ReadHistory(ctx context.Context) []domain.HistoryEntry {
	return readList[domain.HistoryEntry](ctx, s, KeyHistory)
}

// WriteHistory replaces the stored history log.
func (s *Store) WriteHistory(ctx context.Context, entries []domain.HistoryEntry) error {
	return writeList(ctx, s, KeyHistory, entries)
}

// InitTrips seeds the trip list on first use. It does nothing once the trips
// record exists. Otherwise bundled is written to the initialTrips record
// (unless one is already there) and initialTrips is copied into trips.
// With neither a stored nor a bundled seed, trips starts as an empty list.
func (s *Store) InitTrips(ctx context.Context, bundled []domain.Trip) error {
	_, err := s.kv.Get(ctx, KeyTrips)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, ErrKeyNotFound):
		return fmt.Errorf("store.InitTrips: %w", err)
	}

	seed, err := s.kv.Get(ctx, KeyInitialTrips)
	switch {
	case errors.Is(err, ErrKeyNotFound) && bundled != nil:
		seed, err = json.Marshal(bundled)
		if err != nil {
			return fmt.Errorf("store.InitTrips: encode seed: %w", err)
		}
		if err := s.kv.Put(ctx, KeyInitialTrips, seed); err != nil {
			return fmt.Errorf("store.InitTrips: %w", err)
		}
	case errors.Is(err, ErrKeyNotFound):
		seed = []byte("[]")
	case err != nil:
		return fmt.Errorf("store.InitTrips: %w", err)
	}

	if err := s.kv.Put(ctx, KeyTrips, seed); err != nil {
		return fmt.Errorf("store.InitTrips: %w", err)
	}
	s.log.InfoContext(ctx, "trip list seeded", slog.Int("bytes", len(seed)))
	return nil
}

// readList decodes the list stored under key. Every failure reads as an
// empty list.
func readList[T any](ctx context.Context, s *Store, key string) []T {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			s.log.DebugContext(ctx, "store key absent", slog.String("key", key))
		} else {
			s.log.WarnContext(ctx, "store read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.WarnContext(ctx, "store record unparseable", slog.String("key", key), slog.String("error", err.Error()))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func writeList[T any](ctx context.Context, s *Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
