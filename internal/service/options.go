// Package service contains the business logic for the itinerary planner:
// the trip repository, the nested entity repositories and the history log
// that makes every mutation undoable.
//
// Services never validate input; callers check dates with the domain
// validators before mutating. Not-found conditions are reported as
// domain.ErrNotFound. There is no locking: every operation is an independent
// read-modify-write of the whole trip list.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// DefaultHistoryLimit is the number of entries the history log keeps.
const DefaultHistoryLimit = 20

// Store is the persistence the services need. *store.Store satisfies it.
type Store interface {
	ReadTrips(ctx context.Context) []domain.Trip
	WriteTrips(ctx context.Context, trips []domain.Trip) error
	ReadHistory(ctx context.Context) []domain.HistoryEntry
	WriteHistory(ctx context.Context, entries []domain.HistoryEntry) error
	InitTrips(ctx context.Context, bundled []domain.Trip) error
}

// Option configures a service.
type Option func(*options)

type options struct {
	ids          IDGenerator
	now          func() time.Time
	historyLimit int
	seed         []domain.Trip
	log          *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		ids:          UUIDGenerator{},
		now:          time.Now,
		historyLimit: DefaultHistoryLimit,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIDGenerator sets the id provider used for new records and history entries.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) { o.ids = g }
}

// WithClock sets the time source for history timestamps and stats.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithHistoryLimit sets how many entries the history log keeps.
// Values below 1 are ignored.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.historyLimit = n
		}
	}
}

// WithSeed sets the bundled starter trips written on first use.
func WithSeed(trips []domain.Trip) Option {
	return func(o *options) { o.seed = trips }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
