package service

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Id prefixes per record kind.
const (
	prefixTrip          = "trip"
	prefixFlight        = "flight"
	prefixAccommodation = "accom"
	prefixActivity      = "activity"
	prefixHistory       = "history"
)

// IDGenerator produces record ids of the form "<prefix>-<suffix>".
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator suffixes ids with a random UUID.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SequenceGenerator numbers ids per prefix starting at 1. Deterministic, for
// tests and fixtures.
type SequenceGenerator struct {
	mu   sync.Mutex
	next map[string]int
}

// NewSequenceGenerator returns a generator whose counters all start at 1.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{next: make(map[string]int)}
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[prefix]++
	return prefix + "-" + strconv.Itoa(g.next[prefix])
}

// TimestampGenerator reproduces the browser client's ids: the epoch
// millisecond, plus a random base-36 suffix for history entries. Two ids
// made in the same millisecond collide.
type TimestampGenerator struct {
	Now func() time.Time
}

// NewID implements IDGenerator.
func (g TimestampGenerator) NewID(prefix string) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	id := prefix + "-" + strconv.FormatInt(now().UnixMilli(), 10)
	if prefix == prefixHistory {
		id += "-" + strconv.FormatUint(rand.Uint64()|1<<62, 36)[:7]
	}
	return id
}
