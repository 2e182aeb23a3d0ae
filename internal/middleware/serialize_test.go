package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/itinerary-planner/internal/middleware"
)

// concurrencyProbe records the highest number of requests seen in flight at once.
type concurrencyProbe struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (p *concurrencyProbe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := p.inFlight.Add(1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	p.inFlight.Add(-1)
	w.WriteHeader(http.StatusOK)
}

func fire(h http.Handler, method string, n int) []int {
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(method, "/trips", nil))
			codes[i] = rec.Code
		}()
	}
	wg.Wait()
	return codes
}

func TestWriteSerializer_OneMutationAtATime(t *testing.T) {
	probe := &concurrencyProbe{}
	h := middleware.NewWriteSerializer(true, 5*time.Second)(probe)

	codes := fire(h, http.MethodPost, 5)

	for _, c := range codes {
		assert.Equal(t, http.StatusOK, c)
	}
	assert.Equal(t, int32(1), probe.peak.Load())
}

func TestWriteSerializer_ReadsBypass(t *testing.T) {
	probe := &concurrencyProbe{}
	h := middleware.NewWriteSerializer(true, 5*time.Second)(probe)

	fire(h, http.MethodGet, 5)

	// Reads are not queued, so at least two overlap during the sleep.
	assert.Greater(t, probe.peak.Load(), int32(1))
}

func TestWriteSerializer_Disabled(t *testing.T) {
	probe := &concurrencyProbe{}
	h := middleware.NewWriteSerializer(false, time.Second)(probe)

	fire(h, http.MethodPost, 5)

	assert.Greater(t, probe.peak.Load(), int32(1))
}
