package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/service"
	"github.com/pkordes/itinerary-planner/internal/store"
)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRealServer wires every route over real services and an in-memory store.
func newRealServer(t *testing.T) http.Handler {
	t.Helper()
	log := discardLogger()
	st := store.New(store.NewMemory(), log)
	opts := []service.Option{
		service.WithIDGenerator(service.NewSequenceGenerator()),
		service.WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
		service.WithLogger(log),
	}
	history := service.NewHistoryService(st, opts...)
	trips := service.NewTripService(st, history, opts...)
	return handler.NewServer(handler.Deps{
		Trips:          trips,
		Flights:        service.NewFlightService(trips),
		Accommodations: service.NewAccommodationService(trips),
		Activities:     service.NewActivityService(trips),
		History:        history,
		Export:         service.NewExportService(trips),
		Stats:          service.NewStatsService(trips, opts...),
		OpenAPI:        []byte("openapi: 3.0.3\n"),
		Log:            log,
	}).Routes()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// do sends one request and returns the recorder. A non-nil body is JSON encoded.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = jsonBody(t, body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func parisTrip() map[string]any {
	return map[string]any{
		"name":        "Paris Getaway",
		"destination": "Paris, France",
		"startDate":   "2025-06-15",
		"endDate":     "2025-06-22",
	}
}

// mustCreateTrip posts parisTrip and returns the new id.
func mustCreateTrip(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/trips", parisTrip())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	return created.ID
}
