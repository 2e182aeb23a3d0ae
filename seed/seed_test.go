package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/seed"
)

func TestTrips_Bundled(t *testing.T) {
	trips, err := seed.Trips()
	require.NoError(t, err)

	require.Len(t, trips, 3)
	assert.Equal(t, "Paris Getaway", trips[0].Name)
	assert.Len(t, trips[0].Flights, 2)
	assert.Len(t, trips[0].Activities, 3)
	assert.Equal(t, "2025-06-15", trips[0].StartDate)
	assert.Equal(t, "10:00", trips[0].Activities[0].Time)

	// Italy has no flights; the list must still be non-nil.
	assert.NotNil(t, trips[2].Flights)
	assert.Empty(t, trips[2].Flights)

	for _, tr := range trips {
		for _, a := range tr.Accommodations {
			assert.True(t, domain.ValidAccommodationDates(tr.StartDate, tr.EndDate, a.CheckIn, a.CheckOut), a.ID)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: trip-x\n  name: Oslo\n  startDate: \"2025-01-01\"\n  endDate: \"2025-01-03\"\n"), 0o600))

	trips, err := seed.Load(path)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Oslo", trips[0].Name)
	assert.NotNil(t, trips[0].Activities)
}

func TestLoad_Missing(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
