package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/service"
)

func TestExportService_Export(t *testing.T) {
	p := newPlanner(t, nil)
	ctx := context.Background()
	paris := mustCreateTrip(t, p)
	_, err := p.flights.Add(ctx, paris.ID, flightFixture())
	require.NoError(t, err)
	_, err = p.activities.Add(ctx, paris.ID, activityFixture())
	require.NoError(t, err)

	empty := tripFixture()
	empty.Name = "Someday"
	_, err = p.trips.Create(ctx, empty)
	require.NoError(t, err)

	rows := service.NewExportService(p.trips).Export(ctx)

	require.Len(t, rows, 3)
	assert.Equal(t, domain.EntityFlight, rows[0].ItemType)
	assert.Equal(t, "Air France AF123", rows[0].ItemName)
	assert.Equal(t, "2025-06-15T08:00:00", rows[0].Start)
	assert.Equal(t, domain.EntityActivity, rows[1].ItemType)
	assert.Equal(t, "2025-06-16 10:00", rows[1].Start)
	assert.Equal(t, "Paris Getaway", rows[1].TripName)

	// Trips with nothing booked still get one row.
	assert.Equal(t, "Someday", rows[2].TripName)
	assert.Empty(t, rows[2].ItemType)
}

func TestExportService_Export_NoTrips(t *testing.T) {
	p := newPlanner(t, nil)

	rows := service.NewExportService(p.trips).Export(context.Background())

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
