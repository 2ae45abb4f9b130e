package pipeline

import (
	"testing"

	"spomap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCoordinates(t *testing.T) {
	vouchers := []models.Facility{
		{RegionID: "28140", Coord: &models.Coordinate{Lat: 37.0, Lng: 126.0}},
		{RegionID: "28140", Coord: &models.Coordinate{Lat: 38.0, Lng: 127.0}},
		{RegionID: "", Coord: &models.Coordinate{Lat: 10.0, Lng: 10.0}},
		{RegionID: "11110"},
	}
	publics := []models.Facility{
		{RegionID: "28140", Coord: &models.Coordinate{Lat: 39.0, Lng: 128.0}},
		{RegionID: "26170", Coord: &models.Coordinate{Lat: 35.1, Lng: 129.0}},
	}

	coords := AggregateCoordinates(vouchers, publics)

	require.Len(t, coords, 2)
	assert.InDelta(t, 38.0, coords["28140"].Lat, 1e-9)
	assert.InDelta(t, 127.0, coords["28140"].Lng, 1e-9)
	assert.InDelta(t, 35.1, coords["26170"].Lat, 1e-9)
	_, ok := coords["11110"]
	assert.False(t, ok)
}
