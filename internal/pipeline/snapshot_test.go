package pipeline

import (
	"testing"

	"spomap-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	sports := models.SportCatalogue()
	regions := []models.Region{{ID: "A", Name: "인천광역시 동구", Lat: 37.4, Lng: 126.6}}
	metrics := []models.Metric{
		{RegionID: "A", Sport: models.SportSwimming, DemandScore: 85, SupplyScore: 100, EDI: -15},
		{RegionID: "B", Sport: models.SportSwimming, DemandScore: 50, EDI: 50},
		{RegionID: "A", Sport: models.SportFitness, DemandScore: 85, EDI: 85},
	}

	snap := NewSnapshot(sports, regions, metrics)

	assert.Equal(t, sports, snap.Sports())
	assert.True(t, snap.HasSport(models.SportFitness))
	assert.False(t, snap.HasSport("golf"))
	assert.Equal(t, regions, snap.Regions())

	r, ok := snap.Region("A")
	assert.True(t, ok)
	assert.Equal(t, regions[0], r)
	_, ok = snap.Region("B")
	assert.False(t, ok)

	m, ok := snap.Metric("B", models.SportSwimming)
	assert.True(t, ok)
	assert.Equal(t, metrics[1], m)
	_, ok = snap.Metric("B", models.SportFitness)
	assert.False(t, ok)

	assert.Equal(t, []models.Metric{metrics[0], metrics[1]}, snap.MetricsBySport(models.SportSwimming))
	assert.Empty(t, snap.MetricsBySport("golf"))
	assert.Equal(t, metrics, snap.Metrics())
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	snap := NewSnapshot(models.SportCatalogue(), []models.Region{{ID: "A"}}, []models.Metric{{RegionID: "A", Sport: models.SportFitness}})

	regions := snap.Regions()
	regions[0].ID = "mutated"
	sports := snap.Sports()
	sports[0].Code = "mutated"
	metrics := snap.MetricsBySport(models.SportFitness)
	metrics[0].EDI = 999

	assert.Equal(t, "A", snap.Regions()[0].ID)
	assert.Equal(t, models.SportBallSports, snap.Sports()[0].Code)
	m, _ := snap.Metric("A", models.SportFitness)
	assert.Equal(t, 0.0, m.EDI)
}
