package pipeline

import (
	"testing"

	"spomap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(regionID, sport string) models.MetricKey {
	return models.MetricKey{RegionID: regionID, Sport: sport}
}

func TestCountSupply_MultiLabel(t *testing.T) {
	facilities := []models.Facility{
		{RegionID: "A", Categories: []string{models.SportBallSports, models.SportFitness}},
		{RegionID: "A", Categories: []string{models.SportFitness}},
		{RegionID: "", Categories: []string{models.SportFitness}},
		{RegionID: "B"},
	}

	counts := CountSupply(facilities)

	assert.Equal(t, map[models.MetricKey]int{
		key("A", models.SportBallSports): 1,
		key("A", models.SportFitness):    2,
	}, counts)
}

func TestSupplyScores(t *testing.T) {
	population := []models.RegionPopulation{
		{ID: "A", TotalPopulation: 100000},
		{ID: "B", TotalPopulation: 50000},
		{ID: "C", TotalPopulation: 0},
	}
	vouchers := map[models.MetricKey]int{
		key("A", models.SportSwimming): 1,
		key("B", models.SportSwimming): 2,
		key("A", models.SportFitness):  4,
	}
	publics := map[models.MetricKey]int{
		key("A", models.SportSwimming): 1,
		key("C", models.SportSwimming): 3,
		key("X", models.SportSwimming): 2,
	}

	scores := SupplyScores(population, vouchers, publics)

	// A: 2 per 100k, B: 4 per 100k
	assert.Equal(t, map[models.MetricKey]float64{
		key("A", models.SportSwimming): 50,
		key("B", models.SportSwimming): 100,
		key("A", models.SportFitness):  100,
	}, scores)
}

func TestSupplyScores_TiesAndMonotonic(t *testing.T) {
	population := []models.RegionPopulation{
		{ID: "A", TotalPopulation: 100000},
		{ID: "B", TotalPopulation: 100000},
		{ID: "C", TotalPopulation: 200000},
		{ID: "D", TotalPopulation: 100000},
	}
	counts := map[models.MetricKey]int{
		key("A", models.SportBallSports): 1,
		key("B", models.SportBallSports): 3,
		key("C", models.SportBallSports): 6,
		key("D", models.SportBallSports): 5,
	}

	scores := SupplyScores(population, counts)
	require.Len(t, scores, 4)

	// B and C both have 3 per 100k
	assert.InDelta(t, 25.0, scores[key("A", models.SportBallSports)], 1e-9)
	assert.InDelta(t, 62.5, scores[key("B", models.SportBallSports)], 1e-9)
	assert.InDelta(t, 62.5, scores[key("C", models.SportBallSports)], 1e-9)
	assert.InDelta(t, 100.0, scores[key("D", models.SportBallSports)], 1e-9)

	for _, s := range scores {
		assert.Greater(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}
