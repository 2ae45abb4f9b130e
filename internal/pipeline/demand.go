package pipeline

import (
	"math"

	"spomap-api/internal/models"
)

const (
	activeWeight  = 0.7
	fitnessWeight = 0.3

	// noSignalPercentile is used where a region has no usable rate.
	noSignalPercentile = 0.5
)

// CountMeasurements counts resolved measurements per region.
func CountMeasurements(measurements []models.FitnessMeasurement) map[string]int {
	counts := make(map[string]int)
	for _, m := range measurements {
		if m.RegionID == "" {
			continue
		}
		counts[m.RegionID]++
	}
	return counts
}

// DemandScores computes one sport-agnostic demand score in [0, 100] per region:
// 100 * (0.7 * percentile(active rate) + 0.3 * percentile(measurements per 10k)).
// Measurement rates are ranked only among regions with a positive rate; the
// rest get the neutral percentile.
func DemandScores(population []models.RegionPopulation, fitnessCounts map[string]int) map[string]float64 {
	activeRates := make([]float64, len(population))
	fitnessRates := make([]float64, len(population))
	for i, r := range population {
		if r.TotalPopulation <= 0 {
			activeRates[i] = math.NaN()
			fitnessRates[i] = math.NaN()
			continue
		}
		activeRates[i] = r.ActivePopulation / r.TotalPopulation

		rate := float64(fitnessCounts[r.ID]) / (r.TotalPopulation / 10000)
		if rate <= 0 {
			rate = math.NaN()
		}
		fitnessRates[i] = rate
	}

	activePct := PercentileRank(activeRates)
	fitnessPct := PercentileRank(fitnessRates)

	scores := make(map[string]float64, len(population))
	for i, r := range population {
		scores[r.ID] = 100 * (activeWeight*orNoSignal(activePct[i]) + fitnessWeight*orNoSignal(fitnessPct[i]))
	}
	return scores
}

func orNoSignal(pct float64) float64 {
	if math.IsNaN(pct) {
		return noSignalPercentile
	}
	return pct
}
