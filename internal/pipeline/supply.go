package pipeline

import (
	"sort"

	"spomap-api/internal/models"
)

// CountSupply counts facilities per (region, sport). A facility labeled with
// several sports adds one to each of them. Facilities without a region are skipped.
func CountSupply(facilities []models.Facility) map[models.MetricKey]int {
	counts := make(map[models.MetricKey]int)
	for _, f := range facilities {
		if f.RegionID == "" {
			continue
		}
		for _, sport := range f.Categories {
			counts[models.MetricKey{RegionID: f.RegionID, Sport: sport}]++
		}
	}
	return counts
}

// SupplyScores sums per-source counts, normalizes them per 100k residents and
// ranks each sport's regions into scores in (0, 100]. Regions without a known,
// positive population are left out; absent pairs mean a score of 0.
func SupplyScores(population []models.RegionPopulation, sources ...map[models.MetricKey]int) map[models.MetricKey]float64 {
	totals := make(map[string]float64, len(population))
	for _, r := range population {
		totals[r.ID] = r.TotalPopulation
	}

	raw := make(map[models.MetricKey]int)
	for _, counts := range sources {
		for key, n := range counts {
			raw[key] += n
		}
	}

	perSport := make(map[string][]models.MetricKey)
	for key := range raw {
		if total, ok := totals[key.RegionID]; !ok || total <= 0 {
			continue
		}
		perSport[key.Sport] = append(perSport[key.Sport], key)
	}

	scores := make(map[models.MetricKey]float64)
	for _, sport := range models.SportCatalogue() {
		keys := perSport[sport.Code]
		if len(keys) == 0 {
			continue
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].RegionID < keys[j].RegionID })

		per100k := make([]float64, len(keys))
		for i, key := range keys {
			per100k[i] = float64(raw[key]) / (totals[key.RegionID] / 100000)
		}
		for i, pct := range PercentileRank(per100k) {
			scores[keys[i]] = 100 * pct
		}
	}
	return scores
}
