package pipeline

import "spomap-api/internal/models"

// AssembleMetrics emits one metric per sport and population region, sport-major
// in catalogue order. Missing supply scores count as 0.
func AssembleMetrics(
	sports []models.SportCategory,
	population []models.RegionPopulation,
	demand map[string]float64,
	supply map[models.MetricKey]float64,
) []models.Metric {
	metrics := make([]models.Metric, 0, len(sports)*len(population))
	for _, sport := range sports {
		for _, r := range population {
			d := demand[r.ID]
			s := supply[models.MetricKey{RegionID: r.ID, Sport: sport.Code}]
			metrics = append(metrics, models.Metric{
				RegionID:    r.ID,
				Sport:       sport.Code,
				DemandScore: d,
				SupplyScore: s,
				EDI:         d - s,
			})
		}
	}
	return metrics
}

// RegionCatalogue lists population regions that have a derived coordinate.
func RegionCatalogue(population []models.RegionPopulation, coords map[string]models.Coordinate) []models.Region {
	regions := make([]models.Region, 0, len(coords))
	for _, r := range population {
		c, ok := coords[r.ID]
		if !ok {
			continue
		}
		regions = append(regions, models.Region{ID: r.ID, Name: r.FullName, Lat: c.Lat, Lng: c.Lng})
	}
	return regions
}
