package pipeline

import "spomap-api/internal/models"

// Snapshot is the immutable result of one pipeline run: the sport catalogue,
// the coordinate-filtered region catalogue and the metric table. It is safe
// for concurrent readers; accessors return copies.
type Snapshot struct {
	sports  []models.SportCategory
	regions []models.Region
	metrics []models.Metric

	regionIndex map[string]int
	metricIndex map[models.MetricKey]int
	bySport     map[string][]int
}

// NewSnapshot indexes the three artifacts.
func NewSnapshot(sports []models.SportCategory, regions []models.Region, metrics []models.Metric) *Snapshot {
	s := &Snapshot{
		sports:      append([]models.SportCategory(nil), sports...),
		regions:     append([]models.Region(nil), regions...),
		metrics:     append([]models.Metric(nil), metrics...),
		regionIndex: make(map[string]int, len(regions)),
		metricIndex: make(map[models.MetricKey]int, len(metrics)),
		bySport:     make(map[string][]int, len(sports)),
	}
	for i, r := range s.regions {
		s.regionIndex[r.ID] = i
	}
	for i, m := range s.metrics {
		s.metricIndex[m.Key()] = i
		s.bySport[m.Sport] = append(s.bySport[m.Sport], i)
	}
	return s
}

// Sports returns the sport catalogue.
func (s *Snapshot) Sports() []models.SportCategory {
	return append([]models.SportCategory(nil), s.sports...)
}

// HasSport reports whether code is in the sport catalogue.
func (s *Snapshot) HasSport(code string) bool {
	for _, sport := range s.sports {
		if sport.Code == code {
			return true
		}
	}
	return false
}

// Regions returns the regions that have map coordinates.
func (s *Snapshot) Regions() []models.Region {
	return append([]models.Region(nil), s.regions...)
}

// Region looks up a region of the catalogue.
func (s *Snapshot) Region(id string) (models.Region, bool) {
	i, ok := s.regionIndex[id]
	if !ok {
		return models.Region{}, false
	}
	return s.regions[i], true
}

// Metric looks up one cell of the metric table.
func (s *Snapshot) Metric(regionID, sport string) (models.Metric, bool) {
	i, ok := s.metricIndex[models.MetricKey{RegionID: regionID, Sport: sport}]
	if !ok {
		return models.Metric{}, false
	}
	return s.metrics[i], true
}

// MetricsBySport returns all metrics of a sport in table order.
func (s *Snapshot) MetricsBySport(sport string) []models.Metric {
	idx := s.bySport[sport]
	out := make([]models.Metric, len(idx))
	for j, i := range idx {
		out[j] = s.metrics[i]
	}
	return out
}

// Metrics returns the full metric table in table order.
func (s *Snapshot) Metrics() []models.Metric {
	return append([]models.Metric(nil), s.metrics...)
}
