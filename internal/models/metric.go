package models

// MetricKey addresses one cell of the metric table.
type MetricKey struct {
	RegionID string
	Sport    string
}

// Metric holds demand, supply and the equity deficit index for a region and sport.
type Metric struct {
	RegionID    string  `json:"region_id"`
	Sport       string  `json:"sport"`
	DemandScore float64 `json:"demand_score"`
	SupplyScore float64 `json:"supply_score"`
	EDI         float64 `json:"edi"`
}

// Key returns the table key of m.
func (m Metric) Key() MetricKey {
	return MetricKey{RegionID: m.RegionID, Sport: m.Sport}
}

// RankedRegion is an entry of the EDI ranking.
type RankedRegion struct {
	RegionID    string  `json:"region_id"`
	RegionName  string  `json:"region_name"`
	EDI         float64 `json:"edi"`
	DemandScore float64 `json:"demand_score"`
	SupplyScore float64 `json:"supply_score"`
}
