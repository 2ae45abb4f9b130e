package models

// RegionPopulation is one row of the population reference table, keyed by the
// 5-digit administrative region code.
type RegionPopulation struct {
	ID               string
	FullName         string
	ShortName        string
	AgeBrackets      map[string]float64
	TotalPopulation  float64
	ActivePopulation float64
}

// Region is a map-facing region with a representative coordinate.
type Region struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lng float64
}
