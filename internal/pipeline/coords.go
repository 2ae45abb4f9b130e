package pipeline

import (
	"spomap-api/internal/models"

	"gonum.org/v1/gonum/stat"
)

// AggregateCoordinates averages latitude and longitude per region over every
// facility that has both a region code and a coordinate.
func AggregateCoordinates(groups ...[]models.Facility) map[string]models.Coordinate {
	lats := make(map[string][]float64)
	lngs := make(map[string][]float64)
	for _, facilities := range groups {
		for _, f := range facilities {
			if f.RegionID == "" || f.Coord == nil {
				continue
			}
			lats[f.RegionID] = append(lats[f.RegionID], f.Coord.Lat)
			lngs[f.RegionID] = append(lngs[f.RegionID], f.Coord.Lng)
		}
	}

	coords := make(map[string]models.Coordinate, len(lats))
	for id := range lats {
		coords[id] = models.Coordinate{
			Lat: stat.Mean(lats[id], nil),
			Lng: stat.Mean(lngs[id], nil),
		}
	}
	return coords
}
