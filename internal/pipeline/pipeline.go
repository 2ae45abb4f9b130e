package pipeline

import (
	"errors"

	"spomap-api/internal/models"
	"spomap-api/internal/source"

	"github.com/rs/zerolog"
)

// Build runs the aggregation over a loaded dataset and returns the snapshot
// served for the rest of the process lifetime.
func Build(ds *source.Dataset, logger zerolog.Logger) (*Snapshot, error) {
	if ds == nil || len(ds.Population) == 0 {
		return nil, errors.New("pipeline: population table is empty")
	}

	vouchers := LabelFacilities(ds.Vouchers)
	publics := LabelFacilities(ds.Publics)
	logFacilities(logger, models.VoucherFacility, vouchers)
	logFacilities(logger, models.PublicFacility, publics)

	measurements := ResolveMeasurements(NewRegionResolver(ds.Population), ds.Measurements, logger)

	coords := AggregateCoordinates(vouchers, publics)
	supply := SupplyScores(ds.Population, CountSupply(vouchers), CountSupply(publics))
	demand := DemandScores(ds.Population, CountMeasurements(measurements))

	sports := models.SportCatalogue()
	metrics := AssembleMetrics(sports, ds.Population, demand, supply)
	regions := RegionCatalogue(ds.Population, coords)

	logger.Info().
		Int("population_regions", len(ds.Population)).
		Int("mapped_regions", len(regions)).
		Int("supply_pairs", len(supply)).
		Int("metrics", len(metrics)).
		Msg("pipeline: snapshot built")

	return NewSnapshot(sports, regions, metrics), nil
}

// ResolveMeasurements returns a copy of measurements with region codes filled
// in where the center name resolves. Each distinct name is resolved once.
func ResolveMeasurements(resolver *RegionResolver, measurements []models.FitnessMeasurement, logger zerolog.Logger) []models.FitnessMeasurement {
	type result struct {
		id string
		ok bool
	}
	cache := make(map[string]result)

	resolved := make([]models.FitnessMeasurement, len(measurements))
	unresolved := 0
	for i, m := range measurements {
		res, seen := cache[m.CenterName]
		if !seen {
			res.id, res.ok = resolver.Resolve(m.CenterName)
			cache[m.CenterName] = res
			if !res.ok {
				logger.Debug().Str("center", m.CenterName).Msg("pipeline: unresolved measurement center")
			}
		}
		if !res.ok {
			unresolved++
		}
		m.RegionID = res.id
		resolved[i] = m
	}

	logger.Info().
		Int("measurements", len(measurements)).
		Int("centers", len(cache)).
		Int("unresolved", unresolved).
		Msg("pipeline: measurement centers resolved")
	return resolved
}

func logFacilities(logger zerolog.Logger, kind models.FacilityKind, facilities []models.Facility) {
	var noRegion, unlabeled int
	for _, f := range facilities {
		if f.RegionID == "" {
			noRegion++
		}
		if len(f.Categories) == 0 {
			unlabeled++
		}
	}
	logger.Info().
		Str("source", kind.String()).
		Int("rows", len(facilities)).
		Int("without_region", noRegion).
		Int("unlabeled", unlabeled).
		Msg("pipeline: facilities labeled")
}
