package source

import "spomap-api/internal/models"

const colCenterName = "CNTER_NM"

// ParseFitnessMeasurements reads the measurement log. Each row is one visit;
// region codes are resolved later from the center name.
func ParseFitnessMeasurements(t *Table) ([]models.FitnessMeasurement, error) {
	if err := t.Require(colCenterName); err != nil {
		return nil, err
	}

	measurements := make([]models.FitnessMeasurement, 0, len(t.Rows))
	for _, row := range t.Rows {
		measurements = append(measurements, models.FitnessMeasurement{
			CenterName: t.Value(row, colCenterName),
		})
	}
	return measurements, nil
}
