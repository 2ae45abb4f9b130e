package source

import (
	"errors"
	"fmt"
	"strings"

	"spomap-api/internal/models"
)

// ErrDuplicateRegion is returned when the population table repeats a region code.
var ErrDuplicateRegion = errors.New("duplicate region code")

const (
	colRegionCode = "SIGNGU_CD"
	colRegionName = "SIGNGU_NM"

	// headers containing this token hold age-bracket population counts
	populationToken = "POP"
)

// activeBrackets are the working-age columns summed into the active population.
var activeBrackets = []string{"N20S_POPLTN_CO", "N30S_POPLTN_CO", "N40S_POPLTN_CO"}

// ParsePopulation builds the population reference table. Rows keep file order.
func ParsePopulation(t *Table) ([]models.RegionPopulation, error) {
	required := append([]string{colRegionCode, colRegionName}, activeBrackets...)
	if err := t.Require(required...); err != nil {
		return nil, err
	}
	ageCols := t.ColumnsContaining(populationToken)

	seen := make(map[string]struct{}, len(t.Rows))
	regions := make([]models.RegionPopulation, 0, len(t.Rows))
	for i, row := range t.Rows {
		raw := t.Value(row, colRegionCode)
		id, ok := RegionCode(raw)
		if !ok {
			return nil, fmt.Errorf("source: %s: row %d: invalid region code %q", t.Name, i+2, raw)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("source: %s: %w: %s", t.Name, ErrDuplicateRegion, id)
		}
		seen[id] = struct{}{}

		r := models.RegionPopulation{
			ID:          id,
			FullName:    t.Value(row, colRegionName),
			AgeBrackets: make(map[string]float64, len(ageCols)),
		}
		r.ShortName = shortName(r.FullName)

		for _, col := range ageCols {
			// non-numeric cells contribute nothing to the sums
			n, _ := parseNumber(t.Value(row, col))
			r.AgeBrackets[col] = n
			r.TotalPopulation += n
		}
		for _, col := range activeBrackets {
			r.ActivePopulation += r.AgeBrackets[col]
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// shortName is the last whitespace-delimited token of a full region name,
// e.g. "인천광역시 동구" -> "동구".
func shortName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
