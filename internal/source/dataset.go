package source

import (
	"fmt"

	"spomap-api/internal/models"
)

// Paths locates the four source files.
type Paths struct {
	Population     string
	Voucher        string
	PublicFacility string
	Fitness        string
}

// Dataset holds the parsed source tables.
type Dataset struct {
	Population   []models.RegionPopulation
	Vouchers     []models.Facility
	Publics      []models.Facility
	Measurements []models.FitnessMeasurement
}

// Loader reads source files with a fixed text encoding.
type Loader struct {
	encoding string
}

// NewLoader creates a loader for files in the given encoding.
func NewLoader(encoding string) *Loader {
	return &Loader{encoding: encoding}
}

// Load reads and parses all four tables. Any missing file or column is an error.
func (l *Loader) Load(paths Paths) (*Dataset, error) {
	var ds Dataset

	pop, err := l.read(paths.Population)
	if err != nil {
		return nil, err
	}
	if ds.Population, err = ParsePopulation(pop); err != nil {
		return nil, err
	}

	vouch, err := l.read(paths.Voucher)
	if err != nil {
		return nil, err
	}
	if ds.Vouchers, err = ParseVoucherFacilities(vouch); err != nil {
		return nil, err
	}

	pub, err := l.read(paths.PublicFacility)
	if err != nil {
		return nil, err
	}
	if ds.Publics, err = ParsePublicFacilities(pub); err != nil {
		return nil, err
	}

	fit, err := l.read(paths.Fitness)
	if err != nil {
		return nil, err
	}
	if ds.Measurements, err = ParseFitnessMeasurements(fit); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (l *Loader) read(path string) (*Table, error) {
	if path == "" {
		return nil, fmt.Errorf("source: no path configured")
	}
	t, err := ReadTable(path, l.encoding)
	if err != nil {
		return nil, fmt.Errorf("source: failed to load %s: %w", path, err)
	}
	return t, nil
}
