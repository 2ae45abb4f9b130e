package source

import "spomap-api/internal/models"

const (
	colVoucherRegion = "SIGNGU_CD"
	colVoucherItem   = "ITEM_NM"
	colVoucherLat    = "FCLTY_Y_CRDNT_VALUE"
	colVoucherLng    = "FCLTY_X_CRDNT_VALUE"

	colPublicRegion   = "POSESN_MBY_SIGNGU_CD"
	colPublicType     = "FCLTY_TY_NM"
	colPublicIndustry = "INDUTY_NM"
	colPublicName     = "FCLTY_NM"
	colPublicLat      = "FCLTY_LA"
	colPublicLng      = "FCLTY_LO"
)

// ParseVoucherFacilities reads the sports-voucher facility listing.
// Rows with unparseable region codes are kept with an empty RegionID.
func ParseVoucherFacilities(t *Table) ([]models.Facility, error) {
	if err := t.Require(colVoucherRegion, colVoucherItem); err != nil {
		return nil, err
	}

	facilities := make([]models.Facility, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, _ := RegionCode(t.Value(row, colVoucherRegion))
		facilities = append(facilities, models.Facility{
			Kind:     models.VoucherFacility,
			RegionID: id,
			ItemName: t.Value(row, colVoucherItem),
			Coord:    coordinate(t, row, colVoucherLat, colVoucherLng),
		})
	}
	return facilities, nil
}

// ParsePublicFacilities reads the public sports facility listing.
func ParsePublicFacilities(t *Table) ([]models.Facility, error) {
	if err := t.Require(colPublicRegion, colPublicName); err != nil {
		return nil, err
	}

	facilities := make([]models.Facility, 0, len(t.Rows))
	for _, row := range t.Rows {
		id, _ := PublicRegionCode(t.Value(row, colPublicRegion))
		facilities = append(facilities, models.Facility{
			Kind:         models.PublicFacility,
			RegionID:     id,
			FacilityType: t.Value(row, colPublicType),
			Industry:     t.Value(row, colPublicIndustry),
			Name:         t.Value(row, colPublicName),
			Coord:        coordinate(t, row, colPublicLat, colPublicLng),
		})
	}
	return facilities, nil
}

func coordinate(t *Table, row []string, latCol, lngCol string) *models.Coordinate {
	lat, okLat := parseNumber(t.Value(row, latCol))
	lng, okLng := parseNumber(t.Value(row, lngCol))
	if !okLat || !okLng {
		return nil
	}
	return &models.Coordinate{Lat: lat, Lng: lng}
}
