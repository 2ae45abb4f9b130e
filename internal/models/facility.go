package models

// FacilityKind identifies which source table a facility came from.
type FacilityKind int

const (
	VoucherFacility FacilityKind = iota
	PublicFacility
)

func (k FacilityKind) String() string {
	switch k {
	case VoucherFacility:
		return "voucher"
	case PublicFacility:
		return "public"
	default:
		return "unknown"
	}
}

// Facility is a sports facility listing from either the voucher or the public
// facility table. An empty RegionID means the raw code could not be parsed.
type Facility struct {
	Kind     FacilityKind
	RegionID string

	// ItemName is set for voucher facilities.
	ItemName string

	// FacilityType, Industry and Name are set for public facilities.
	FacilityType string
	Industry     string
	Name         string

	Coord      *Coordinate
	Categories []string
}

// FitnessMeasurement is a single visit logged by a fitness-measurement center.
// RegionID is empty until the center name has been resolved.
type FitnessMeasurement struct {
	CenterName string
	RegionID   string
}
