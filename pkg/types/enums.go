package types

type Tenancy string

const (
	TenancyAny    Tenancy = ""
	TenancyVacant Tenancy = "vacant"
	TenancySingle Tenancy = "single"
	TenancyMulti  Tenancy = "multi"
)

// MeasurementType selects the semantic label of the unit count range
// (apartment units, hotel keys, care beds, mobile home pads, fuel pumps).
type MeasurementType string

const (
	MeasureUnits MeasurementType = "units"
	MeasureKeys  MeasurementType = "keys"
	MeasureBeds  MeasurementType = "beds"
	MeasurePads  MeasurementType = "pads"
	MeasurePumps MeasurementType = "pumps"
)

type TimelineType string

const (
	TimelineNone       TimelineType = ""
	TimelineTimePeriod TimelineType = "time_period"
	TimelineCustom     TimelineType = "custom"
)

// Listing status vocabulary. DefaultListingStatus is the documented
// non-empty default subset.
const (
	StatusActive         = "active"
	StatusOnMarket       = "on-market"
	StatusAuction        = "auction"
	StatusHighestAndBest = "highest-and-best"
	StatusUnderContract  = "under-contract"
	StatusPending        = "pending"
	StatusSold           = "sold"
	StatusOffMarket      = "off-market"
)

func DefaultListingStatus() []string {
	return []string{StatusActive, StatusOnMarket, StatusAuction, StatusHighestAndBest}
}

var ValidTenancies = map[Tenancy]struct{}{
	TenancyVacant: {},
	TenancySingle: {},
	TenancyMulti:  {},
}

var ValidMeasurementTypes = map[MeasurementType]struct{}{
	MeasureUnits: {},
	MeasureKeys:  {},
	MeasureBeds:  {},
	MeasurePads:  {},
	MeasurePumps: {},
}
