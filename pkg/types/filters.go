package types

import (
	"slices"

	"github.com/crebase/listing-finder/pkg/numrange"
	"github.com/crebase/listing-finder/pkg/taxonomy"
)

// FilterValues is the composite snapshot of every active search criterion.
// One instance is owned by the filter container; widgets mutate their own
// slice of it through callbacks and Snapshot hands an independent copy to
// the codec on apply.
type FilterValues struct {
	Location      []string           `json:"location,omitempty"`
	Keywords      string             `json:"keywords,omitempty"`
	PropertyTypes taxonomy.Selection `json:"propertyTypes,omitempty"`

	Price           numrange.Range `json:"price"`
	ExcludeUnpriced bool           `json:"excludeUnpriced,omitempty"`
	CapRate         numrange.Range `json:"capRate"`

	TenantBrand   string `json:"tenantBrand,omitempty"`
	BrokerAgent   string `json:"brokerAgent,omitempty"`
	BrokerageShop string `json:"brokerageShop,omitempty"`
	TenantCredit  string `json:"tenantCredit,omitempty"`
	LeaseType     string `json:"leaseType,omitempty"`

	RemainingTerm numrange.Range  `json:"remainingTerm"`
	Tenancy       Tenancy         `json:"tenancy,omitempty"`
	Measurement   MeasurementType `json:"measurementType,omitempty"`

	Units        numrange.Range `json:"units"`
	Sqft         numrange.Range `json:"sqft"`
	PricePerSqft numrange.Range `json:"pricePerSqft"`
	Acres        numrange.Range `json:"acres"`
	Occupancy    numrange.Range `json:"occupancy"`

	Timeline   TimelineType `json:"timelineType,omitempty"`
	TimePeriod string       `json:"timePeriod,omitempty"`
	FromDate   string       `json:"fromDate,omitempty"`
	ToDate     string       `json:"toDate,omitempty"`

	ListingStatus   []string `json:"listingStatus,omitempty"`
	OpportunityZone bool     `json:"opportunityZone,omitempty"`
	BrokerAgentCoOp bool     `json:"brokerAgentCoOp,omitempty"`
	OwnerUser       bool     `json:"ownerUser,omitempty"`
	PropertyClass   []string `json:"propertyClass,omitempty"`
}

// DefaultFilterValues returns the documented defaults: unrestricted
// property types, full-width ranges, the default listing status subset.
func DefaultFilterValues() FilterValues {
	return FilterValues{
		PropertyTypes: taxonomy.DefaultSelection(),
		Price:         numrange.Price.FullRange(),
		CapRate:       numrange.CapRate.FullRange(),
		RemainingTerm: numrange.RemainingTerm.FullRange(),
		Measurement:   MeasureUnits,
		Units:         numrange.Units.FullRange(),
		Sqft:          numrange.Sqft.FullRange(),
		PricePerSqft:  numrange.PricePerSqft.FullRange(),
		Acres:         numrange.Acres.FullRange(),
		Occupancy:     numrange.Occupancy.FullRange(),
		ListingStatus: DefaultListingStatus(),
	}
}

// Reset restores the defaults in place.
func (f *FilterValues) Reset() {
	*f = DefaultFilterValues()
}

// Snapshot returns a deep copy safe to hand to the codec or the saved
// filter store while widgets keep mutating the original.
func (f *FilterValues) Snapshot() FilterValues {
	out := *f
	out.Location = slices.Clone(f.Location)
	out.PropertyTypes = f.PropertyTypes.Clone()
	out.ListingStatus = slices.Clone(f.ListingStatus)
	out.PropertyClass = slices.Clone(f.PropertyClass)
	return out
}

// Equal compares two snapshots field by field, treating set-valued fields
// as ordered sets.
func (f FilterValues) Equal(other FilterValues) bool {
	return slices.Equal(f.Location, other.Location) &&
		f.Keywords == other.Keywords &&
		slices.Equal(f.PropertyTypes, other.PropertyTypes) &&
		f.Price.Equals(other.Price) &&
		f.ExcludeUnpriced == other.ExcludeUnpriced &&
		f.CapRate.Equals(other.CapRate) &&
		f.TenantBrand == other.TenantBrand &&
		f.BrokerAgent == other.BrokerAgent &&
		f.BrokerageShop == other.BrokerageShop &&
		f.TenantCredit == other.TenantCredit &&
		f.LeaseType == other.LeaseType &&
		f.RemainingTerm.Equals(other.RemainingTerm) &&
		f.Tenancy == other.Tenancy &&
		f.Measurement == other.Measurement &&
		f.Units.Equals(other.Units) &&
		f.Sqft.Equals(other.Sqft) &&
		f.PricePerSqft.Equals(other.PricePerSqft) &&
		f.Acres.Equals(other.Acres) &&
		f.Occupancy.Equals(other.Occupancy) &&
		f.Timeline == other.Timeline &&
		f.TimePeriod == other.TimePeriod &&
		f.FromDate == other.FromDate &&
		f.ToDate == other.ToDate &&
		slices.Equal(f.ListingStatus, other.ListingStatus) &&
		f.OpportunityZone == other.OpportunityZone &&
		f.BrokerAgentCoOp == other.BrokerAgentCoOp &&
		f.OwnerUser == other.OwnerUser &&
		slices.Equal(f.PropertyClass, other.PropertyClass)
}

// ValidPropertyClasses is the closed class vocabulary.
var ValidPropertyClasses = map[string]struct{}{
	"A": {}, "B": {}, "C": {}, "D": {},
}

// ValidStatuses is the closed listing status vocabulary.
var ValidStatuses = map[string]struct{}{
	StatusActive:         {},
	StatusOnMarket:       {},
	StatusAuction:        {},
	StatusHighestAndBest: {},
	StatusUnderContract:  {},
	StatusPending:        {},
	StatusSold:           {},
	StatusOffMarket:      {},
}
