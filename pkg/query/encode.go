package query

import (
	"net/url"
	"slices"
	"strings"

	"github.com/crebase/listing-finder/pkg/numrange"
	"github.com/crebase/listing-finder/pkg/types"
)

// Query parameter names. Price and the unpriced flag are dual-written
// under legacy "rate" names older query shapes still use.
const (
	ParamLocation        = "location"
	ParamKeywords        = "keywords"
	ParamPropertyTypes   = "property_types"
	ParamMinPrice        = "min_price"
	ParamMaxPrice        = "max_price"
	ParamMinRate         = "min_rate"
	ParamMaxRate         = "max_rate"
	ParamExcludeUnpriced = "exclude_unpriced"
	ParamExcludeUndiscl  = "exclude_undisclosed_rate"
	ParamMinCapRate      = "min_cap_rate"
	ParamMaxCapRate      = "max_cap_rate"
	ParamTenantBrand     = "tenant_brand"
	ParamRemainingTerm   = "remaining_term"
	ParamBrokerAgent     = "broker_agent"
	ParamBrokerageShop   = "brokerage_shop"
	ParamTenancy         = "tenancy"
	ParamLeaseType       = "lease_type"
	ParamMeasurement     = "measurement_type"
	ParamMinUnits        = "min_units"
	ParamMaxUnits        = "max_units"
	ParamMinSqft         = "min_sqft"
	ParamMaxSqft         = "max_sqft"
	ParamMinPpsf         = "min_price_per_sqft"
	ParamMaxPpsf         = "max_price_per_sqft"
	ParamMinAcres        = "min_acres"
	ParamMaxAcres        = "max_acres"
	ParamTenantCredit    = "tenant_credit"
	ParamMinOccupancy    = "min_occupancy"
	ParamMaxOccupancy    = "max_occupancy"
	ParamTimelineType    = "timeline_type"
	ParamFromDate        = "from_date"
	ParamToDate          = "to_date"
	ParamTimePeriod      = "time_period"
	ParamListingStatus   = "listing_status"
	ParamOpportunityZone = "opportunity_zone"
	ParamPropertyClass   = "property_class"
	ParamBrokerCoOp      = "broker_agent_co_op"
	ParamOwnerUser       = "owner_user"
)

// Encode serializes a filter snapshot into query parameters, omitting
// every field that sits at its documented default so applied URLs carry
// only what the user actually narrowed.
func Encode(f types.FilterValues) url.Values {
	out := url.Values{}

	if len(f.Location) > 0 {
		out.Set(ParamLocation, strings.Join(f.Location, ","))
	}
	if f.Keywords != "" {
		out.Set(ParamKeywords, f.Keywords)
	}
	if len(f.PropertyTypes) > 0 && !f.PropertyTypes.IsAll() {
		out.Set(ParamPropertyTypes, strings.Join(f.PropertyTypes, ","))
	}

	encodeRange(out, numrange.Price, f.Price, ParamMinPrice, ParamMaxPrice)
	// Legacy duplicates for older query shapes.
	if v := out.Get(ParamMinPrice); v != "" {
		out.Set(ParamMinRate, v)
	}
	if v := out.Get(ParamMaxPrice); v != "" {
		out.Set(ParamMaxRate, v)
	}
	if f.ExcludeUnpriced {
		out.Set(ParamExcludeUnpriced, "1")
		out.Set(ParamExcludeUndiscl, "1")
	}

	encodeRange(out, numrange.CapRate, f.CapRate, ParamMinCapRate, ParamMaxCapRate)
	encodeRange(out, numrange.Units, f.Units, ParamMinUnits, ParamMaxUnits)
	encodeRange(out, numrange.Sqft, f.Sqft, ParamMinSqft, ParamMaxSqft)
	encodeRange(out, numrange.PricePerSqft, f.PricePerSqft, ParamMinPpsf, ParamMaxPpsf)
	encodeRange(out, numrange.Acres, f.Acres, ParamMinAcres, ParamMaxAcres)
	encodeRange(out, numrange.Occupancy, f.Occupancy, ParamMinOccupancy, ParamMaxOccupancy)

	if term := encodeTerm(f.RemainingTerm); term != "" {
		out.Set(ParamRemainingTerm, term)
	}

	setNonEmpty(out, ParamTenantBrand, f.TenantBrand)
	setNonEmpty(out, ParamBrokerAgent, f.BrokerAgent)
	setNonEmpty(out, ParamBrokerageShop, f.BrokerageShop)
	setNonEmpty(out, ParamTenantCredit, f.TenantCredit)
	setNonEmpty(out, ParamLeaseType, f.LeaseType)
	setNonEmpty(out, ParamTenancy, string(f.Tenancy))
	if f.Measurement != "" && f.Measurement != types.MeasureUnits {
		out.Set(ParamMeasurement, string(f.Measurement))
	}

	switch f.Timeline {
	case types.TimelineTimePeriod:
		out.Set(ParamTimelineType, string(types.TimelineTimePeriod))
		setNonEmpty(out, ParamTimePeriod, f.TimePeriod)
	case types.TimelineCustom:
		out.Set(ParamTimelineType, string(types.TimelineCustom))
		setNonEmpty(out, ParamFromDate, f.FromDate)
		setNonEmpty(out, ParamToDate, f.ToDate)
	}

	if len(f.ListingStatus) > 0 && !sameStatusSet(f.ListingStatus, types.DefaultListingStatus()) {
		out.Set(ParamListingStatus, strings.Join(f.ListingStatus, ","))
	}
	if f.OpportunityZone {
		out.Set(ParamOpportunityZone, "1")
	}
	if f.BrokerAgentCoOp {
		out.Set(ParamBrokerCoOp, "1")
	}
	if f.OwnerUser {
		out.Set(ParamOwnerUser, "1")
	}
	if len(f.PropertyClass) > 0 {
		out.Set(ParamPropertyClass, strings.Join(f.PropertyClass, ","))
	}

	return out
}

func encodeRange(out url.Values, spec numrange.Spec, r numrange.Range, minKey, maxKey string) {
	if r.Min.Value > spec.Floor {
		out.Set(minKey, spec.EncodeBound(r.Min, false))
	}
	if !r.Max.Open && r.Max.Value < spec.Ceil {
		out.Set(maxKey, spec.EncodeBound(r.Max, true))
	}
}

// encodeTerm renders the remaining term pair as "min-max", with the open
// ceiling rendered "100+". Returns empty at the full default width.
func encodeTerm(r numrange.Range) string {
	spec := numrange.RemainingTerm
	atFullWidth := r.Min.Value <= spec.Floor && (r.Max.Open || r.Max.Value >= spec.Ceil)
	if atFullWidth {
		return ""
	}
	return spec.EncodeBound(r.Min, false) + "-" + spec.EncodeBound(r.Max, true)
}

func setNonEmpty(out url.Values, key, value string) {
	if value != "" {
		out.Set(key, value)
	}
}

func sameStatusSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
