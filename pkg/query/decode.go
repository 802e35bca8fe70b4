package query

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/crebase/listing-finder/pkg/numrange"
	"github.com/crebase/listing-finder/pkg/taxonomy"
	"github.com/crebase/listing-finder/pkg/types"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// rawParams is the flat string surface gorilla/schema decodes before the
// hand conversion into typed filter state.
type rawParams struct {
	Location        string `schema:"location"`
	Keywords        string `schema:"keywords"`
	PropertyTypes   string `schema:"property_types"`
	MinPrice        string `schema:"min_price"`
	MaxPrice        string `schema:"max_price"`
	MinRate         string `schema:"min_rate"`
	MaxRate         string `schema:"max_rate"`
	ExcludeUnpriced string `schema:"exclude_unpriced"`
	ExcludeUndiscl  string `schema:"exclude_undisclosed_rate"`
	MinCapRate      string `schema:"min_cap_rate"`
	MaxCapRate      string `schema:"max_cap_rate"`
	TenantBrand     string `schema:"tenant_brand"`
	RemainingTerm   string `schema:"remaining_term"`
	BrokerAgent     string `schema:"broker_agent"`
	BrokerageShop   string `schema:"brokerage_shop"`
	Tenancy         string `schema:"tenancy"`
	LeaseType       string `schema:"lease_type"`
	Measurement     string `schema:"measurement_type"`
	MinUnits        string `schema:"min_units"`
	MaxUnits        string `schema:"max_units"`
	MinSqft         string `schema:"min_sqft"`
	MaxSqft         string `schema:"max_sqft"`
	MinPpsf         string `schema:"min_price_per_sqft"`
	MaxPpsf         string `schema:"max_price_per_sqft"`
	MinAcres        string `schema:"min_acres"`
	MaxAcres        string `schema:"max_acres"`
	TenantCredit    string `schema:"tenant_credit"`
	MinOccupancy    string `schema:"min_occupancy"`
	MaxOccupancy    string `schema:"max_occupancy"`
	TimelineType    string `schema:"timeline_type"`
	FromDate        string `schema:"from_date"`
	ToDate          string `schema:"to_date"`
	TimePeriod      string `schema:"time_period"`
	ListingStatus   string `schema:"listing_status"`
	OpportunityZone string `schema:"opportunity_zone"`
	PropertyClass   string `schema:"property_class"`
	BrokerCoOp      string `schema:"broker_agent_co_op"`
	OwnerUser       string `schema:"owner_user"`
}

// Decode reconstructs filter state from query parameters, best effort:
// unknown or malformed parameters fall back to the field default instead
// of erroring.
func Decode(params url.Values) types.FilterValues {
	raw := rawParams{}
	// Partial decode is fine; whatever landed in raw is used.
	_ = decoder.Decode(&raw, params)
	f := types.DefaultFilterValues()

	f.Location = splitList(raw.Location)
	f.Keywords = raw.Keywords
	if sel := decodeSelection(raw.PropertyTypes); sel != nil {
		f.PropertyTypes = sel
	}

	decodeRangeInto(&f.Price, numrange.Price, firstOf(raw.MinPrice, raw.MinRate), firstOf(raw.MaxPrice, raw.MaxRate))
	f.ExcludeUnpriced = isFlag(firstOf(raw.ExcludeUnpriced, raw.ExcludeUndiscl))
	decodeRangeInto(&f.CapRate, numrange.CapRate, raw.MinCapRate, raw.MaxCapRate)
	decodeRangeInto(&f.Units, numrange.Units, raw.MinUnits, raw.MaxUnits)
	decodeRangeInto(&f.Sqft, numrange.Sqft, raw.MinSqft, raw.MaxSqft)
	decodeRangeInto(&f.PricePerSqft, numrange.PricePerSqft, raw.MinPpsf, raw.MaxPpsf)
	decodeRangeInto(&f.Acres, numrange.Acres, raw.MinAcres, raw.MaxAcres)
	decodeRangeInto(&f.Occupancy, numrange.Occupancy, raw.MinOccupancy, raw.MaxOccupancy)
	f.RemainingTerm = decodeTerm(raw.RemainingTerm)

	f.TenantBrand = raw.TenantBrand
	f.BrokerAgent = raw.BrokerAgent
	f.BrokerageShop = raw.BrokerageShop
	f.TenantCredit = raw.TenantCredit
	f.LeaseType = raw.LeaseType
	if t := types.Tenancy(raw.Tenancy); validTenancy(t) {
		f.Tenancy = t
	}
	if m := types.MeasurementType(raw.Measurement); validMeasurement(m) {
		f.Measurement = m
	}

	switch types.TimelineType(raw.TimelineType) {
	case types.TimelineTimePeriod:
		f.Timeline = types.TimelineTimePeriod
		f.TimePeriod = raw.TimePeriod
	case types.TimelineCustom:
		f.Timeline = types.TimelineCustom
		f.FromDate = raw.FromDate
		f.ToDate = raw.ToDate
	}

	if statuses := decodeStatuses(raw.ListingStatus); statuses != nil {
		f.ListingStatus = statuses
	}
	f.OpportunityZone = isFlag(raw.OpportunityZone)
	f.BrokerAgentCoOp = isFlag(raw.BrokerCoOp)
	f.OwnerUser = isFlag(raw.OwnerUser)
	f.PropertyClass = decodeClasses(raw.PropertyClass)

	return f
}

func decodeRangeInto(r *numrange.Range, spec numrange.Spec, minRaw, maxRaw string) {
	if minRaw != "" {
		r.Min = spec.ParseMin(minRaw)
	}
	if maxRaw != "" {
		r.Max = spec.ParseMax(maxRaw)
	}
}

func decodeTerm(raw string) numrange.Range {
	spec := numrange.RemainingTerm
	full := spec.FullRange()
	if raw == "" {
		return full
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return full
	}
	return numrange.Range{
		Min: spec.ParseMin(parts[0]),
		Max: spec.ParseMax(parts[1]),
	}
}

func decodeSelection(raw string) taxonomy.Selection {
	items := splitList(raw)
	if items == nil {
		return nil
	}
	sel := taxonomy.Selection{}
	for _, item := range items {
		if item == taxonomy.All {
			return taxonomy.DefaultSelection()
		}
		if !taxonomy.IsKnownKey(item) {
			continue
		}
		sel = append(sel, item)
	}
	if len(sel) == 0 {
		return nil
	}
	return sel
}

func decodeStatuses(raw string) []string {
	items := splitList(raw)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := types.ValidStatuses[s]; ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeClasses(raw string) []string {
	items := splitList(raw)
	out := make([]string, 0, len(items))
	for _, c := range items {
		if _, ok := types.ValidPropertyClasses[c]; ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isFlag(raw string) bool {
	return raw == "1"
}

func validTenancy(t types.Tenancy) bool {
	_, ok := types.ValidTenancies[t]
	return ok
}

func validMeasurement(m types.MeasurementType) bool {
	_, ok := types.ValidMeasurementTypes[m]
	return ok
}
