package sorting

import (
	"slices"

	"github.com/crebase/listing-finder/pkg/index"
)

type SortKey string

const (
	Newest           SortKey = "newest"
	Oldest           SortKey = "oldest"
	RecentlyUpdated  SortKey = "recently-updated"
	PriceHighToLow   SortKey = "price-high-to-low"
	PriceLowToHigh   SortKey = "price-low-to-high"
	PpsfHighToLow    SortKey = "price-per-sqft-high-to-low"
	PpsfLowToHigh    SortKey = "price-per-sqft-low-to-high"
	SqftHighToLow    SortKey = "sqft-high-to-low"
	SqftLowToHigh    SortKey = "sqft-low-to-high"
	BldgSqftHighLow  SortKey = "building-sqft-high-to-low"
	BldgSqftLowHigh  SortKey = "building-sqft-low-to-high"
	UnitsHighToLow   SortKey = "units-high-to-low"
	UnitsLowToHigh   SortKey = "units-low-to-high"
	BedsHighToLow    SortKey = "beds-high-to-low"
	BedsLowToHigh    SortKey = "beds-low-to-high"
	CapRateHighToLow SortKey = "cap-rate-high-to-low"
	CapRateLowToHigh SortKey = "cap-rate-low-to-high"
	NoiHighToLow     SortKey = "noi-high-to-low"
	NoiLowToHigh     SortKey = "noi-low-to-high"
	AcresHighToLow   SortKey = "acres-high-to-low"
	AcresLowToHigh   SortKey = "acres-low-to-high"
	EndingSoonest    SortKey = "ending-soonest"
)

type scoreFn func(l index.NormalizedListing) float64

type sortDef struct {
	score     scoreFn
	ascending bool
}

// comparators is the fixed dispatch table. Every entry scores a listing
// from its normalized fields; the raw detail map is never consulted here.
var comparators = map[SortKey]sortDef{
	Newest:           {score: func(l index.NormalizedListing) float64 { return float64(l.Created.UnixNano()) }},
	Oldest:           {score: func(l index.NormalizedListing) float64 { return float64(l.Created.UnixNano()) }, ascending: true},
	RecentlyUpdated:  {score: func(l index.NormalizedListing) float64 { return float64(l.Updated.UnixNano()) }},
	PriceHighToLow:   {score: func(l index.NormalizedListing) float64 { return l.Price }},
	PriceLowToHigh:   {score: func(l index.NormalizedListing) float64 { return l.Price }, ascending: true},
	PpsfHighToLow:    {score: func(l index.NormalizedListing) float64 { return l.PricePerSqft() }},
	PpsfLowToHigh:    {score: func(l index.NormalizedListing) float64 { return l.PricePerSqft() }, ascending: true},
	SqftHighToLow:    {score: func(l index.NormalizedListing) float64 { return l.Sqft }},
	SqftLowToHigh:    {score: func(l index.NormalizedListing) float64 { return l.Sqft }, ascending: true},
	BldgSqftHighLow:  {score: func(l index.NormalizedListing) float64 { return l.BuildingSqft }},
	BldgSqftLowHigh:  {score: func(l index.NormalizedListing) float64 { return l.BuildingSqft }, ascending: true},
	UnitsHighToLow:   {score: func(l index.NormalizedListing) float64 { return l.UnitCount }},
	UnitsLowToHigh:   {score: func(l index.NormalizedListing) float64 { return l.UnitCount }, ascending: true},
	BedsHighToLow:    {score: func(l index.NormalizedListing) float64 { return l.Beds }},
	BedsLowToHigh:    {score: func(l index.NormalizedListing) float64 { return l.Beds }, ascending: true},
	CapRateHighToLow: {score: func(l index.NormalizedListing) float64 { return l.CapRate }},
	CapRateLowToHigh: {score: func(l index.NormalizedListing) float64 { return l.CapRate }, ascending: true},
	NoiHighToLow:     {score: func(l index.NormalizedListing) float64 { return l.Noi }},
	NoiLowToHigh:     {score: func(l index.NormalizedListing) float64 { return l.Noi }, ascending: true},
	AcresHighToLow:   {score: func(l index.NormalizedListing) float64 { return l.Acres }},
	AcresLowToHigh:   {score: func(l index.NormalizedListing) float64 { return l.Acres }, ascending: true},
	EndingSoonest:    {score: func(l index.NormalizedListing) float64 { return float64(l.EndTime().UnixNano()) }, ascending: true},
}

// IsValid reports whether key names a known comparator.
func (k SortKey) IsValid() bool {
	_, ok := comparators[k]
	return ok
}

// Sort returns a newly ordered copy of listings. Unknown keys fall back to
// Newest. Ties break on listing id in both directions, so re-sorting an
// unchanged list never reorders it.
func Sort(listings []index.NormalizedListing, key SortKey) []index.NormalizedListing {
	def, ok := comparators[key]
	if !ok {
		def = comparators[Newest]
	}
	out := slices.Clone(listings)
	slices.SortFunc(out, func(a, b index.NormalizedListing) int {
		av, bv := def.score(a), def.score(b)
		if def.ascending {
			av, bv = bv, av
		}
		if av > bv {
			return -1
		}
		if av < bv {
			return 1
		}
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})
	return out
}
