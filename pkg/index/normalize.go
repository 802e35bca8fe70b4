package index

import (
	"strconv"
	"strings"
)

// Ordered alias tables for the numeric detail fields. The first label
// present in a listing's detail map wins; later spellings are fallbacks
// from older feed shapes.
var (
	sqftAliases         = []string{"Square Feet", "Sqft", "Square Footage"}
	buildingSqftAliases = []string{"Building Square Feet", "Building Sqft", "Building Size"}
	unitAliases         = []string{"Units", "Unit Count", "Keys", "Pads", "Pumps"}
	bedAliases          = []string{"Bedrooms", "Beds", "Bed Count"}
	capRateAliases      = []string{"Cap Rate", "CAP Rate", "Capitalization Rate"}
	noiAliases          = []string{"NOI", "Net Operating Income"}
	acreAliases         = []string{"Acres", "Acreage", "Lot Size (Acres)"}
	occupancyAliases    = []string{"Occupancy", "Occupancy %", "Occupancy Rate"}
)

// Normalize resolves the alias table into typed numeric fields. Missing or
// non numeric details resolve to 0.
func Normalize(l Listing) NormalizedListing {
	return NormalizedListing{
		Listing:      l,
		Sqft:         detailNumber(l.Details, sqftAliases),
		BuildingSqft: detailNumber(l.Details, buildingSqftAliases),
		UnitCount:    detailNumber(l.Details, unitAliases),
		Beds:         detailNumber(l.Details, bedAliases),
		CapRate:      detailNumber(l.Details, capRateAliases),
		Noi:          detailNumber(l.Details, noiAliases),
		Acres:        detailNumber(l.Details, acreAliases),
		Occupancy:    detailNumber(l.Details, occupancyAliases),
	}
}

// NormalizeAll maps a raw feed batch into normalized records.
func NormalizeAll(listings []Listing) []NormalizedListing {
	out := make([]NormalizedListing, len(listings))
	for i, l := range listings {
		out[i] = Normalize(l)
	}
	return out
}

func detailNumber(details map[string]any, aliases []string) float64 {
	for _, label := range aliases {
		raw, ok := details[label]
		if !ok {
			continue
		}
		if v, ok := asNumber(raw); ok {
			return v
		}
	}
	return 0
}

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, v)
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
