package index

import (
	"math"
	"time"
)

// Listing is a consumed listing record as delivered by the feed. Details
// is keyed by human labels and the same concept can arrive under several
// spellings ("Bedrooms" vs "Beds"); Normalize resolves those once at
// ingestion so nothing downstream touches the raw map again.
type Listing struct {
	Id         uint           `json:"id"`
	Title      string         `json:"title,omitempty"`
	Price      float64        `json:"price"`
	Status     string         `json:"status,omitempty"`
	Category   string         `json:"category,omitempty"`
	Location   string         `json:"location,omitempty"`
	Created    time.Time      `json:"created"`
	Updated    time.Time      `json:"updated"`
	AuctionEnd *time.Time     `json:"auctionEnd,omitempty"`
	SaleEnd    *time.Time     `json:"saleEnd,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// NormalizedListing carries the listing plus the numeric detail fields the
// sort engine reads, resolved from the alias table at ingestion time.
type NormalizedListing struct {
	Listing
	Sqft         float64 `json:"sqft,omitempty"`
	BuildingSqft float64 `json:"buildingSqft,omitempty"`
	UnitCount    float64 `json:"unitCount,omitempty"`
	Beds         float64 `json:"beds,omitempty"`
	CapRate      float64 `json:"capRate,omitempty"`
	Noi          float64 `json:"noi,omitempty"`
	Acres        float64 `json:"acres,omitempty"`
	Occupancy    float64 `json:"occupancy,omitempty"`
}

// PricePerSqft derives the ratio, treating a missing square footage as
// rate 0 instead of dividing by zero.
func (l NormalizedListing) PricePerSqft() float64 {
	if l.Sqft == 0 {
		return 0
	}
	return l.Price / l.Sqft
}

// EndTime is the "ending soonest" ordering key: auction end first, sale
// end as fallback, the maximum representable time when neither is set so
// such listings sort last.
func (l NormalizedListing) EndTime() time.Time {
	if l.AuctionEnd != nil {
		return *l.AuctionEnd
	}
	if l.SaleEnd != nil {
		return *l.SaleEnd
	}
	return maxTime
}

// Largest instant still representable in nanoseconds, so comparators can
// read it through UnixNano without overflow.
var maxTime = time.Unix(0, math.MaxInt64)
