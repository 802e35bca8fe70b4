package index

import (
	"testing"
	"time"
)

func TestNormalizeAliasOrder(t *testing.T) {
	l := Listing{
		Id: 1,
		Details: map[string]any{
			"Sqft":        float64(4200),
			"Square Feet": float64(4500),
			"Beds":        "12",
		},
	}
	n := Normalize(l)
	if n.Sqft != 4500 {
		t.Errorf("Expected the first alias spelling to win, got %f", n.Sqft)
	}
	if n.Beds != 12 {
		t.Errorf("Expected string detail to parse, got %f", n.Beds)
	}
}

func TestNormalizeMissingDetailsDefaultToZero(t *testing.T) {
	n := Normalize(Listing{Id: 2, Details: map[string]any{"Cap Rate": "n/a"}})
	if n.CapRate != 0 || n.Sqft != 0 || n.Noi != 0 {
		t.Errorf("Expected zero defaults, got %+v", n)
	}
}

func TestPricePerSqftZeroDenominator(t *testing.T) {
	n := Normalize(Listing{Id: 3, Price: 1_000_000})
	if got := n.PricePerSqft(); got != 0 {
		t.Errorf("Expected rate 0 for zero sqft, got %f", got)
	}
	n.Sqft = 5000
	if got := n.PricePerSqft(); got != 200 {
		t.Errorf("Expected 200, got %f", got)
	}
}

func TestEndTimeFallbackChain(t *testing.T) {
	auction := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sale := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	both := Normalize(Listing{Id: 4, AuctionEnd: &auction, SaleEnd: &sale})
	if !both.EndTime().Equal(auction) {
		t.Errorf("Auction end should win, got %v", both.EndTime())
	}
	saleOnly := Normalize(Listing{Id: 5, SaleEnd: &sale})
	if !saleOnly.EndTime().Equal(sale) {
		t.Errorf("Sale end should be the fallback, got %v", saleOnly.EndTime())
	}
	neither := Normalize(Listing{Id: 6})
	if !neither.EndTime().After(sale) {
		t.Errorf("Listings without end markers must sort last, got %v", neither.EndTime())
	}
}
