package numrange

import (
	"testing"
)

func TestParseValueStripsDecoration(t *testing.T) {
	v, ok := ParseValue("$1,250,000")
	if !ok || v != 1250000 {
		t.Errorf("Expected 1250000 but got %f (ok=%v)", v, ok)
	}
	v, ok = ParseValue("7.5%")
	if !ok || v != 7.5 {
		t.Errorf("Expected 7.5 but got %f (ok=%v)", v, ok)
	}
	_, ok = ParseValue("n/a")
	if ok {
		t.Errorf("Expected parse failure for non numeric input")
	}
}

func TestParseMinClampsToSpecDomain(t *testing.T) {
	// A price-shaped string pasted into a cap rate field must clamp to the
	// cap rate ceiling, not carry the huge value through.
	b := CapRate.ParseMin("$10,000,000+")
	if b.Value != 15 {
		t.Errorf("Expected clamp to 15 but got %f", b.Value)
	}
}

func TestParseMaxPlusSuffixIsOpen(t *testing.T) {
	b := Price.ParseMax("$10,000,000+")
	if !b.Open || b.Value != 10_000_000 {
		t.Errorf("Expected open ceiling bound, got %+v", b)
	}
	b = Price.ParseMax("$2,000,000")
	if b.Open || b.Value != 2_000_000 {
		t.Errorf("Expected closed bound at 2000000, got %+v", b)
	}
}

func TestParseMaxMalformedDegradesToCeiling(t *testing.T) {
	b := CapRate.ParseMax("whatever")
	if !b.Open || b.Value != 15 {
		t.Errorf("Expected open ceiling for malformed input, got %+v", b)
	}
}

func TestClampKeepsMinBelowMax(t *testing.T) {
	specs := []Spec{Price, CapRate, Occupancy, Units, Sqft, PricePerSqft, Acres, RemainingTerm}
	for _, s := range specs {
		max := Bounded(s.Floor + s.Step*4)
		min := s.ClampMin(s.Ceil*2, max)
		if min.Value > max.Value-s.Step {
			t.Errorf("%s: min %f not separated from max %f", s.Name, min.Value, max.Value)
		}
		newMax := s.ClampMax(s.Floor-100, min)
		if newMax.Value < min.Value+s.Step && !newMax.Open {
			t.Errorf("%s: max %f dropped below min %f", s.Name, newMax.Value, min.Value)
		}
	}
}

func TestClampMaxCoercesCeilingToOpen(t *testing.T) {
	b := CapRate.ClampMax(15, Bounded(0))
	if !b.Open {
		t.Errorf("Expected open bound at ceiling, got %+v", b)
	}
}

func TestFormatUpperBoundSuffix(t *testing.T) {
	if got := Price.FormatMax(Unbounded(10_000_000)); got != "$10,000,000+" {
		t.Errorf("Expected $10,000,000+ but got %s", got)
	}
	if got := Price.FormatMax(Bounded(750_000)); got != "$750,000" {
		t.Errorf("Expected $750,000 but got %s", got)
	}
	if got := Price.FormatMin(Bounded(0)); got != "$0" {
		t.Errorf("Expected $0 but got %s", got)
	}
	if got := CapRate.FormatMax(Unbounded(15)); got != "15%+" {
		t.Errorf("Expected 15%%+ but got %s", got)
	}
}

func TestNeedsResyncTolerance(t *testing.T) {
	if Price.NeedsResync("$500,500", 500000) {
		t.Errorf("Delta inside tolerance should not resync")
	}
	if !Price.NeedsResync("$505,000", 500000) {
		t.Errorf("Delta beyond tolerance should resync")
	}
	if CapRate.NeedsResync("7.55%", 7.5) {
		t.Errorf("0.05 is inside the percent tolerance")
	}
	if !CapRate.NeedsResync("7.7%", 7.5) {
		t.Errorf("0.2 is beyond the percent tolerance")
	}
}
