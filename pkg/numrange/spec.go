package numrange

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Unit int

const (
	UnitCount Unit = iota
	UnitCurrency
	UnitPercent
	UnitDecimal
)

// Spec describes one range filter: its hard floor and ceiling, the step a
// single slider notch moves, its display unit and the resync tolerance used
// when deciding whether an externally supplied display string should
// overwrite internal numeric state.
type Spec struct {
	Name      string
	Floor     float64
	Ceil      float64
	Step      float64
	Unit      Unit
	Tolerance float64
}

var (
	Price         = Spec{Name: "price", Floor: 0, Ceil: 10_000_000, Step: 50_000, Unit: UnitCurrency, Tolerance: 1000}
	CapRate       = Spec{Name: "cap_rate", Floor: 0, Ceil: 15, Step: 0.25, Unit: UnitPercent, Tolerance: 0.1}
	Occupancy     = Spec{Name: "occupancy", Floor: 0, Ceil: 100, Step: 1, Unit: UnitPercent, Tolerance: 0.1}
	Units         = Spec{Name: "units", Floor: 0, Ceil: 1000, Step: 1, Unit: UnitCount, Tolerance: 1}
	Sqft          = Spec{Name: "sqft", Floor: 0, Ceil: 500_000, Step: 1000, Unit: UnitCount, Tolerance: 1}
	PricePerSqft  = Spec{Name: "price_per_sqft", Floor: 0, Ceil: 2000, Step: 10, Unit: UnitCurrency, Tolerance: 1}
	Acres         = Spec{Name: "acres", Floor: 0, Ceil: 1000, Step: 1, Unit: UnitDecimal, Tolerance: 1}
	RemainingTerm = Spec{Name: "remaining_term", Floor: 0, Ceil: 100, Step: 1, Unit: UnitCount, Tolerance: 1}
)

// FullRange is the widest range a Spec allows: floor to open ceiling.
func (s Spec) FullRange() Range {
	return Range{Min: Bounded(s.Floor), Max: Unbounded(s.Ceil)}
}

// ParseValue recovers a number from a display string by stripping every
// non-numeric, non-dot character ("$1,250,000" -> 1250000). Returns false
// when nothing numeric remains.
func ParseValue(display string) (float64, bool) {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseMin parses a typed lower bound. Malformed input degrades to the
// floor. Anything outside the Spec's domain is clamped into it.
func (s Spec) ParseMin(display string) Bound {
	v, ok := ParseValue(display)
	if !ok {
		return Bounded(s.Floor)
	}
	return Bounded(clamp(v, s.Floor, s.Ceil))
}

// ParseMax parses a typed upper bound. A "+" suffix, or any value at or
// beyond the ceiling, yields an open bound at the ceiling. Malformed input
// degrades to the open ceiling.
func (s Spec) ParseMax(display string) Bound {
	v, ok := ParseValue(display)
	if !ok {
		return Unbounded(s.Ceil)
	}
	if strings.HasSuffix(strings.TrimSpace(display), "+") || v >= s.Ceil {
		return Unbounded(s.Ceil)
	}
	return Bounded(clamp(v, s.Floor, s.Ceil))
}

// ClampMin constrains an edited lower bound against the current upper
// bound, keeping at least one step of separation.
func (s Spec) ClampMin(v float64, max Bound) Bound {
	upper := max.Value - s.Step
	if max.Open {
		upper = s.Ceil - s.Step
	}
	return Bounded(clamp(v, s.Floor, upper))
}

// ClampMax constrains an edited upper bound against the current lower
// bound. Reaching the ceiling coerces the bound to open.
func (s Spec) ClampMax(v float64, min Bound) Bound {
	clamped := clamp(v, min.Value+s.Step, s.Ceil)
	if clamped >= s.Ceil {
		return Unbounded(s.Ceil)
	}
	return Bounded(clamped)
}

// NeedsResync reports whether an externally supplied display string has
// drifted from the internal value by more than the Spec tolerance. Small
// deltas are ignored so formatting round-trips don't fight keystrokes.
func (s Spec) NeedsResync(display string, current float64) bool {
	v, ok := ParseValue(display)
	if !ok {
		return false
	}
	return math.Abs(v-current) > s.Tolerance
}

// FormatMin renders the lower bound, always without a suffix.
func (s Spec) FormatMin(b Bound) string {
	return s.formatValue(b.Value)
}

// FormatMax renders the upper bound, with a "+" suffix iff it is open or
// sits at the ceiling.
func (s Spec) FormatMax(b Bound) string {
	out := s.formatValue(b.Value)
	if b.Open || b.Value >= s.Ceil {
		out += "+"
	}
	return out
}

func (s Spec) formatValue(v float64) string {
	switch s.Unit {
	case UnitCurrency:
		return "$" + groupThousands(v)
	case UnitPercent:
		return trimZeros(v) + "%"
	case UnitDecimal:
		return trimZeros(v)
	default:
		return groupThousands(v)
	}
}

func trimZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func groupThousands(v float64) string {
	whole := int64(v)
	raw := strconv.FormatInt(whole, 10)
	n := len(raw)
	if n <= 3 {
		return raw
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}

func clamp(value, min, max float64) float64 {
	if min > max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// EncodeBound renders a bound for query parameters: bare number, "+"
// suffixed at an open ceiling.
func (s Spec) EncodeBound(b Bound, isMax bool) string {
	raw := trimZeros(b.Value)
	if isMax && (b.Open || b.Value >= s.Ceil) {
		return fmt.Sprintf("%s+", trimZeros(s.Ceil))
	}
	return raw
}
