package numrange

// Bound is one end of a numeric range. The upper end of a range can be
// open ("no ceiling from the user's point of view"), which the UI renders
// with a trailing "+". An open bound still carries the value it sits at so
// clamping against the opposite end stays well defined.
type Bound struct {
	Value float64 `json:"value"`
	Open  bool    `json:"open,omitempty"`
}

func Bounded(value float64) Bound {
	return Bound{Value: value}
}

func Unbounded(at float64) Bound {
	return Bound{Value: at, Open: true}
}

// Range is a min/max pair. Min is always a closed bound, Max may be open.
type Range struct {
	Min Bound `json:"min"`
	Max Bound `json:"max"`
}

func (r Range) Equals(other Range) bool {
	return r.Min == other.Min && r.Max == other.Max
}
