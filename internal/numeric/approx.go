package numeric

import "math"

// DefaultTolerance is used for "effectively equal" decisions inside the engine
const DefaultTolerance = 1e-9

// ApproxEqual reports whether |a-b| <= tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// InRange reports whether lo <= v <= hi
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Range is an inclusive engineering range, e.g. 10-50 MPa for concrete
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies inside the range
func (r Range) Contains(v float64) bool {
	return InRange(v, r.Min, r.Max)
}
