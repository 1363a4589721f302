package numeric

import (
	"errors"
	"fmt"
)

// ErrDomain matches every *DomainError with errors.Is
var ErrDomain = errors.New("domain error")

// DomainError reports an input that makes a formula undefined or physically
// meaningless (zero width, a_s >= h, zero stirrup spacing, ...).
type DomainError struct {
	Op     string  // calculation that rejected the input
	Param  string  // offending parameter
	Value  float64 // value supplied
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: invalid %s=%g: %s", e.Op, e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Domain builds a *DomainError
func Domain(op, param string, value float64, reason string) error {
	return &DomainError{Op: op, Param: param, Value: value, Reason: reason}
}

// RangeWarning flags a value outside the documented engineering range.
// It never aborts a calculation; results carry it alongside the number.
type RangeWarning struct {
	Param string
	Value float64
	Range Range
}

func (w RangeWarning) String() string {
	return fmt.Sprintf("%s=%g outside %g-%g", w.Param, w.Value, w.Range.Min, w.Range.Max)
}

// CheckRange returns a warning and true when v is outside r
func CheckRange(param string, v float64, r Range) (RangeWarning, bool) {
	if r.Contains(v) {
		return RangeWarning{}, false
	}
	return RangeWarning{Param: param, Value: v, Range: r}, true
}
