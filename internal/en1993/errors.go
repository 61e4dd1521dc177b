package en1993

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for inputs that make a formula undefined:
// non-positive thickness, stress or buckling factor
var ErrInvalidInput = errors.New("invalid input")

// RangeError reports a quantity outside the domain tabulated by the
// standard. No result is returned with it; Boundary holds the value of the
// nearest tabulated formula evaluated at Limit, for callers that choose to
// continue and flag the case for review.
type RangeError struct {
	Clause   string  // e.g. "EN1993-1-5 Table 4.1"
	Quantity string  // e.g. "stress ratio ψ"
	Value    float64 // offending value
	Limit    float64 // validated limit that was crossed
	Boundary float64 // formula value at the limit
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s = %.4g is outside the validated range (limit %.4g)",
		e.Clause, e.Quantity, e.Value, e.Limit)
}

// AsRangeError reports whether err is, or wraps, a *RangeError
func AsRangeError(err error) (*RangeError, bool) {
	var re *RangeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
