package riemann

import (
	"errors"

	"github.com/katalvlaran/quadra/core"
)

var (
	// ErrBadSubdivisions indicates a subdivision count below 1.
	ErrBadSubdivisions = errors.New("riemann: subdivision count must be >= 1")

	// ErrUndefinedSample indicates the integrand was undefined at a point
	// the selected rule needed. The wrapping error carries the coordinate.
	ErrUndefinedSample = errors.New("riemann: integrand undefined at sample point")
)

// Result is one finished approximation: the accumulated value together
// with the rule and subdivision count that produced it.
type Result struct {
	// Value is the Riemann sum over all n subintervals.
	Value float64

	// Method is the sampling rule used.
	Method core.Method

	// N is the subdivision count.
	N int
}
