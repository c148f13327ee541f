package integrate

import (
	"errors"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/domain"
	"github.com/katalvlaran/quadra/quadrature"
	"github.com/katalvlaran/quadra/riemann"
)

// ErrDomainViolation indicates the domain screen rejected the interval.
// The wrapping error carries the offending point and screen stage; no
// approximation is attempted once this fires.
var ErrDomainViolation = errors.New("integrate: function undefined inside interval")

// Request describes one integration: the capability, the raw bounds
// (validated by Run, never auto-swapped), the partition and the rule.
type Request struct {
	F      core.Function
	A      float64
	B      float64
	N      int
	Method core.Method

	// WithExact additionally computes the quadrature reference and the
	// error comparison.
	WithExact bool
}

// Options aggregates the tuning of the two configurable stages.
type Options struct {
	Domain     domain.Options
	Quadrature quadrature.Options
}

// DefaultOptions returns the canonical defaults of both stages.
func DefaultOptions() Options {
	return Options{
		Domain:     domain.DefaultOptions(),
		Quadrature: quadrature.DefaultOptions(),
	}
}

// ExactValue is the possibly-absent quadrature reference. Defined is
// false when quadrature failed; Value is then NaN.
type ExactValue struct {
	Value   float64
	Defined bool
}

// Outcome is the result of one Run.
type Outcome struct {
	// Approximation is always present on success.
	Approximation riemann.Result

	// Exact carries the quadrature reference when requested and available.
	Exact ExactValue

	// Comparison is non-nil only when the exact reference is available.
	Comparison *quadrature.Comparison
}
