// Package riemann - the partition fold.
//
// Design principles:
//   - Strict sentinels: only errors from types.go / core, wrapped with
//     the offending coordinate where that helps diagnostics.
//   - Hot-path discipline: no allocations inside the loop.
//   - Determinism: index-ordered accumulation keeps floating-point
//     rounding reproducible across runs.
package riemann

import (
	"fmt"

	"github.com/katalvlaran/quadra/core"
)

// Approximate computes the Riemann sum of f over iv with n subintervals
// using rule m.
//
// Contracts:
//   - f non-nil, n ≥ 1, m one of the four rules (else sentinel errors).
//   - Any undefined sample (NaN/Inf/error/panic inside f) aborts with
//     ErrUndefinedSample wrapped around the coordinate; no partial sum
//     is returned.
//
// Complexity: O(n) time (Trapezoid evaluates 2 points per subinterval),
// O(1) space.
func Approximate(f core.Function, iv core.Interval, n int, m core.Method) (Result, error) {
	// Stage 1: input contract.
	if f == nil {
		return Result{}, core.ErrNilFunction
	}
	if n < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadSubdivisions, n)
	}
	if !m.Valid() {
		return Result{}, fmt.Errorf("%w: %d", core.ErrUnknownMethod, int(m))
	}

	// Stage 2: index-ordered fold over the partition.
	var (
		dx  = iv.Width() / float64(n)
		sum float64
		sp  core.SamplePoint
	)
	for i := 0; i < n; i++ {
		switch m {
		case core.Left:
			sp = core.Sample(f, iv.A+float64(i)*dx)
			if !sp.Defined {
				return Result{}, undefinedAt(sp.X)
			}
			sum += sp.Value * dx

		case core.Right:
			sp = core.Sample(f, iv.A+float64(i+1)*dx)
			if !sp.Defined {
				return Result{}, undefinedAt(sp.X)
			}
			sum += sp.Value * dx

		case core.Midpoint:
			sp = core.Sample(f, iv.A+(float64(i)+0.5)*dx)
			if !sp.Defined {
				return Result{}, undefinedAt(sp.X)
			}
			sum += sp.Value * dx

		case core.Trapezoid:
			left := core.Sample(f, iv.A+float64(i)*dx)
			if !left.Defined {
				return Result{}, undefinedAt(left.X)
			}
			right := core.Sample(f, iv.A+float64(i+1)*dx)
			if !right.Defined {
				return Result{}, undefinedAt(right.X)
			}
			sum += (left.Value + right.Value) / 2 * dx
		}
	}

	return Result{Value: sum, Method: m, N: n}, nil
}

// undefinedAt wraps ErrUndefinedSample with the probe coordinate.
func undefinedAt(x float64) error {
	return fmt.Errorf("%w: x=%g", ErrUndefinedSample, x)
}
