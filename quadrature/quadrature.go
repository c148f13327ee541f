// Package quadrature - adaptive bisection around gonum's fixed rule.
//
// Design principles:
//   - The fixed-order primitive (quad.Fixed with Legendre nodes) is a
//     black box; adaptivity, error estimation and failure handling live
//     entirely in this wrapper.
//   - Fail-typed: every internal evaluation fault becomes
//     ErrQuadratureFailed. No panic crosses the package boundary.
//   - Deterministic: panels are refined left-to-right, sequentially
//     (quad.Fixed runs with concurrency disabled).
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/quadra/core"
)

// Exact integrates f over iv with adaptive Gauss–Legendre quadrature.
//
// Contracts:
//   - f must be non-nil; opts fields must be in range.
//   - On success, Result.Value is finite and Result.ErrEstimate holds
//     the accumulated panel error estimate.
//   - ErrQuadratureFailed is returned when the integrand is undefined
//     anywhere the rule samples, or a panel fails to converge within
//     opts.MaxDepth.
//
// Complexity: O(Order) evaluations per panel; panel count depends on
// the integrand and is capped by MaxDepth.
func Exact(f core.Function, iv core.Interval, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, core.ErrNilFunction
	}

	ad := &adaptive{opts: opts}
	// Bridge the capability into the plain callback quad.Fixed expects.
	// An undefined sample surfaces as NaN and raises the sticky flag,
	// which aborts the refinement instead of churning on NaN panels.
	ad.g = func(x float64) float64 {
		sp := core.Sample(f, x)
		if !sp.Defined {
			ad.undefined = true

			return math.NaN()
		}

		return sp.Value
	}

	whole := quad.Fixed(ad.g, iv.A, iv.B, opts.Order, nil, 0)
	value, estimate, ok := ad.refine(iv.A, iv.B, whole, opts.MaxDepth)
	if !ok || ad.undefined || math.IsNaN(value) || math.IsInf(value, 0) {
		return Result{}, ErrQuadratureFailed
	}

	return Result{Value: value, ErrEstimate: estimate}, nil
}

// adaptive carries the refinement state for one Exact call. The
// undefined flag is sticky: once any sample comes back undefined the
// whole computation is doomed, so refinement stops descending.
type adaptive struct {
	g         func(float64) float64
	opts      Options
	undefined bool
}

// refine accepts or bisects one panel. whole is the fixed-rule estimate
// over [a,b]; the panel is accepted when the whole-vs-halves difference
// meets either tolerance, otherwise both halves are refined with one
// less level of depth budget.
func (ad *adaptive) refine(a, b, whole float64, depth int) (value, estimate float64, ok bool) {
	if ad.undefined {
		return 0, 0, false
	}

	mid := a + (b-a)/2
	left := quad.Fixed(ad.g, a, mid, ad.opts.Order, nil, 0)
	right := quad.Fixed(ad.g, mid, b, ad.opts.Order, nil, 0)

	halves := left + right
	diff := math.Abs(halves - whole)
	if diff <= ad.opts.AbsTol || diff <= ad.opts.RelTol*math.Abs(halves) {
		return halves, diff, true
	}
	if depth <= 0 {
		return 0, 0, false // not converged; NaN panels land here too
	}

	lv, le, lok := ad.refine(a, mid, left, depth-1)
	if !lok {
		return 0, 0, false
	}
	rv, re, rok := ad.refine(mid, b, right, depth-1)
	if !rok {
		return 0, 0, false
	}

	return lv + rv, le + re, true
}
