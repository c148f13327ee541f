package core

import "math"

// Sample evaluates f at x inside a scoped failure boundary and returns a
// SamplePoint. Every failure mode — an Evaluate error, a NaN or infinite
// result, or a panic from arbitrary user code — is normalized into
// Defined=false with a NaN Value. Callers never observe a raw fault.
//
// Contract:
//   - f must be non-nil (a nil f yields an undefined point, not a panic).
//   - No side effects beyond calling f once.
//
// Complexity: one Evaluate call, O(1) beyond it.
func Sample(f Function, x float64) (sp SamplePoint) {
	sp = SamplePoint{X: x, Value: math.NaN()}
	if f == nil {
		return sp
	}

	// The evaluated function is arbitrary user code; a panic here must
	// surface as an undefined point, never escape to the caller.
	defer func() {
		if recover() != nil {
			sp.Value = math.NaN()
			sp.Defined = false
		}
	}()

	v, err := f.Evaluate(x)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return sp
	}

	sp.Value = v
	sp.Defined = true

	return sp
}
