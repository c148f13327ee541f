// Package riemann approximates definite integrals with Riemann sums over
// a uniform partition of the interval.
//
// 🚀 What is a Riemann sum?
//
//	Split [A,B] into n equal subintervals of width Δx=(B-A)/n, sample the
//	integrand once (or twice) per subinterval, and accumulate value·Δx.
//	The four sampling rules:
//	  • Left      — left edge of each subinterval
//	  • Right     — right edge
//	  • Midpoint  — subinterval center (best bang-for-buck on smooth f)
//	  • Trapezoid — average of both edges (the trapezoid rule)
//
// ✨ Guarantees:
//   - Deterministic: subintervals are summed strictly in index order
//     0..n-1, so identical inputs produce bit-identical results.
//   - Pure fold: no hidden state, no randomness, no partial results —
//     an undefined sample anywhere aborts with a typed error.
//   - Input-contract violations (n < 1, unknown rule) are sentinel
//     errors, never computed garbage.
//
// ⚙️ Usage:
//
//	iv, _ := core.NewInterval(0, 1)
//	res, err := riemann.Approximate(core.FuncOf(func(x float64) float64 { return x * x }), iv, 1000, core.Midpoint)
//	// res.Value ≈ 1/3
//
// Complexity: O(n) evaluations (2n for Trapezoid), O(1) memory.
package riemann
