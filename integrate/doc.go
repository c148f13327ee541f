// Package integrate is the front door: it sequences the domain screen,
// the Riemann approximation and the optional exact reference into one
// deterministic pass.
//
// 🚀 Pipeline:
//
//	Run(req) =
//	  1. input contract   — interval, subdivision count, rule
//	  2. domain gate      — domain.Validate; an invalid verdict aborts
//	     the request with ErrDomainViolation before any approximation
//	  3. approximation    — riemann.Approximate with the requested rule
//	  4. reference        — when req.WithExact, quadrature.Exact plus
//	     Compare; a quadrature failure does NOT fail the request, it
//	     yields Outcome.Exact.Defined == false
//
// ✨ Guarantees:
//   - Stateless: nothing is cached between requests; concurrent Run
//     calls are independent.
//   - Single pass: no retries, no partial results after a gate failure.
//   - Fail-fast on contract violations, fail-soft on a missing exact
//     value — callers always get a usable Outcome or a typed error.
//
// ⚙️ Usage:
//
//	out, err := integrate.Run(integrate.Request{
//	  F: core.FuncOf(func(x float64) float64 { return x * x }),
//	  A: 0, B: 1,
//	  N: 1000, Method: core.Midpoint,
//	  WithExact: true,
//	}, integrate.DefaultOptions())
//	// out.Approximation.Value ≈ 1/3, out.Comparison.AbsError tiny
package integrate
