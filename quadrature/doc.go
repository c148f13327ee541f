// Package quadrature produces reference ("exact") integral values by
// wrapping gonum's fixed-order Gauss–Legendre rule in adaptive bisection,
// and compares approximations against them.
//
// 🚀 How the adaptive wrapper works:
//
//	For a panel [a,b], integrate once over the whole panel and once over
//	each half with the same fixed-order rule. The difference between the
//	whole-panel estimate and the sum of the halves is the local error
//	estimate; panels that miss the tolerance are bisected recursively up
//	to MaxDepth. The returned ErrEstimate is the accumulated per-panel
//	difference — an estimate, not a bound.
//
// ✨ Failure policy:
//   - An undefined integrand sample (NaN/Inf/error/panic) anywhere inside
//     the recursion, or a panel still failing at MaxDepth, yields
//     ErrQuadratureFailed — an explicit "no exact value available",
//     never a raised fault. Downstream comparison code must handle it.
//
// ⚙️ Usage:
//
//	iv, _ := core.NewInterval(0, math.Pi)
//	res, err := quadrature.Exact(core.FuncOf(math.Sin), iv, quadrature.DefaultOptions())
//	// res.Value ≈ 2
//
//	cmp := quadrature.Compare(1.99, res.Value)
//	// cmp.AbsError ≈ 0.01, cmp.RelDefined == true
//
// Complexity: O(Order · panels); panel count is driven by how sharply
// the integrand varies and is capped by MaxDepth.
package quadrature
