// Package domain decides whether a Function is safe to integrate over an
// interval: finite and defined at every point the samplers will touch.
//
// 🚀 What is the domain screen?
//
//	A layered, fail-closed heuristic that probes [A,B] where singularities
//	actually hide:
//	  1. Endpoints — the cheapest and most common failure site.
//	  2. A dense uniform grid across the whole interval.
//	  3. Statistical gap refinement — consecutive sample differences whose
//	     magnitude exceeds mean+GapSigma·stddev flag a "suspicious" cell,
//	     which is re-sampled densely.
//	  4. Special points — integers, small rationals j/i (i ≤ 20), and the
//	     constants π, e, √2, √3, each probed at p and p∓Tolerance. These
//	     are the classic zero-denominator and log-domain sites a uniform
//	     grid straddles without landing on.
//
// ✨ Guarantees and limits:
//   - Fail-closed: any undefined sample anywhere, including inside the
//     validator's own probing, yields an invalid Verdict. Never a panic.
//   - Short-circuit: the first offending point is reported in the Verdict
//     together with the stage that found it.
//   - Heuristic, not proof: the mean+3σ gap detector is a tunable outlier
//     screen with no guarantee against every discontinuity shape. A
//     function can pass validation and still misbehave between probes.
//
// ⚙️ Usage:
//
//	iv, _ := core.NewInterval(-1, 1)
//	v, err := domain.Validate(core.FuncOf(func(x float64) float64 { return 1 / x }), iv, domain.DefaultOptions())
//	// err == nil, v.Valid == false, v.Offending.X == 0, v.Stage == domain.StageSpecial
	// (a 1000-point grid over [-1,1] straddles 0; the special-point pass lands on it)
//
// Complexity: O(GridSamples) evaluations plus O(RefineSamples) per
// suspicious gap plus O(1) special-point probes (the special set is fixed).
package domain
