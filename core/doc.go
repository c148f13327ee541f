// Package core defines the primitive vocabulary shared by every quadra
// package: the Function capability, closed Intervals, sampling rules and
// the failure-normalizing Sampler.
//
// 🚀 What lives here?
//
//	• Function     — the opaque capability Evaluate(x) (float64, error)
//	• Interval     — immutable closed interval [A,B] with A < B
//	• SamplePoint  — (x, value, defined) triple produced by Sample
//	• Method       — the four Riemann sampling rules
//	• Sample       — evaluates a Function at a point, converting every
//	  failure mode (error, NaN, ±Inf, panic) into a single
//	  "undefined at point" marker
//
// ✨ Design rules:
//   - No algorithms here — integration, validation and quadrature live in
//     their own packages and only speak these types.
//   - Evaluation failures are data, not control flow: callers of Sample
//     never see a panic and never mistake an undefined value for 0.
//   - Everything is deterministic and side-effect free.
//
// ⚙️ Usage:
//
//	f := core.FuncOf(func(x float64) float64 { return x * x })
//	iv, err := core.NewInterval(0, 1)
//	sp := core.Sample(f, 0.5) // SamplePoint{X:0.5, Value:0.25, Defined:true}
//
// See riemann/ for approximation, domain/ for validity screening and
// quadrature/ for exact reference values.
package core
