// Package expr turns expression strings into core.Function capabilities,
// and ships a small catalog of ready-made named functions.
//
// 🚀 Two ways to get a Function:
//
//	• Compile("x^2 + sin(x)") — compiles the source once against a fixed
//	  math namespace (sin, cos, tan, exp, log, log10, sqrt, abs, pow,
//	  pi, e) and evaluates per x. Compilation is safe: the expression
//	  has no access to anything outside that namespace.
//	• Builtin("1/x") — looks up a pre-defined function by its canonical
//	  name. The catalog covers the usual teaching set: polynomials,
//	  trigonometry, exponentials and a few rational classics.
//
// ✨ Failure semantics:
//   - A malformed expression fails at Compile time, not at evaluation.
//   - Runtime faults (division structure, type drift) surface as an
//     Evaluate error; domain trouble (log of a negative, √ of a
//     negative) surfaces as NaN. Both collapse into the undefined
//     marker under core.Sample — never into 0, never into a panic.
//
// ⚙️ Usage:
//
//	f, err := expr.Compile("exp(-x^2)")
//	if err != nil { ... }
//	sp := core.Sample(f, 0) // SamplePoint{Value:1, Defined:true}
package expr
