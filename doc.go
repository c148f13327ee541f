// Package quadra approximates and validates definite integrals of
// single-variable real functions over closed intervals.
//
// 🚀 What is quadra?
//
//	A small, deterministic numerical-integration toolkit built around
//	three cooperating pieces:
//		• Domain screen: decides whether a function can be safely sampled
//		  on an interval (endpoints, dense grid, statistical gap
//		  refinement, special-point probes)
//		• Riemann sums: left, right, midpoint and trapezoid rules over a
//		  uniform partition
//		• Exact reference: adaptive Gauss–Legendre quadrature plus
//		  absolute/relative error comparison
//
// ✨ Why choose quadra?
//
//   - Fail-typed, never fail-loud – NaN, ±Inf, errors and panics from the
//     integrand all become data, not crashes
//   - Bit-reproducible – identical inputs give identical sums
//   - Capability-based – the integrand is an opaque Evaluate(x) contract;
//     bring a closure, a compiled expression or a table
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/       — Function capability, Interval, Method, the Sampler
//	domain/     — layered interval-validity screen
//	riemann/    — the four partition rules
//	quadrature/ — adaptive exact reference + error comparison
//	integrate/  — the orchestrated end-to-end pipeline
//	expr/       — expression strings and a builtin function catalog
//	cmd/quadra/ — command-line front-end
//
// Quick taste:
//
//	out, _ := integrate.Run(integrate.Request{
//	    F: core.FuncOf(func(x float64) float64 { return x * x }),
//	    A: 0, B: 1, N: 1000, Method: core.Midpoint, WithExact: true,
//	}, integrate.DefaultOptions())
//	// out.Approximation.Value ≈ out.Exact.Value ≈ 1/3
//
//	go get github.com/katalvlaran/quadra
package quadra
