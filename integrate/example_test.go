package integrate_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/integrate"
)

// ExampleRun approximates ∫₀¹ x² dx with the midpoint rule and checks it
// against the adaptive-quadrature reference.
func ExampleRun() {
	out, err := integrate.Run(integrate.Request{
		F:         core.FuncOf(func(x float64) float64 { return x * x }),
		A:         0,
		B:         1,
		N:         100,
		Method:    core.Midpoint,
		WithExact: true,
	}, integrate.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("approx=%.6f (%s, n=%d)\n", out.Approximation.Value, out.Approximation.Method, out.Approximation.N)
	fmt.Printf("exact=%.6f\n", out.Exact.Value)
	fmt.Printf("abs_error=%.2e\n", out.Comparison.AbsError)

	// Output:
	// approx=0.333325 (midpoint, n=100)
	// exact=0.333333
	// abs_error=8.33e-06
}

// ExampleRun_domainViolation shows the gate rejecting 1/x over [-1,1]
// before any approximation runs.
func ExampleRun_domainViolation() {
	_, err := integrate.Run(integrate.Request{
		F:      core.FuncOf(func(x float64) float64 { return 1 / x }),
		A:      -1,
		B:      1,
		N:      1000,
		Method: core.Trapezoid,
	}, integrate.DefaultOptions())

	fmt.Println(errors.Is(err, integrate.ErrDomainViolation))

	// Output:
	// true
}
