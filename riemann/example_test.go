package riemann_test

import (
	"fmt"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/riemann"
)

// ExampleApproximate compares the four rules on f(x)=x over [0,1] with a
// coarse n=4 partition. The exact integral is 0.5; note how the one-sided
// rules bracket it while midpoint and trapezoid land on it for a linear f.
func ExampleApproximate() {
	f := core.FuncOf(func(x float64) float64 { return x })
	iv, _ := core.NewInterval(0, 1)

	for _, m := range []core.Method{core.Left, core.Right, core.Midpoint, core.Trapezoid} {
		res, err := riemann.Approximate(f, iv, 4, m)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-9s n=%d -> %.3f\n", res.Method, res.N, res.Value)
	}

	// Output:
	// left      n=4 -> 0.375
	// right     n=4 -> 0.625
	// midpoint  n=4 -> 0.500
	// trapezoid n=4 -> 0.500
}
