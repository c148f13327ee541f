package quadrature_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/quadrature"
)

// ExampleExact integrates sin over [0,π] and compares a coarse
// approximation against the reference.
func ExampleExact() {
	iv, _ := core.NewInterval(0, math.Pi)

	res, err := quadrature.Exact(core.FuncOf(math.Sin), iv, quadrature.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cmp := quadrature.Compare(1.98, res.Value)
	fmt.Printf("exact=%.6f\n", res.Value)
	fmt.Printf("abs_error=%.6f rel_defined=%v\n", cmp.AbsError, cmp.RelDefined)

	// Output:
	// exact=2.000000
	// abs_error=0.020000 rel_defined=true
}

// ExampleCompare_zeroReference shows the odd-integrand case: the exact
// value is 0, so relative error is explicitly undefined.
func ExampleCompare_zeroReference() {
	cmp := quadrature.Compare(0.0003, 0)
	fmt.Printf("abs=%.4f rel_defined=%v\n", cmp.AbsError, cmp.RelDefined)

	// Output:
	// abs=0.0003 rel_defined=false
}
