package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/integrate"
)

var approxCmd = &cobra.Command{
	Use:   "approx",
	Short: "Approximate an integral with a Riemann sum",
	Long: `Validates the interval, then accumulates the chosen Riemann rule over n
equal subintervals. With --exact the adaptive-quadrature reference and the
absolute/relative error are printed as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runApprox(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(approxCmd)
	approxCmd.Flags().IntP("subintervals", "n", 1000, "number of subintervals (>= 1)")
	approxCmd.Flags().StringP("method", "m", "midpoint", "rule: left | right | midpoint | trapezoid")
	approxCmd.Flags().Bool("exact", false, "also compute the quadrature reference and error")
}

func runApprox(cmd *cobra.Command) error {
	src, err := cmd.Flags().GetString("function")
	if err != nil {
		return err
	}
	f, err := resolveFunction(src)
	if err != nil {
		return err
	}

	a, b, err := bounds(cmd)
	if err != nil {
		return err
	}
	n, err := cmd.Flags().GetInt("subintervals")
	if err != nil {
		return err
	}
	methodName, err := cmd.Flags().GetString("method")
	if err != nil {
		return err
	}
	method, err := core.ParseMethod(methodName)
	if err != nil {
		return err
	}
	withExact, err := cmd.Flags().GetBool("exact")
	if err != nil {
		return err
	}

	out, err := integrate.Run(integrate.Request{
		F: f, A: a, B: b, N: n, Method: method, WithExact: withExact,
	}, integrate.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Printf("∫(%g..%g) %s dx ≈ %.6f  (%s, n=%d)\n",
		a, b, src, out.Approximation.Value, out.Approximation.Method, out.Approximation.N)

	if !withExact {
		return nil
	}
	if !out.Exact.Defined {
		fmt.Println("exact: unavailable (quadrature did not converge)")

		return nil
	}

	fmt.Printf("exact     = %.6f\n", out.Exact.Value)
	fmt.Printf("abs error = %.6e\n", out.Comparison.AbsError)
	if out.Comparison.RelDefined {
		fmt.Printf("rel error = %.4f%%\n", out.Comparison.RelError*100)
	} else {
		fmt.Println("rel error = undefined (exact value is 0)")
	}

	return nil
}
