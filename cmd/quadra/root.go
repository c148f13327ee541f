package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/expr"
)

var rootCmd = &cobra.Command{
	Use:   "quadra",
	Short: "Quadra approximates and validates definite integrals",
	Long: `Quadra approximates definite integrals of single-variable functions with
Riemann sums, screens intervals for domain trouble, and checks results
against an adaptive-quadrature reference.

Functions are given as expressions over x (e.g. "x^2 + sin(x)") or as one
of the builtin names listed by "quadra functions".`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("function", "f", "", "integrand: an expression over x, or a builtin name")
	rootCmd.PersistentFlags().Float64P("lower", "a", 0, "lower integration bound")
	rootCmd.PersistentFlags().Float64P("upper", "b", 1, "upper integration bound")
}

// resolveFunction turns the -f flag into a Function: builtin names win,
// anything else is compiled as an expression.
func resolveFunction(src string) (core.Function, error) {
	if src == "" {
		return nil, fmt.Errorf("missing required flag: --function")
	}
	if f, ok := expr.Builtin(src); ok {
		return f, nil
	}

	return expr.Compile(src)
}

// bounds reads the shared -a/-b flags.
func bounds(cmd *cobra.Command) (a, b float64, err error) {
	if a, err = cmd.Flags().GetFloat64("lower"); err != nil {
		return 0, 0, err
	}
	if b, err = cmd.Flags().GetFloat64("upper"); err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
