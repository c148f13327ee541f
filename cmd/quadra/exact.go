package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/domain"
	"github.com/katalvlaran/quadra/quadrature"
)

var exactCmd = &cobra.Command{
	Use:   "exact",
	Short: "Integrate with adaptive quadrature",
	Long:  `Validates the interval, then computes the adaptive Gauss–Legendre reference value.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExact(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exactCmd)
}

func runExact(cmd *cobra.Command) error {
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
	iv, err := core.NewInterval(a, b)
	if err != nil {
		return err
	}

	verdict, err := domain.Validate(f, iv, domain.DefaultOptions())
	if err != nil {
		return err
	}
	if !verdict.Valid {
		return fmt.Errorf("invalid: %s is undefined near x=%g (found by %s screen)",
			src, verdict.Offending.X, verdict.Stage)
	}

	res, err := quadrature.Exact(f, iv, quadrature.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Printf("∫(%g..%g) %s dx = %.6f  (±%.2e estimated)\n", a, b, src, res.Value, res.ErrEstimate)

	return nil
}
