package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Screen an interval for domain validity",
	Long:  `Runs the layered domain screen and reports whether the function is defined everywhere sampling will touch.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Float64("tolerance", domain.DefaultTolerance, "probe offset around special points")
}

func runCheck(cmd *cobra.Command) error {
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

	opts := domain.DefaultOptions()
	if opts.Tolerance, err = cmd.Flags().GetFloat64("tolerance"); err != nil {
		return err
	}

	verdict, err := domain.Validate(f, iv, opts)
	if err != nil {
		return err
	}

	if verdict.Valid {
		fmt.Printf("valid: %s is defined on [%g, %g]\n", src, a, b)

		return nil
	}

	return fmt.Errorf("invalid: %s is undefined near x=%g (found by %s screen)",
		src, verdict.Offending.X, verdict.Stage)
}
