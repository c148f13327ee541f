package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadra/expr"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the builtin function catalog",
	Long:  `Prints the canonical names accepted by --function without compilation, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range expr.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
