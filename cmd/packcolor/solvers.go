package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/packcolor/solver"
)

func newSolversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solvers",
		Short: "List the registered backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range solver.Available() {
				mark := ""
				if name == solver.Default {
					mark = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, mark)
			}
		},
	}
}
