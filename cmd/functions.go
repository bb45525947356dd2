package cmd

import (
	"fmt"

	"github.com/cwbudde/strongin/internal/objective"
	"github.com/spf13/cobra"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the built-in benchmark objectives",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range objective.All() {
			fmt.Printf("%-10s [%g, %g]  min %-10g %s\n", b.Name, b.A, b.B, b.Minimum, b.Desc)
		}
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
