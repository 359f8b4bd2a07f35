package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley checks behavioral equivalence of process-algebra terms",
	Long: `Parley models concurrent processes as terms of a small process algebra
(prefixing, choice, parallel composition, recursion) and decides whether two
terms are equivalent under trace, bisimulation, testing or failures semantics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
