package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parley-dev/parley/pkg/registry"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the built-in process scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range registry.Builtin().List() {
			fmt.Printf("%-16s %s\n", s.Name, s.Description)
			fmt.Printf("%-16s %s\n", "", s.Term)
		}
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
