package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/parley-dev/parley/internal/cli"
	"github.com/parley-dev/parley/internal/logging"
	"github.com/parley-dev/parley/pkg/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run equivalence checks from a YAML file or between two scenarios",
	Long: `Runs a batch of equivalence checks. Either point --file at a YAML check
file, or compare two built-in scenarios directly:

  parley check --left vending-choice --right vending-commit --kind weak-bisimulation`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		left, _ := cmd.Flags().GetString("left")
		right, _ := cmd.Flags().GetString("right")
		kind, _ := cmd.Flags().GetString("kind")
		model, _ := cmd.Flags().GetString("model")
		depth, _ := cmd.Flags().GetInt("depth")
		maxStates, _ := cmd.Flags().GetInt("max-states")
		plain, _ := cmd.Flags().GetBool("plain")

		logger := cliLogger(cmd)
		scenarios := registry.Builtin()

		var checks *cli.CheckFile
		switch {
		case file != "":
			loaded, err := cli.LoadCheckFile(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			checks = loaded
		case left != "" && right != "":
			checks = &cli.CheckFile{Checks: []cli.CheckEntry{{
				Name:          fmt.Sprintf("%s vs %s", left, right),
				Model:         model,
				Kind:          kind,
				LeftScenario:  left,
				RightScenario: right,
				Depth:         depth,
				MaxStates:     maxStates,
			}}}
		default:
			fmt.Fprintln(os.Stderr, "Error: provide --file, or both --left and --right")
			os.Exit(1)
		}

		outcomes := cli.RunChecks(context.Background(), checks, scenarios, logger)
		report := cli.Report(outcomes)
		if plain {
			fmt.Print(report)
		} else {
			fmt.Print(cli.RenderMarkdown(report))
		}

		for _, o := range outcomes {
			if o.Err != nil {
				os.Exit(1)
			}
		}
	},
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

func init() {
	checkCmd.Flags().String("file", "", "YAML check file to run")
	checkCmd.Flags().String("left", "", "Left scenario name")
	checkCmd.Flags().String("right", "", "Right scenario name")
	checkCmd.Flags().String("kind", "trace", "Equivalence kind (trace, strong, weak, testing, failures)")
	checkCmd.Flags().String("model", "ccs", "Semantic model (ccs, csp, acp)")
	checkCmd.Flags().Int("depth", 0, "Exploration depth bound (0 = default)")
	checkCmd.Flags().Int("max-states", 0, "State ceiling for system construction (0 = default)")
	checkCmd.Flags().Bool("plain", false, "Print plain markdown without terminal styling")
	rootCmd.AddCommand(checkCmd)
}
