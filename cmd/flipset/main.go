// Command flipset computes, for every election year in a results archive,
// the cheapest set of units whose reversal would change or tie the
// outcome.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFactory builds the command logger; tests replace it.
var loggerFactory = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flipset",
		Short: "Minimal popular-vote flips that change an electoral result",
		Long: `flipset reads electoral weights and per-unit vote counts and, for each
year, solves a 0/1 knapsack to find the units the losing side would have to
flip (at the lowest popular-vote cost) to win, or to force a tie when the
total weight is even.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("config", "", "YAML config file")

	root.AddCommand(newAnalyzeCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
