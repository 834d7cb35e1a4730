package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/flipset/dataset"
	"github.com/katalvlaran/flipset/flipset"
	"github.com/katalvlaran/flipset/internal/config"
	"github.com/katalvlaran/flipset/report"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze every year in a data directory",
		Example: `  flipset analyze --data-dir data
  flipset analyze --data-dir data --format yaml --detailed -o results.yaml
  FLIPSET_WORKERS=8 flipset analyze --config flipset.yaml`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	def := config.Default()
	f := cmd.Flags()
	f.String("data-dir", def.DataDir, "Directory holding electoralVotes/ and electionResults/")
	f.StringP("output", "o", def.Output, "Write the report to this file instead of stdout")
	f.String("format", def.Format, "Report format: json or yaml")
	f.String("convention", def.Convention, "Flip cost: strict (|margin|+1) or exact (|margin|)")
	f.String("memory-mode", def.MemoryMode, "Knapsack table layout: tworows or full")
	f.Int("statewide-bonus", def.StatewideBonus, "Weight of the statewide bonus of districted units")
	f.Int("workers", def.Workers, "Years analyzed in parallel")
	f.Bool("detailed", def.Detailed, "Include winner, total weight and vote costs")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(file, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := loggerFactory(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return analyze(ctx, cfg, logger, cmd.OutOrStdout())
}

// analyze loads the archive, runs every year and writes the report. Years
// that fail are logged, left out of the report and returned as one error.
func analyze(ctx context.Context, cfg config.Config, logger *zap.Logger, stdout io.Writer) error {
	logger.Debug("loading data", zap.String("dir", cfg.DataDir))
	ds, err := dataset.Load(os.DirFS(cfg.DataDir))
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.DataDir, err)
	}
	logger.Info("data loaded",
		zap.Int("years", len(ds.Elections)),
		zap.Ints("apportionments", ds.Weights.EffectiveYears()))

	opts, err := cfg.AnalyzerOptions()
	if err != nil {
		return err
	}
	analyzer := flipset.NewAnalyzer(append(opts, flipset.WithLogger(logger))...)

	results, runErr := analyzer.AnalyzeAll(ctx, ds.Weights, ds.Elections)
	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		return runErr
	}

	ropts, err := cfg.ReportOptions()
	if err != nil {
		return err
	}
	if err := writeReport(cfg.Output, stdout, results, ropts); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("%d year(s) failed: %w", len(multierr.Errors(runErr)), runErr)
	}

	return nil
}

func writeReport(path string, stdout io.Writer, results []flipset.YearResult, opts report.Options) (err error) {
	if path == "" {
		return report.Write(stdout, results, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return report.Write(f, results, opts)
}
