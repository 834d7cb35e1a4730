package flipset

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flipset/knapsack"
	"github.com/katalvlaran/flipset/weights"
)

// Analyzer computes flip sets. It holds only immutable configuration and is
// safe for concurrent use.
type Analyzer struct {
	cfg config
	log *zap.Logger
}

// NewAnalyzer returns an Analyzer configured by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	cfg := newConfig(opts...)

	return &Analyzer{cfg: cfg, log: cfg.logger.Named("flipset")}
}

// SolveForOutcome solves the knapsack over candidates at the capacity of
// outcome and returns the complement: the candidates the winner cannot keep,
// in candidate order.
//
// Errors: those of Capacity and knapsack.Solve.
//
// Complexity: O(len(candidates)·capacity).
func (a *Analyzer) SolveForOutcome(candidates []Candidate, total int, outcome Outcome) (FlipSet, error) {
	th, err := Capacity(total, outcome)
	if err != nil {
		return FlipSet{}, err
	}

	items := make([]knapsack.Item, len(candidates))
	for i, c := range candidates {
		items[i] = c.Item
	}
	sol, err := knapsack.Solve(items, th.Capacity, &knapsack.Options{MemoryMode: a.cfg.memory})
	if err != nil {
		return FlipSet{}, err
	}

	flipped := sol.Complement(len(candidates))
	fs := FlipSet{
		Outcome:   outcome,
		Units:     make([]string, 0, len(flipped)),
		Necessary: th.Necessary,
		Capacity:  th.Capacity,
	}
	for _, idx := range flipped {
		fs.Units = append(fs.Units, candidates[idx].Code)
		fs.Votes += candidates[idx].Item.Value
	}

	return fs, nil
}

// AnalyzeYear runs the whole pipeline for one year: weight lookup, winner,
// candidates, then the Win flip set and, for even totals, the Tie flip set.
//
// Every error is returned as *YearError carrying year.
func (a *Analyzer) AnalyzeYear(year int, units []UnitResult, table *weights.Table) (YearResult, error) {
	res, err := a.analyzeYear(year, units, table)
	if err != nil {
		return YearResult{}, &YearError{Year: year, Err: err}
	}

	return res, nil
}

func (a *Analyzer) analyzeYear(year int, units []UnitResult, table *weights.Table) (YearResult, error) {
	if table == nil {
		return YearResult{}, weights.ErrEmptyTable
	}
	app, err := table.Lookup(year)
	if err != nil {
		return YearResult{}, err
	}
	total := app.Total()

	winner, err := DetermineWinner(units, app)
	if err != nil {
		return YearResult{}, err
	}
	candidates, err := a.BuildCandidates(units, app, winner)
	if err != nil {
		return YearResult{}, err
	}

	res := YearResult{Year: year, Winner: winner, TotalWeight: total}
	for _, outcome := range Outcomes(total) {
		fs, err := a.SolveForOutcome(candidates, total, outcome)
		if err != nil {
			return YearResult{}, fmt.Errorf("%s: %w", outcome, err)
		}
		switch outcome {
		case Win:
			res.Win = fs
		case Tie:
			res.Tie = &fs
		}
	}

	a.log.Debug("year analyzed",
		zap.Int("year", year),
		zap.Stringer("winner", winner),
		zap.Int("total", total),
		zap.Int("candidates", len(candidates)),
		zap.Strings("win", res.Win.Units),
		zap.Int("winVotes", res.Win.Votes),
		zap.Bool("tie", res.Tie != nil),
	)

	return res, nil
}

// AnalyzeAll analyzes every election, up to WithWorkers years at a time.
//
// Years are independent: a failing year is left out of the results and its
// *YearError is combined (multierr) into the returned error, while the
// other years are still reported. Results are sorted by year.
//
// If ctx is cancelled, scheduling stops and ctx.Err() is returned with no
// results.
func (a *Analyzer) AnalyzeAll(ctx context.Context, table *weights.Table, elections []Election) ([]YearResult, error) {
	var (
		results = make([]YearResult, len(elections))
		errs    = make([]error, len(elections))
		done    = make([]bool, len(elections))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.workers)
	for i, e := range elections {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := a.AnalyzeYear(e.Year, e.Units, table)
			if err != nil {
				a.log.Warn("year skipped", zap.Int("year", e.Year), zap.Error(err))
				errs[i] = err
				return nil
			}
			results[i], done[i] = res, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]YearResult, 0, len(elections))
	for i := range results {
		if done[i] {
			out = append(out, results[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	err := multierr.Combine(errs...)
	a.log.Info("analysis finished",
		zap.Int("years", len(elections)),
		zap.Int("analyzed", len(out)),
		zap.Int("failed", len(multierr.Errors(err))),
	)

	return out, err
}
