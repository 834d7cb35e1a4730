// SPDX-License-Identifier: MIT
// Package: flipset
//
// options.go: functional options for the Analyzer.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values
//     (WithStatewideBonus(0), WithWorkers(0), WithLogger(nil)).
//   • The analysis itself never panics on user input.
//
// Defaults:
//   • logger     = zap.NewNop()
//   • convention = StrictFlip
//   • bonus      = 2
//   • memory     = knapsack.TwoRows
//   • workers    = 1

package flipset

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/flipset/knapsack"
)

// DefaultStatewideBonus is the weight awarded to the statewide winner of a
// districted unit.
const DefaultStatewideBonus = 2

// Option customizes an Analyzer.
type Option func(*config)

// config aggregates all analyzer knobs.
type config struct {
	logger     *zap.Logger
	convention Convention
	bonus      int
	memory     knapsack.MemoryMode
	workers    int
}

func newConfig(opts ...Option) config {
	c := config{
		logger:     zap.NewNop(),
		convention: StrictFlip,
		bonus:      DefaultStatewideBonus,
		memory:     knapsack.TwoRows,
		workers:    1,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("flipset: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithConvention sets the popular-vote value convention used for both the
// win and the tie computation.
func WithConvention(conv Convention) Option {
	return func(c *config) {
		c.convention = conv
	}
}

// WithStatewideBonus sets the weight of a districted unit's bonus item.
// Panics if bonus < 1.
func WithStatewideBonus(bonus int) Option {
	if bonus < 1 {
		panic("flipset: WithStatewideBonus(bonus<1)")
	}
	return func(c *config) {
		c.bonus = bonus
	}
}

// WithMemoryMode selects the knapsack table layout.
func WithMemoryMode(mode knapsack.MemoryMode) Option {
	return func(c *config) {
		c.memory = mode
	}
}

// WithWorkers bounds how many years AnalyzeAll processes concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("flipset: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
