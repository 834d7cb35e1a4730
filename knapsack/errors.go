package knapsack

import "errors"

var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")
	// ErrNegativeWeight indicates an item with a weight below zero.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")
	// ErrNegativeValue indicates an item with a value below zero.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")
	// ErrUnknownMemoryMode indicates an Options.MemoryMode outside the known modes.
	ErrUnknownMemoryMode = errors.New("knapsack: unknown memory mode")
)
