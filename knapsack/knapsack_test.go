package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flipset/knapsack"
)

var modes = []knapsack.MemoryMode{knapsack.TwoRows, knapsack.FullMatrix}

// solveAll runs Solve in every memory mode and checks that they agree.
func solveAll(t *testing.T, items []knapsack.Item, capacity int) knapsack.Solution {
	t.Helper()
	var first knapsack.Solution
	for i, mode := range modes {
		sol, err := knapsack.Solve(items, capacity, &knapsack.Options{MemoryMode: mode})
		require.NoError(t, err, "mode %s", mode)
		if i == 0 {
			first = sol
			continue
		}
		require.Equal(t, first, sol, "mode %s must match %s", mode, modes[0])
	}

	return first
}

// TestSolve_Fixtures covers hand-checked instances, including the
// one-fits cases with the fitting item at every position.
func TestSolve_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		items    []knapsack.Item
		capacity int
		selected []int
		value    int
	}{
		{
			name:     "only one fits",
			items:    []knapsack.Item{{10, 20}, {4, 2}, {30, 100}},
			capacity: 9, selected: []int{1}, value: 2,
		},
		{
			name:     "only one fits and it is first",
			items:    []knapsack.Item{{4, 2}, {10, 20}, {30, 100}},
			capacity: 9, selected: []int{0}, value: 2,
		},
		{
			name:     "only one fits and it is last",
			items:    []knapsack.Item{{10, 20}, {30, 100}, {4, 2}},
			capacity: 9, selected: []int{2}, value: 2,
		},
		{
			name:     "two fit",
			items:    []knapsack.Item{{10, 20}, {10, 30}, {30, 100}, {4, 2}},
			capacity: 18, selected: []int{1, 3}, value: 32,
		},
		{
			name:     "one big item is the best",
			items:    []knapsack.Item{{10, 20}, {10, 30}, {30, 200}, {10, 50}},
			capacity: 30, selected: []int{2}, value: 200,
		},
		{
			name:     "all fit",
			items:    []knapsack.Item{{10, 20}, {10, 30}, {30, 200}, {10, 50}},
			capacity: 100, selected: []int{0, 1, 2, 3}, value: 300,
		},
		{
			name:     "none fit",
			items:    []knapsack.Item{{10, 20}, {10, 30}, {30, 200}, {10, 50}},
			capacity: 9, selected: nil, value: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol := solveAll(t, tc.items, tc.capacity)
			assert.Equal(t, tc.selected, sol.Selected)
			assert.Equal(t, tc.value, sol.Value)
		})
	}
}

// TestSolve_StrictFlipScenario checks the |margin|+1 variant of the
// one-fits instance and its complement.
func TestSolve_StrictFlipScenario(t *testing.T) {
	items := []knapsack.Item{{Weight: 10, Value: 21}, {Weight: 4, Value: 3}, {Weight: 30, Value: 101}}

	sol := solveAll(t, items, 9)
	assert.Equal(t, []int{1}, sol.Selected)
	assert.Equal(t, 3, sol.Value)
	assert.Equal(t, []int{0, 2}, sol.Complement(len(items)))
}

// TestSolve_EmptyAndZero verifies the trivial edge cases are not errors.
func TestSolve_EmptyAndZero(t *testing.T) {
	sol := solveAll(t, nil, 10)
	assert.Nil(t, sol.Selected)
	assert.Zero(t, sol.Value)

	sol = solveAll(t, []knapsack.Item{{Weight: 1, Value: 5}, {Weight: 2, Value: 9}}, 0)
	assert.Nil(t, sol.Selected, "zero capacity selects nothing")
	assert.Zero(t, sol.Value)

	sol = solveAll(t, nil, 0)
	assert.Nil(t, sol.Selected)
}

// TestSolve_TieBreakPrefersEarlierItems builds two equal-value items of
// different weight where only one fits; the earlier one must win.
func TestSolve_TieBreakPrefersEarlierItems(t *testing.T) {
	heavyFirst := []knapsack.Item{{Weight: 3, Value: 7}, {Weight: 2, Value: 7}}
	sol := solveAll(t, heavyFirst, 4)
	assert.Equal(t, []int{0}, sol.Selected)
	assert.Equal(t, 7, sol.Value)

	lightFirst := []knapsack.Item{{Weight: 2, Value: 7}, {Weight: 3, Value: 7}}
	sol = solveAll(t, lightFirst, 4)
	assert.Equal(t, []int{0}, sol.Selected)

	// Zero-value items never improve a cell.
	sol = solveAll(t, []knapsack.Item{{Weight: 1, Value: 0}, {Weight: 1, Value: 4}}, 2)
	assert.Equal(t, []int{1}, sol.Selected)
}

// TestSolve_Deterministic re-runs the same input and expects identical output.
func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := randomItems(rng, 25, 12, 40)
	first := solveAll(t, items, 60)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, solveAll(t, items, 60))
	}
}

// TestSolve_OptimalAgainstBruteForce compares with exhaustive enumeration for
// n ≤ 15 and checks the selection respects the capacity and is ascending.
func TestSolve_OptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := rng.Intn(16)
		items := randomItems(rng, n, 9, 30)
		capacity := rng.Intn(40)

		sol := solveAll(t, items, capacity)
		require.Equal(t, bruteForce(items, capacity), sol.Value, "round %d", round)
		require.LessOrEqual(t, sol.Weight(items), capacity, "round %d", round)

		sum := 0
		for k, idx := range sol.Selected {
			if k > 0 {
				require.Greater(t, idx, sol.Selected[k-1], "indices must be strictly ascending")
			}
			sum += items[idx].Value
		}
		require.Equal(t, sol.Value, sum, "value must equal the selected items' sum")
	}
}

// TestSolution_ComplementPartitions checks selected ∪ complement covers every
// index exactly once.
func TestSolution_ComplementPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		n := rng.Intn(20)
		items := randomItems(rng, n, 10, 50)
		sol := solveAll(t, items, rng.Intn(50))
		comp := sol.Complement(n)

		seen := make(map[int]int, n)
		for _, idx := range sol.Selected {
			seen[idx]++
		}
		for _, idx := range comp {
			seen[idx]++
		}
		require.Len(t, seen, n)
		for idx, count := range seen {
			require.Equal(t, 1, count, "index %d must appear once", idx)
		}
		require.NotNil(t, comp)
	}
}

// TestSolve_Validation ensures invalid inputs surface their sentinels.
func TestSolve_Validation(t *testing.T) {
	_, err := knapsack.Solve(nil, -1, nil)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = knapsack.Solve([]knapsack.Item{{Weight: -1, Value: 1}}, 3, nil)
	assert.ErrorIs(t, err, knapsack.ErrNegativeWeight)

	_, err = knapsack.Solve([]knapsack.Item{{Weight: 1, Value: -1}}, 3, nil)
	assert.ErrorIs(t, err, knapsack.ErrNegativeValue)

	_, err = knapsack.Solve(nil, 3, &knapsack.Options{MemoryMode: knapsack.MemoryMode(9)})
	assert.ErrorIs(t, err, knapsack.ErrUnknownMemoryMode)
}

func randomItems(rng *rand.Rand, n, maxWeight, maxValue int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{Weight: 1 + rng.Intn(maxWeight), Value: rng.Intn(maxValue + 1)}
	}

	return items
}

func bruteForce(items []knapsack.Item, capacity int) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		w, v := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				w += it.Weight
				v += it.Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}
