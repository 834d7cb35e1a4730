package knapsack

import "fmt"

// Solve returns the maximum-value subset of items whose summed weight is at
// most capacity, each item used at most once.
//
// Contract:
//   - items may be empty; capacity must be ≥ 0.
//   - Solution.Selected is ascending and unique; nil when nothing is chosen.
//   - Ties are resolved in favor of the subset built from earlier items
//     (the improving branch must be strictly greater).
//   - opts may be nil (DefaultOptions).
//
// Example:
//
//	items := []Item{{Weight: 10, Value: 21}, {Weight: 4, Value: 3}, {Weight: 30, Value: 101}}
//	sol, err := Solve(items, 9, nil)
//	// sol.Selected == []int{1}, sol.Value == 3
//
// Complexity: O(len(items)·capacity) time.
func Solve(items []Item, capacity int, opts *Options) (Solution, error) {
	if err := validate(items, capacity); err != nil {
		return Solution{}, err
	}

	mode := TwoRows
	if opts != nil {
		mode = opts.MemoryMode
	}

	switch mode {
	case TwoRows:
		return solveTwoRows(items, capacity), nil
	case FullMatrix:
		return solveFullMatrix(items, capacity), nil
	default:
		return Solution{}, fmt.Errorf("%w: %d", ErrUnknownMemoryMode, mode)
	}
}

// validate checks the capacity and every item; the first violation wins.
func validate(items []Item, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d has weight %d", ErrNegativeWeight, i, it.Weight)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has value %d", ErrNegativeValue, i, it.Value)
		}
	}

	return nil
}

// pick is one node of a persistent index list, newest index first.
// Cells of consecutive rows share tails, so extending a list is O(1).
type pick struct {
	index int
	prev  *pick
}

// cell is a DP entry for the TwoRows mode.
type cell struct {
	value int
	count int
	picks *pick
}

// indices materializes the cell's list in ascending order, or nil if empty.
func (c cell) indices() []int {
	if c.count == 0 {
		return nil
	}
	out := make([]int, c.count)
	k := c.count - 1
	for p := c.picks; p != nil; p = p.prev {
		out[k] = p.index
		k--
	}

	return out
}

// solveTwoRows runs the DP with two rolling rows of cells.
func solveTwoRows(items []Item, capacity int) Solution {
	prev := make([]cell, capacity+1)
	curr := make([]cell, capacity+1)

	for i, it := range items {
		for c := 0; c <= capacity; c++ {
			curr[c] = prev[c]
			if it.Weight > c {
				continue
			}
			base := prev[c-it.Weight]
			if with := base.value + it.Value; with > prev[c].value {
				curr[c] = cell{
					value: with,
					count: base.count + 1,
					picks: &pick{index: i, prev: base.picks},
				}
			}
		}
		prev, curr = curr, prev
	}

	best := prev[capacity]

	return Solution{Selected: best.indices(), Value: best.value}
}

// solveFullMatrix fills the whole value table and backtracks. An item is
// part of the answer exactly when its row strictly improved the cell, which
// mirrors the strict tie-break of the forward pass.
func solveFullMatrix(items []Item, capacity int) Solution {
	n := len(items)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		w, v := items[i-1].Weight, items[i-1].Value
		for c := 0; c <= capacity; c++ {
			dp[i][c] = dp[i-1][c]
			if w <= c && dp[i-1][c-w]+v > dp[i-1][c] {
				dp[i][c] = dp[i-1][c-w] + v
			}
		}
	}

	var selected []int
	c := capacity
	for i := n; i >= 1; i-- {
		if dp[i][c] != dp[i-1][c] {
			selected = append(selected, i-1)
			c -= items[i-1].Weight
		}
	}
	for l, r := 0, len(selected)-1; l < r; l, r = l+1, r-1 {
		selected[l], selected[r] = selected[r], selected[l]
	}

	return Solution{Selected: selected, Value: dp[n][capacity]}
}
