package knapsack

// MemoryMode controls how Solve stores its DP table.
//
//   - TwoRows: keep only the previous and current rows. Every cell also
//     holds a pointer into a shared list of the indices it selected, so the
//     subset is available without the full table.
//
//   - FullMatrix: keep all n+1 rows of values and backtrack from the last
//     cell to recover the subset.
type MemoryMode int

const (
	// TwoRows mode: rolling rows with carried index lists, O(capacity) rows.
	TwoRows MemoryMode = iota

	// FullMatrix mode: full value table with backtracking, O(n·capacity) memory.
	FullMatrix
)

// String returns a lower-case name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case TwoRows:
		return "tworows"
	case FullMatrix:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//   - MemoryMode: TwoRows (default) or FullMatrix.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with MemoryMode=TwoRows.
func DefaultOptions() Options {
	return Options{MemoryMode: TwoRows}
}

// Item is a single knapsack item. Both fields must be non-negative.
type Item struct {
	Weight int
	Value  int
}

// Solution is the outcome of Solve.
type Solution struct {
	// Selected holds the chosen item indices in ascending order. It is nil
	// when no item was chosen.
	Selected []int

	// Value is the summed Value of the selected items.
	Value int
}

// Complement returns the indices in [0, n) that are not in s.Selected,
// in ascending order. It walks 0..n-1 once, advancing a cursor through the
// sorted selection. The result is never nil.
//
// Complexity: O(n).
func (s Solution) Complement(n int) []int {
	out := make([]int, 0, max(0, n-len(s.Selected)))
	cursor := 0
	for i := 0; i < n; i++ {
		if cursor < len(s.Selected) && s.Selected[cursor] == i {
			cursor++
			continue
		}
		out = append(out, i)
	}

	return out
}

// Weight sums the Weight of the selected items. Indices outside items are
// ignored.
func (s Solution) Weight(items []Item) int {
	total := 0
	for _, idx := range s.Selected {
		if idx >= 0 && idx < len(items) {
			total += items[idx].Weight
		}
	}

	return total
}
