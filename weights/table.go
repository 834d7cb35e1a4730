package weights

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// Apportionment maps a unit code to its electoral weight.
type Apportionment map[string]int

// Weight returns the weight of code and whether it is present.
func (a Apportionment) Weight(code string) (int, bool) {
	w, ok := a[code]

	return w, ok
}

// Total returns the sum of all weights, i.e. the total electoral weight.
func (a Apportionment) Total() int {
	total := 0
	for _, w := range a {
		total += w
	}

	return total
}

// Codes returns the unit codes in lexical order.
func (a Apportionment) Codes() []string {
	return slices.Sorted(maps.Keys(a))
}

// Entry is one version of the apportionment, effective from EffectiveYear.
type Entry struct {
	EffectiveYear int
	Apportionment Apportionment
}

// Table is an immutable, ascending sequence of entries.
type Table struct {
	entries []Entry
}

// NewTable validates and sorts entries by EffectiveYear. Apportionments are
// copied, so later changes by the caller do not leak into the table.
//
// Complexity: O(k log k + Σ|apportionment|) for k entries.
func NewTable(entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		for code, w := range e.Apportionment {
			if w < 1 {
				return nil, fmt.Errorf("%w: %q has %d in %d", ErrNonPositiveWeight, code, w, e.EffectiveYear)
			}
		}
		out[i] = Entry{EffectiveYear: e.EffectiveYear, Apportionment: maps.Clone(e.Apportionment)}
		if out[i].Apportionment == nil {
			out[i].Apportionment = Apportionment{}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].EffectiveYear < out[j].EffectiveYear })
	for i := 1; i < len(out); i++ {
		if out[i].EffectiveYear == out[i-1].EffectiveYear {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateYear, out[i].EffectiveYear)
		}
	}

	return &Table{entries: out}, nil
}

// Lookup returns a copy of the apportionment in effect for year: the entry
// with the greatest EffectiveYear ≤ year.
//
// Errors: *YearTooEarlyError when year precedes the earliest entry.
//
// Complexity: O(log k) search plus the copy.
func (t *Table) Lookup(year int) (Apportionment, error) {
	// First entry that is strictly later than year; its predecessor applies.
	idx := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].EffectiveYear > year
	})
	if idx == 0 {
		return nil, &YearTooEarlyError{Year: year, Earliest: t.entries[0].EffectiveYear}
	}

	return maps.Clone(t.entries[idx-1].Apportionment), nil
}

// EffectiveYears returns the entry years in ascending order.
func (t *Table) EffectiveYears() []int {
	years := make([]int, len(t.entries))
	for i, e := range t.entries {
		years[i] = e.EffectiveYear
	}

	return years
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
