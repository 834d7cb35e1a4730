// Package weights holds the time-versioned electoral weight table.
//
// Each Entry carries the Apportionment (unit code → electoral votes) that
// took effect in EffectiveYear and applies until the next entry supersedes
// it. Lookup finds the latest entry whose EffectiveYear ≤ year by binary
// search; a year earlier than the first entry has no applicable table.
//
// Errors:
//
//   - ErrEmptyTable:        NewTable got no entries.
//   - ErrDuplicateYear:     two entries share an EffectiveYear.
//   - ErrNonPositiveWeight: an apportionment holds a weight < 1.
//   - ErrYearTooEarly:      Lookup year precedes the earliest entry
//     (returned as *YearTooEarlyError).
package weights
