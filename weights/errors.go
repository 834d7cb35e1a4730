package weights

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable indicates a table built without entries.
	ErrEmptyTable = errors.New("weights: table must have at least one entry")
	// ErrDuplicateYear indicates two entries with the same effective year.
	ErrDuplicateYear = errors.New("weights: duplicate effective year")
	// ErrNonPositiveWeight indicates a unit weight below one.
	ErrNonPositiveWeight = errors.New("weights: unit weight must be positive")
	// ErrYearTooEarly indicates a lookup before the earliest effective year.
	ErrYearTooEarly = errors.New("weights: no table in effect")
)

// YearTooEarlyError reports a lookup year that precedes every entry.
type YearTooEarlyError struct {
	Year     int
	Earliest int
}

func (e *YearTooEarlyError) Error() string {
	return fmt.Sprintf("weights: year %d is earlier than %d: no table in effect", e.Year, e.Earliest)
}

// Unwrap exposes ErrYearTooEarly to errors.Is.
func (e *YearTooEarlyError) Unwrap() error { return ErrYearTooEarly }
