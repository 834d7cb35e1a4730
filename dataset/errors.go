package dataset

import "errors"

var (
	// ErrNoData indicates a directory without any year file.
	ErrNoData = errors.New("dataset: no year files found")
	// ErrMalformedRow indicates a row with missing or non-numeric fields.
	ErrMalformedRow = errors.New("dataset: malformed row")
	// ErrOrphanDistrict indicates a district row without its state row.
	ErrOrphanDistrict = errors.New("dataset: district without state")
	// ErrDuplicateDistrict indicates the same district number twice.
	ErrDuplicateDistrict = errors.New("dataset: duplicate district")
	// ErrDuplicateYear indicates two result files for one year.
	ErrDuplicateYear = errors.New("dataset: duplicate year")
)
