// SPDX-License-Identifier: MIT
// Package: flipset
//
// errors.go: sentinel and typed errors of the analyzer.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); typed errors unwrap to
//     their sentinel and carry the offending year, code or sums.
//   • Input-validation errors abort one year and are never turned into
//     an empty result.
//   • Algorithmic edge cases (no candidates, zero capacity) are not errors.

package flipset

import (
	"errors"
	"fmt"
)

var (
	// ErrTiedElection indicates both sides hold the same electoral weight.
	ErrTiedElection = errors.New("flipset: exact electoral tie")

	// ErrUnknownUnit indicates a unit code missing from the apportionment.
	ErrUnknownUnit = errors.New("flipset: unit not in weight table")

	// ErrZeroMargin indicates a unit or district margin of exactly zero.
	ErrZeroMargin = errors.New("flipset: zero margin cannot be assigned a side")

	// ErrMissingTally indicates a UnitResult without a Tally.
	ErrMissingTally = errors.New("flipset: unit has no tally")

	// ErrTieUndefined indicates a Tie outcome for an odd total weight.
	ErrTieUndefined = errors.New("flipset: tie outcome requires an even total weight")

	// ErrNonPositiveTotal indicates a total electoral weight below one.
	ErrNonPositiveTotal = errors.New("flipset: total weight must be positive")

	// ErrUnknownOutcome indicates an Outcome outside Win and Tie.
	ErrUnknownOutcome = errors.New("flipset: unknown outcome")

	// ErrNoWinner indicates a winner side other than SideA or SideB.
	ErrNoWinner = errors.New("flipset: winner must be SideA or SideB")
)

// TiedElectionError reports the equal side sums of a tied contest.
type TiedElectionError struct {
	SideA, SideB int
}

func (e *TiedElectionError) Error() string {
	return fmt.Sprintf("flipset: exact electoral tie: %d to %d", e.SideA, e.SideB)
}

// Unwrap exposes ErrTiedElection.
func (e *TiedElectionError) Unwrap() error { return ErrTiedElection }

// UnknownUnitError names the code absent from the weight table.
type UnknownUnitError struct {
	Code string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("flipset: unit %q not in weight table", e.Code)
}

// Unwrap exposes ErrUnknownUnit.
func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// YearError attaches the analyzed year to any failure.
type YearError struct {
	Year int
	Err  error
}

func (e *YearError) Error() string {
	return fmt.Sprintf("year %d: %v", e.Year, e.Err)
}

func (e *YearError) Unwrap() error { return e.Err }

// zeroMargin builds the ErrZeroMargin error for code.
func zeroMargin(code string) error {
	return fmt.Errorf("%w: %q", ErrZeroMargin, code)
}
