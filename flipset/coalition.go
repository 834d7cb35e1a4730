package flipset

import (
	"fmt"

	"github.com/katalvlaran/flipset/knapsack"
	"github.com/katalvlaran/flipset/weights"
)

// DetermineWinner sums unit weights per side by statewide margin and returns
// the side with more weight.
//
// Errors:
//   - *UnknownUnitError when a unit code is missing from app.
//   - ErrMissingTally / ErrZeroMargin for malformed unit results.
//   - *TiedElectionError when both sums are equal.
//
// Complexity: O(len(units)).
func DetermineWinner(units []UnitResult, app weights.Apportionment) (Side, error) {
	var sumA, sumB int
	for _, u := range units {
		w, ok := app.Weight(u.Code)
		if !ok {
			return SideNone, &UnknownUnitError{Code: u.Code}
		}
		if u.Tally == nil {
			return SideNone, fmt.Errorf("%w: %q", ErrMissingTally, u.Code)
		}
		switch sideOf(u.Tally.StatewideMargin()) {
		case SideA:
			sumA += w
		case SideB:
			sumB += w
		default:
			return SideNone, zeroMargin(u.Code)
		}
	}

	if sumA == sumB {
		return SideNone, &TiedElectionError{SideA: sumA, SideB: sumB}
	}
	if sumA > sumB {
		return SideA, nil
	}

	return SideB, nil
}

// BuildCandidates turns the winner's coalition into knapsack candidates,
// in this order:
//
//  1. every winner-favoring unit in input order:
//     Statewide  → one item (weight(unit), value(margin));
//     Districted → a bonus item (bonus, value(margin)) followed by one
//     (1, value(district)) item per winner-favoring district;
//  2. every loser-favoring Districted unit in input order: one
//     (1, value(district)) item per winner-favoring district.
//
// Errors: ErrNoWinner, *UnknownUnitError, ErrMissingTally, ErrZeroMargin.
func (a *Analyzer) BuildCandidates(units []UnitResult, app weights.Apportionment, winner Side) ([]Candidate, error) {
	if winner != SideA && winner != SideB {
		return nil, fmt.Errorf("%w: got %s", ErrNoWinner, winner)
	}

	var out []Candidate
	var losers []Districted
	for _, u := range units {
		w, ok := app.Weight(u.Code)
		if !ok {
			return nil, &UnknownUnitError{Code: u.Code}
		}
		if u.Tally == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingTally, u.Code)
		}
		side := sideOf(u.Tally.StatewideMargin())
		if side == SideNone {
			return nil, zeroMargin(u.Code)
		}

		switch t := u.Tally.(type) {
		case Statewide:
			if side == winner {
				out = append(out, a.candidate(u.Code, UnitCandidate, t.Margin, w))
			}
		case Districted:
			if side != winner {
				losers = append(losers, t)
				continue
			}
			out = append(out, a.candidate(u.Code, BonusCandidate, t.Margin, a.cfg.bonus))
			var err error
			if out, err = a.appendDistricts(out, t.Districts, winner); err != nil {
				return nil, err
			}
		}
	}

	for _, t := range losers {
		var err error
		if out, err = a.appendDistricts(out, t.Districts, winner); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// appendDistricts adds one weight-1 candidate per district favoring winner.
func (a *Analyzer) appendDistricts(out []Candidate, districts []DistrictResult, winner Side) ([]Candidate, error) {
	for _, d := range districts {
		side := sideOf(d.Margin)
		if side == SideNone {
			return nil, zeroMargin(d.Code)
		}
		if side == winner {
			out = append(out, a.candidate(d.Code, DistrictCandidate, d.Margin, 1))
		}
	}

	return out, nil
}

func (a *Analyzer) candidate(code string, kind CandidateKind, margin, weight int) Candidate {
	return Candidate{
		Code:   code,
		Kind:   kind,
		Margin: margin,
		Item:   knapsack.Item{Weight: weight, Value: a.cfg.convention.value(margin)},
	}
}
