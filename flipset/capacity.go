package flipset

import "fmt"

// Capacity computes the threshold of outcome for a total electoral weight.
//
//	Win: necessary = ⌊total/2⌋ + 1
//	Tie: necessary = total/2, total must be even
//	capacity = total − necessary
//
// Examples: total=538 → Win 270/268, Tie 269/269; total=537 → Win 269/268.
//
// Errors: ErrNonPositiveTotal, ErrTieUndefined, ErrUnknownOutcome.
func Capacity(total int, outcome Outcome) (Threshold, error) {
	if total < 1 {
		return Threshold{}, fmt.Errorf("%w: got %d", ErrNonPositiveTotal, total)
	}

	var necessary int
	switch outcome {
	case Win:
		necessary = total/2 + 1
	case Tie:
		if total%2 != 0 {
			return Threshold{}, fmt.Errorf("%w: got %d", ErrTieUndefined, total)
		}
		necessary = total / 2
	default:
		return Threshold{}, fmt.Errorf("%w: %d", ErrUnknownOutcome, outcome)
	}

	return Threshold{
		Outcome:   outcome,
		Total:     total,
		Necessary: necessary,
		Capacity:  total - necessary,
	}, nil
}

// Outcomes lists the outcomes defined for total: Win always, Tie when even.
func Outcomes(total int) []Outcome {
	if total%2 == 0 {
		return []Outcome{Win, Tie}
	}

	return []Outcome{Win}
}
