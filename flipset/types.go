package flipset

import "github.com/katalvlaran/flipset/knapsack"

// Side is one of the two contest sides. A positive margin favors SideA.
type Side int

const (
	// SideNone is the zero value; it never wins.
	SideNone Side = iota
	// SideA is favored by positive margins.
	SideA
	// SideB is favored by negative margins.
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// Other returns the opposing side; SideNone maps to itself.
func (s Side) Other() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return SideNone
	}
}

// sideOf maps a margin sign to a side; zero yields SideNone.
func sideOf(margin int) Side {
	switch {
	case margin > 0:
		return SideA
	case margin < 0:
		return SideB
	default:
		return SideNone
	}
}

// Outcome selects what the flip set must achieve.
type Outcome int

const (
	// Win: the other side ends with a strict majority.
	Win Outcome = iota
	// Tie: the two sides end exactly even. Defined for even totals only.
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Convention sets the popular-vote value of flipping a unit.
type Convention int

const (
	// StrictFlip values a unit at |margin|+1: the unit changes hands.
	StrictFlip Convention = iota
	// ExactTie values a unit at |margin|: the unit ends exactly tied.
	ExactTie
)

func (c Convention) String() string {
	switch c {
	case StrictFlip:
		return "strict"
	case ExactTie:
		return "exact"
	default:
		return "unknown"
	}
}

// value returns the votes needed to flip margin under c.
func (c Convention) value(margin int) int {
	if margin < 0 {
		margin = -margin
	}
	if c == ExactTie {
		return margin
	}

	return margin + 1
}

// Tally is the result of one unit: either Statewide or Districted.
// The set of implementations is closed.
type Tally interface {
	// StatewideMargin is the unit-level margin that decides its side.
	StatewideMargin() int
	isTally()
}

// Statewide is a unit awarded as a single block.
type Statewide struct {
	Margin int
}

// StatewideMargin implements Tally.
func (s Statewide) StatewideMargin() int { return s.Margin }
func (Statewide) isTally()               {}

// Districted is a unit that awards a statewide bonus plus one vote per district.
type Districted struct {
	// Margin is the statewide margin; it decides the bonus.
	Margin int
	// Districts are ordered by district number.
	Districts []DistrictResult
}

// StatewideMargin implements Tally.
func (d Districted) StatewideMargin() int { return d.Margin }
func (Districted) isTally()               {}

// DistrictResult is one district; each district carries a weight of 1.
type DistrictResult struct {
	Code   string
	Margin int
}

// UnitResult is the result of one electoral unit for a year.
type UnitResult struct {
	Code  string
	Tally Tally
}

// Election is one year of unit results.
type Election struct {
	Year  int
	Units []UnitResult
}

// CandidateKind tells where a Candidate came from.
type CandidateKind int

const (
	// UnitCandidate is a whole Statewide unit.
	UnitCandidate CandidateKind = iota
	// BonusCandidate is the statewide bonus of a Districted unit.
	BonusCandidate
	// DistrictCandidate is a single district.
	DistrictCandidate
)

func (k CandidateKind) String() string {
	switch k {
	case UnitCandidate:
		return "unit"
	case BonusCandidate:
		return "bonus"
	case DistrictCandidate:
		return "district"
	default:
		return "unknown"
	}
}

// Candidate pairs a knapsack item with the unit or district it stands for.
type Candidate struct {
	Code   string
	Kind   CandidateKind
	Margin int
	Item   knapsack.Item
}

// Threshold is the capacity arithmetic of one outcome.
type Threshold struct {
	Outcome   Outcome
	Total     int
	Necessary int
	Capacity  int
}

// FlipSet is the minimal set of codes to flip for one outcome.
type FlipSet struct {
	Outcome Outcome
	// Units are unit or district codes in candidate order. Never nil.
	Units []string
	// Votes is the summed popular-vote value of the flipped candidates.
	Votes int
	// Necessary is the weight the other side needs for the outcome.
	Necessary int
	// Capacity is the weight the current winner may keep.
	Capacity int
}

// YearResult is the analysis of one year.
type YearResult struct {
	Year        int
	Winner      Side
	TotalWeight int
	Win         FlipSet
	// Tie is nil iff TotalWeight is odd.
	Tie *FlipSet
}
