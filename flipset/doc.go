// Package flipset finds, for an election year, the smallest-effort set of
// electoral units whose results would have to flip to change the overall
// winner (or to produce a tie).
//
// What:
//
//	The winner's coalition is turned into 0/1 knapsack items: weight is the
//	electoral weight a unit controls, value is the popular vote needed to
//	flip it (|margin|+1 under StrictFlip). The capacity is the electoral
//	weight the winner can lose while still beating (or tying) the other
//	side. The optimal knapsack subset is what the winner can afford to keep;
//	its complement, in item order, is the minimal flip set.
//
// Pipeline per year:
//
//	weights.Table.Lookup → DetermineWinner → BuildCandidates
//	  → SolveForOutcome(Win) [+ SolveForOutcome(Tie) when total is even]
//
// District subdivision:
//
//	A Districted unit (e.g. ME, NE) is carried by the statewide winner for
//	its bonus weight (conventionally 2) and by each district winner for one
//	vote. A winner-side districted unit yields a bonus item plus one item per
//	winner-favoring district; a loser-side districted unit still yields its
//	winner-favoring districts.
//
// Capacity arithmetic:
//
//	Win: necessary = ⌊total/2⌋+1, capacity = total − necessary
//	Tie: necessary = total/2 (even totals only), capacity = total − necessary
//
// Errors:
//
//   - ErrTiedElection: both sides hold the same weight (*TiedElectionError).
//   - ErrUnknownUnit:  a unit code is absent from the apportionment (*UnknownUnitError).
//   - ErrZeroMargin:   a unit or district margin of exactly zero.
//   - ErrTieUndefined: a Tie outcome requested for an odd total.
//   - weights.ErrYearTooEarly: no apportionment in effect for the year.
//
// AnalyzeYear wraps every failure in *YearError so the year is always
// attached. AnalyzeAll isolates failures per year: the failing year is left
// out of the results and its error is combined into the returned error.
package flipset
