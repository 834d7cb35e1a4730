package flipset_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flipset/flipset"
	"github.com/katalvlaran/flipset/knapsack"
	"github.com/katalvlaran/flipset/weights"
)

func TestDetermineWinner(t *testing.T) {
	units, app := evenFixture()
	side, err := flipset.DetermineWinner(units, app)
	require.NoError(t, err)
	assert.Equal(t, flipset.SideA, side)

	flipped := make([]flipset.UnitResult, len(units))
	for i, u := range units {
		flipped[i] = flipset.UnitResult{Code: u.Code, Tally: flipset.Statewide{Margin: -u.Tally.StatewideMargin()}}
	}
	side, err = flipset.DetermineWinner(flipped, app)
	require.NoError(t, err)
	assert.Equal(t, flipset.SideB, side)
}

// TestDetermineWinner_TiedContest: equal side sums must error, not resolve.
func TestDetermineWinner_TiedContest(t *testing.T) {
	units, app := tiedFixture()
	side, err := flipset.DetermineWinner(units, app)
	require.ErrorIs(t, err, flipset.ErrTiedElection)
	assert.Equal(t, flipset.SideNone, side)

	var tied *flipset.TiedElectionError
	require.True(t, errors.As(err, &tied))
	assert.Equal(t, 3, tied.SideA)
	assert.Equal(t, 3, tied.SideB)
}

func TestDetermineWinner_InputErrors(t *testing.T) {
	app := weights.Apportionment{"AA": 3, "BB": 5}

	_, err := flipset.DetermineWinner([]flipset.UnitResult{{Code: "ZZ", Tally: flipset.Statewide{Margin: 1}}}, app)
	require.ErrorIs(t, err, flipset.ErrUnknownUnit)
	var unknown *flipset.UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ZZ", unknown.Code)

	_, err = flipset.DetermineWinner([]flipset.UnitResult{{Code: "AA", Tally: flipset.Statewide{Margin: 0}}}, app)
	assert.ErrorIs(t, err, flipset.ErrZeroMargin)

	_, err = flipset.DetermineWinner([]flipset.UnitResult{{Code: "AA"}}, app)
	assert.ErrorIs(t, err, flipset.ErrMissingTally)
}

// TestBuildCandidates_Statewide keeps only winner-side units, in input order.
func TestBuildCandidates_Statewide(t *testing.T) {
	units, app := evenFixture()
	got, err := flipset.NewAnalyzer().BuildCandidates(units, app, flipset.SideA)
	require.NoError(t, err)

	want := []flipset.Candidate{
		{Code: "AA", Kind: flipset.UnitCandidate, Margin: 20, Item: knapsack.Item{Weight: 10, Value: 21}},
		{Code: "BB", Kind: flipset.UnitCandidate, Margin: 2, Item: knapsack.Item{Weight: 4, Value: 3}},
		{Code: "DD", Kind: flipset.UnitCandidate, Margin: 7, Item: knapsack.Item{Weight: 6, Value: 8}},
		{Code: "FF", Kind: flipset.UnitCandidate, Margin: 1, Item: knapsack.Item{Weight: 3, Value: 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildCandidates_Districts: a winner-side subdivided unit yields its
// bonus and winner-favoring districts; a loser-side one yields only its
// winner-favoring districts, after all winner-side units.
func TestBuildCandidates_Districts(t *testing.T) {
	units, app := districtFixture()
	got, err := flipset.NewAnalyzer().BuildCandidates(units, app, flipset.SideA)
	require.NoError(t, err)

	want := []flipset.Candidate{
		{Code: "ME", Kind: flipset.BonusCandidate, Margin: 100, Item: knapsack.Item{Weight: 2, Value: 101}},
		{Code: "ME1", Kind: flipset.DistrictCandidate, Margin: 200, Item: knapsack.Item{Weight: 1, Value: 201}},
		{Code: "XX", Kind: flipset.UnitCandidate, Margin: 50, Item: knapsack.Item{Weight: 10, Value: 51}},
		{Code: "NE2", Kind: flipset.DistrictCandidate, Margin: 30, Item: knapsack.Item{Weight: 1, Value: 31}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildCandidates_DistrictsForSideB mirrors the district fixture.
func TestBuildCandidates_DistrictsForSideB(t *testing.T) {
	units := []flipset.UnitResult{
		{Code: "ME", Tally: flipset.Districted{Margin: 10, Districts: []flipset.DistrictResult{
			{Code: "ME1", Margin: 15}, {Code: "ME2", Margin: -4},
		}}},
		{Code: "TX", Tally: flipset.Statewide{Margin: -90}},
	}
	app := weights.Apportionment{"ME": 4, "TX": 38}

	got, err := flipset.NewAnalyzer(flipset.WithConvention(flipset.ExactTie)).BuildCandidates(units, app, flipset.SideB)
	require.NoError(t, err)
	want := []flipset.Candidate{
		{Code: "TX", Kind: flipset.UnitCandidate, Margin: -90, Item: knapsack.Item{Weight: 38, Value: 90}},
		{Code: "ME2", Kind: flipset.DistrictCandidate, Margin: -4, Item: knapsack.Item{Weight: 1, Value: 4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCandidates_StatewideBonusOption(t *testing.T) {
	units, app := districtFixture()
	got, err := flipset.NewAnalyzer(flipset.WithStatewideBonus(3)).BuildCandidates(units, app, flipset.SideA)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, flipset.BonusCandidate, got[0].Kind)
	assert.Equal(t, 3, got[0].Item.Weight)
}

func TestBuildCandidates_Errors(t *testing.T) {
	a := flipset.NewAnalyzer()
	units, app := districtFixture()

	_, err := a.BuildCandidates(units, app, flipset.SideNone)
	assert.ErrorIs(t, err, flipset.ErrNoWinner)

	zeroDistrict := []flipset.UnitResult{{Code: "ME", Tally: flipset.Districted{Margin: 5, Districts: []flipset.DistrictResult{
		{Code: "ME1", Margin: 0},
	}}}}
	_, err = a.BuildCandidates(zeroDistrict, app, flipset.SideA)
	assert.ErrorIs(t, err, flipset.ErrZeroMargin)

	_, err = a.BuildCandidates([]flipset.UnitResult{{Code: "QQ", Tally: flipset.Statewide{Margin: 1}}}, app, flipset.SideA)
	assert.ErrorIs(t, err, flipset.ErrUnknownUnit)
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { flipset.WithStatewideBonus(0) })
	assert.Panics(t, func() { flipset.WithWorkers(0) })
	assert.Panics(t, func() { flipset.WithLogger(nil) })
}
