package flipset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flipset/flipset"
	"github.com/katalvlaran/flipset/weights"
)

// evenFixture: total 28, SideA holds 23.
//
//	Win (capacity 13): keep AA+FF (23) → flip BB, DD (11 votes)
//	Tie (capacity 14): keep AA+BB (24) → flip DD, FF (10 votes)
func evenFixture() ([]flipset.UnitResult, weights.Apportionment) {
	units := []flipset.UnitResult{
		{Code: "AA", Tally: flipset.Statewide{Margin: 20}},
		{Code: "BB", Tally: flipset.Statewide{Margin: 2}},
		{Code: "CC", Tally: flipset.Statewide{Margin: -50}},
		{Code: "DD", Tally: flipset.Statewide{Margin: 7}},
		{Code: "EE", Tally: flipset.Statewide{Margin: -3}},
		{Code: "FF", Tally: flipset.Statewide{Margin: 1}},
	}
	app := weights.Apportionment{"AA": 10, "BB": 4, "CC": 3, "DD": 6, "EE": 2, "FF": 3}

	return units, app
}

// oddFixture: total 23, SideA holds 20; Win capacity 11 keeps AA.
func oddFixture() ([]flipset.UnitResult, weights.Apportionment) {
	units := []flipset.UnitResult{
		{Code: "AA", Tally: flipset.Statewide{Margin: 20}},
		{Code: "BB", Tally: flipset.Statewide{Margin: 2}},
		{Code: "CC", Tally: flipset.Statewide{Margin: -50}},
		{Code: "DD", Tally: flipset.Statewide{Margin: 7}},
	}
	app := weights.Apportionment{"AA": 10, "BB": 4, "CC": 3, "DD": 6}

	return units, app
}

// districtFixture: ME and NE are subdivided, total 25, SideA holds 14.
func districtFixture() ([]flipset.UnitResult, weights.Apportionment) {
	units := []flipset.UnitResult{
		{Code: "ME", Tally: flipset.Districted{Margin: 100, Districts: []flipset.DistrictResult{
			{Code: "ME1", Margin: 200},
			{Code: "ME2", Margin: -100},
		}}},
		{Code: "NE", Tally: flipset.Districted{Margin: -1000, Districts: []flipset.DistrictResult{
			{Code: "NE1", Margin: -500},
			{Code: "NE2", Margin: 30},
			{Code: "NE3", Margin: -800},
		}}},
		{Code: "XX", Tally: flipset.Statewide{Margin: 50}},
		{Code: "YY", Tally: flipset.Statewide{Margin: -40}},
	}
	app := weights.Apportionment{"ME": 4, "NE": 5, "XX": 10, "YY": 6}

	return units, app
}

// tiedFixture: two units of weight 3 with opposite margins.
func tiedFixture() ([]flipset.UnitResult, weights.Apportionment) {
	units := []flipset.UnitResult{
		{Code: "AA", Tally: flipset.Statewide{Margin: 5}},
		{Code: "BB", Tally: flipset.Statewide{Margin: -5}},
	}

	return units, weights.Apportionment{"AA": 3, "BB": 3}
}

func tableOf(t *testing.T, entries ...weights.Entry) *weights.Table {
	t.Helper()
	tbl, err := weights.NewTable(entries...)
	require.NoError(t, err)

	return tbl
}
