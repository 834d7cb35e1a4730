// Package dataset loads weight tables and election margins from the CSV
// layout used by the historical results archive:
//
//	electoralVotes/1972.csv    state_code,electoral_votes
//	electionResults/1976.csv   state_code,d_votes,r_votes,total_votes
//
// Each file starts with a header row, which is skipped. The leading four
// digits of a file name are its year; other files are ignored. Result rows
// with a two-letter code are states; longer codes ("ME1", "NE2") are
// districts of the state named by their first two letters, numbered from 1.
//
// Margins are d_votes − r_votes, so flipset.SideA is the Democratic side.
package dataset
