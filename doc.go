// Package flipset answers one question about winner-take-all electoral
// systems: what is the smallest popular-vote change that would have
// reversed (or tied) a result?
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit built around a 0/1 knapsack:
//		• Knapsack: optimal subset with two memory layouts
//		• Weights: time-versioned apportionment tables
//		• Flip sets: winner detection, district-aware items, win and tie outcomes
//		• Dataset: CSV archive loader over any fs.FS
//		• Report: JSON or YAML documents keyed by year
//
// ✨ How it works
//
//   - The winner keeps the units whose total weight stays at or below
//     total − necessary, choosing them to maximize the votes kept.
//   - Everything the winner cannot keep is the flip set: the cheapest
//     reversal in popular votes.
//   - Subdivided units ("ME1", "NE2") contribute a statewide bonus and one
//     item per district.
//
// Packages:
//
//	knapsack/     : 0/1 knapsack solver, no election knowledge
//	weights/      : apportionment lookup by effective year
//	flipset/      : winner, candidates, capacity, per-year and batch analysis
//	dataset/      : electoralVotes/ and electionResults/ CSV loader
//	report/       : result documents
//	cmd/flipset/  : the command-line front end
//
// Quick start:
//
//	go install github.com/katalvlaran/flipset/cmd/flipset@latest
//	flipset analyze --data-dir data
package flipset
