// Package knapsack solves the 0/1 knapsack problem with optimal-subset
// reconstruction.
//
// What:
//
//	Given items with a non-negative integer Weight and Value and a capacity,
//	Solve returns the maximum total value of a subset whose total weight does
//	not exceed the capacity, each item taken at most once, together with the
//	ascending indices of that subset.
//
// Algorithm (bottom-up DP over item index × capacity):
//
//	dp[0][c] = 0
//	dp[i][c] = dp[i-1][c]                                   if w_i > c
//	dp[i][c] = max(dp[i-1][c], dp[i-1][c-w_i] + v_i)          otherwise
//
// Tie-break:
//
//	The improving branch is taken only when it is strictly greater than
//	dp[i-1][c]. Among equal-value subsets the one built from earlier items
//	wins, and the result is fully determined by the item order.
//
// Memory modes:
//
//   - TwoRows: two rolling rows; each cell carries its index list as a
//     tail-shared persistent list. Memory: O(capacity + picks).
//   - FullMatrix: the whole (n+1)×(capacity+1) value table; indices are
//     recovered by backtracking. Memory: O(n·capacity).
//
// Both modes return identical solutions.
//
// Complexity:
//
//   - Time:   O(n·capacity)
//   - Memory: see above
//
// Errors:
//
//   - ErrNegativeCapacity: capacity < 0.
//   - ErrNegativeWeight:   some item has Weight < 0.
//   - ErrNegativeValue:    some item has Value < 0.
//   - ErrUnknownMemoryMode: Options.MemoryMode is not a known mode.
//
// Edge cases such as an empty item list or a zero capacity are not errors;
// they yield an empty selection with value 0.
package knapsack
