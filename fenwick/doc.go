// Package fenwick implements a mutable, non-negative-integer-valued prefix-
// sum index (a Fenwick / binary-indexed tree) supporting point updates,
// prefix sums, and weighted-sampling lookups in O(log n).
//
// What:
//
//   - Index wraps a 1-indexed internal tree of length n+1 over a logical
//     0-indexed domain [0, n).
//   - Set(i, v) assigns weights[i] = v and updates the tree and running
//     total in O(log n).
//   - PrefixSum(i) returns Σ_{j≤i} weights[j] in O(log n).
//   - Total() returns the running total in O(1).
//   - LowerBound(s) returns the smallest i with PrefixSum(i) ≥ s, via binary
//     lifting over the Fenwick layout, in O(log n).
//
// Why:
//
//   - The maze generator needs to draw a wall index proportionally to its
//     current aesthetic weight, and to re-zero a wall's weight the instant
//     it is consumed, without re-summing the whole array. A Fenwick tree is
//     the textbook structure for exactly this: point update + prefix query
//     in logarithmic time, with an inverse query (LowerBound) that turns it
//     into an O(log n) weighted sampler.
//
// Complexity: all operations O(log n) except Total (O(1)) and construction
// (O(n)). Memory: Θ(n).
//
// PrefixSum is derived uniformly for every i in range — no special-cased
// shortcut for the last index, which would only save one branch at the risk
// of a silent off-by-one on a boundary that is never exercised in practice.
package fenwick
