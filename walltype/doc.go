// Package walltype implements the wall-type classifier: a total function
// from a wall's local 6-neighbor pattern to one of 24 canonical tags,
// modulo the symmetry group of the wall stub (swap sides, reflect each side
// top-to-bottom), plus the WallWeights configuration record (one weight per
// tag) the classifier's output is looked up against.
//
// What:
//
//   - Tag is a closed enumeration of the 24 canonical two-sided patterns.
//     Perimeter walls classify into the 6 of those 24 tags whose right-hand
//     side is "000", the one-sided family.
//   - Classify(grid, present, wallID) reduces a wall's raw 6-bit (or, on the
//     perimeter, 3-bit) neighborhood pattern to its canonical Tag, via two
//     precomputed lookup tables (64-entry two-sided, 8-entry one-sided)
//     built once from the symmetry rules of the taxonomy.
//   - WallWeights maps each Tag to a non-negative weight; NewWeights and its
//     Option functions build one following a functional-options idiom.
//
// Why:
//
//   - The 64 raw two-sided patterns (and 8 one-sided ones) are far more than
//     a user should have to configure. Canonicalizing them to 24 tags ahead
//     of time keeps WallWeights small and keeps Classify's cost fixed
//     (O(1), one table lookup after at most six neighbor-coordinate
//     conversions) regardless of how the symmetry rules are expressed.
//
// Complexity: Classify is O(1) (six lattice conversions plus one table
// lookup). Table construction is O(1) (64 + 8 fixed entries), done once at
// package init.
package walltype
