// Package lattice implements the coordinate algebra for a rectangular
// maze's interleaved (2H−1)×(2W−1) lattice: the bijections between linear
// cell/wall identifiers and 2-D positions.
//
// What:
//
//   - A Grid fixes (W, H) and exposes CellID/CellCoord and WallID/WallCoord,
//     each pair a total, round-tripping bijection on its declared domain.
//   - Even-row/even-col positions are cells; positions with exactly one odd
//     coordinate are walls (vertical: even row, odd col; horizontal: odd
//     row, even col).
//
// Why:
//
//   - Keeping the coordinate algebra in its own package isolates the one
//     part of this system that is pure arithmetic with no state, so the
//     generator loop (package maze) and the classifier (package walltype)
//     can both depend on it without the classifier depending on the
//     generator.
//
// Complexity: O(1) per operation, O(1) memory (a Grid stores only W, H and
// their derived constants).
package lattice
