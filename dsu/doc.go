// Package dsu implements a disjoint-set forest (union-find) over a dense
// integer universe 0..n, with union-by-rank and path compression.
//
// What:
//
//   - Forest wraps two parallel slices (parent, rank) sized at construction.
//   - Find(x) locates the representative of x's set, compressing the path.
//   - Union(x, y) merges x's and y's sets and reports whether a merge
//     actually happened — the signal a Kruskal-style loop needs to decide
//     whether an edge would close a cycle.
//
// Why:
//
//   - The maze generator's cells live in a fixed universe (0..W*H); a plain
//     array-backed forest avoids the map-keyed indirection a general-purpose
//     graph library needs for string vertex IDs.
//
// Complexity:
//
//   - Find, Union: O(α(n)) amortized (inverse Ackermann).
//   - NewForest: O(n) time and space.
//
package dsu
