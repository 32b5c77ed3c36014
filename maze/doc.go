// Package maze implements the weighted randomized Kruskal generator: the
// driver loop that couples package lattice's coordinate algebra, package
// dsu's union-find, package fenwick's weighted sampler, and package
// walltype's classifier into a single pure function, Build.
//
// What. Build(width, height, weights, rng) removes walls from an initially
// full interleaved lattice one at a time — sampling proportionally to each
// wall's current weight, accepting the removal only if it connects two
// previously-disjoint cells, then rescoring the removed wall's neighborhood
// — until every wall has been consumed or every remaining wall weighs zero.
// When every tag weighs more than zero, the surviving walls describe a
// spanning tree's complement: a perfect maze.
//
// Why. This is the assembly point of the whole module: every invariant the
// other four packages establish in isolation (coordinate round-trips,
// union-find correctness, Fenwick prefix-sum laws, classifier totality) is
// exercised here under the actual generator's access pattern, which is why
// Build's own tests lean on property-based loops over many (W,H,seed)
// triples rather than unit-testing the assembly in isolation.
//
// Complexity: O(E log E) — E iterations, each doing O(1) union-find work
// and O(log E) Fenwick work, plus O(1) reclassification of up to six
// neighbors per accepted removal.
package maze
