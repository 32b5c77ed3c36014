// Package kruskalmaze generates rectangular perfect mazes via weighted
// randomized Kruskal: a uniform spanning tree of the cell grid sampled
// under a dynamic, locally-recomputed weight distribution keyed on each
// wall's local visual neighborhood.
//
// The module is organized leaves-first, matching the generator's own data
// flow:
//
//	lattice/  — coordinate algebra between linear ids and the interleaved
//	            cell/wall grid (github.com/katalvlaran/kruskalmaze/lattice)
//	dsu/      — disjoint-set forest over cells, union-by-rank with path
//	            compression (github.com/katalvlaran/kruskalmaze/dsu)
//	fenwick/  — mutable prefix-sum index supporting O(log n) weighted
//	            sampling (github.com/katalvlaran/kruskalmaze/fenwick)
//	walltype/ — closed 24-tag wall-pattern classifier and its weight
//	            configuration (github.com/katalvlaran/kruskalmaze/walltype)
//	maze/     — the generator loop coupling the four packages above
//	            (github.com/katalvlaran/kruskalmaze/maze)
//	render/   — optional ASCII/PNG presentation of a built maze
//	            (github.com/katalvlaran/kruskalmaze/render)
//
// The entry point is maze.Build(width, height, weights, rng); see that
// package for the full contract.
package kruskalmaze
