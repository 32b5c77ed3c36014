// Package render draws a *maze.Maze for a human: an ASCII wall-glyph grid
// for a terminal, or a rasterized PNG for a file. Neither function is part
// of the core generator contract; both are optional presentation layers
// built entirely from outside maze/walltype/fenwick/dsu/lattice, the way an
// external CLI front-end would consume Maze.WallAt.
//
// ASCII renders a (2H+1)x(2W+1) rune grid with glyphs at odd/even positions.
// PNG rasterizes fixed-size square cells with walls drawn as a one-pixel
// border, using only image/image/color/png from the standard library: a
// headless wall bitmap has no need for a third-party raster-graphics or
// terminal-UI dependency.
package render
