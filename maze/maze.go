package maze

import "github.com/katalvlaran/kruskalmaze/lattice"

// Maze is the opaque result of Build: a fixed-size wall bitmap over the
// interleaved lattice described in lattice.Grid. The zero value is not
// usable; obtain a Maze only from Build.
type Maze struct {
	grid  *lattice.Grid
	edges []bool // edges[wallID]: true = wall present
}

// Width returns the maze's cell width, in cells.
func (m *Maze) Width() int {
	return m.grid.Width
}

// Height returns the maze's cell height, in cells.
func (m *Maze) Height() int {
	return m.grid.Height
}

// WallAt reports whether the wall at logical coordinate (r, c) is present.
// Returns lattice.ErrOutOfRange if (r, c) does not name a wall position of
// this maze's lattice.
func (m *Maze) WallAt(r, c int) (bool, error) {
	id, err := m.grid.WallID(r, c)
	if err != nil {
		return false, err
	}

	return m.edges[id], nil
}

// WallPresent reports whether the wall identified by wallID is present.
// Returns lattice.ErrOutOfRange if wallID is outside [0, grid.Walls).
func (m *Maze) WallPresent(wallID int) (bool, error) {
	if wallID < 0 || wallID >= len(m.edges) {
		return false, lattice.ErrOutOfRange
	}

	return m.edges[wallID], nil
}

// Walls is a Go 1.23 range-over-func iterator over every present wall's
// logical (r, c) coordinate, in increasing wall-id order. Iteration stops
// early if yield returns false, so a caller who only needs a prefix never
// pays for a full O(E) slice allocation.
func (m *Maze) Walls(yield func(r, c int) bool) {
	for id, present := range m.edges {
		if !present {
			continue
		}
		r, c, err := m.grid.WallCoord(id)
		if err != nil {
			// Unreachable: id ranges exactly over [0, grid.Walls).
			continue
		}
		if !yield(r, c) {
			return
		}
	}
}
