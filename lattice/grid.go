package lattice

// Grid fixes a maze's cell dimensions (Width × Height) and exposes the
// bijections between linear cell/wall identifiers and 2-D positions on the
// interleaved (2*Height-1) × (2*Width-1) lattice a maze is built over.
//
// The zero value is not usable; construct with NewGrid.
type Grid struct {
	Width, Height int
	// Cells is Width*Height, the number of cell positions.
	Cells int
	// Walls is (Width-1)*Height + (Height-1)*Width, the number of wall
	// positions (vertical plus horizontal).
	Walls int
	// rowPairWidth is 2*Width-1, the number of walls contributed by one
	// "row-pair" (one row of vertical walls followed by one row of
	// horizontal walls).
	rowPairWidth int
}

// NewGrid returns a Grid for the given cell dimensions. Panics if width < 1
// or height < 1 — the lattice algebra is undefined below a single cell;
// the stricter "at least 2x2" rule a maze requires lives in package maze,
// since a 1xN lattice is still a coherent (if wall-less in one axis)
// coordinate space.
func NewGrid(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic("lattice: NewGrid: width and height must be ≥ 1")
	}

	return &Grid{
		Width:        width,
		Height:       height,
		Cells:        width * height,
		Walls:        (width-1)*height + (height-1)*width,
		rowPairWidth: 2*width - 1,
	}
}

// inBounds reports whether (r, c) lies within the lattice's logical extent:
// 0 ≤ r < 2*Height-1, 0 ≤ c < 2*Width-1.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < 2*g.Height-1 && c >= 0 && c < 2*g.Width-1
}

// CellID maps a cell's logical coordinate (r, c), both even, to its
// row-major identifier in [0, Cells). Returns ErrOutOfRange if (r, c) is
// out of bounds or does not name a cell (one of r, c odd).
//
// Complexity: O(1).
func (g *Grid) CellID(r, c int) (int, error) {
	if !g.inBounds(r, c) || r%2 != 0 || c%2 != 0 {
		return 0, ErrOutOfRange
	}

	return (r/2)*g.Width + c/2, nil
}

// CellCoord is the inverse of CellID: maps a cell id in [0, Cells) back to
// its (r, c) coordinate. Returns ErrOutOfRange if id is out of range.
//
// Complexity: O(1).
func (g *Grid) CellCoord(id int) (r, c int, err error) {
	if id < 0 || id >= g.Cells {
		return 0, 0, ErrOutOfRange
	}

	return 2 * (id / g.Width), 2 * (id % g.Width), nil
}

// WallID maps a wall's logical coordinate (r, c) — exactly one of r, c odd
// — to its row-sweep identifier in [0, Walls). Vertical walls (r even, c
// odd) and horizontal walls (r odd, c even) are enumerated together, one
// "row-pair" of (Width-1) verticals then (Width) horizontals at a time.
// Returns ErrOutOfRange if (r, c) is out of bounds or does not name a wall.
//
// Complexity: O(1).
func (g *Grid) WallID(r, c int) (int, error) {
	if !g.inBounds(r, c) {
		return 0, ErrOutOfRange
	}

	switch {
	case r%2 == 0 && c%2 == 1:
		// Vertical wall: row-pair q = r/2, offset m = c/2 in [0, Width-2].
		q, m := r/2, c/2
		return q*g.rowPairWidth + m, nil
	case r%2 == 1 && c%2 == 0:
		// Horizontal wall: row-pair q = (r-1)/2, offset (Width-1)+c/2.
		q, m := (r-1)/2, (g.Width-1)+c/2
		return q*g.rowPairWidth + m, nil
	default:
		// Both even (a cell) or both odd (no lattice position at all).
		return 0, ErrOutOfRange
	}
}

// WallCoord is the inverse of WallID: maps a wall id in [0, Walls) back to
// its (r, c) coordinate. Returns ErrOutOfRange if id is out of range.
//
// Complexity: O(1).
func (g *Grid) WallCoord(id int) (r, c int, err error) {
	if id < 0 || id >= g.Walls {
		return 0, 0, ErrOutOfRange
	}

	q, m := id/g.rowPairWidth, id%g.rowPairWidth
	if m < g.Width-1 {
		return 2 * q, 2*m + 1, nil
	}

	return 2*q + 1, 2 * (m - (g.Width - 1)), nil
}

// IsVertical reports whether the wall at (r, c) is a vertical wall (r even).
// Callers are expected to have already validated (r, c) names a wall.
func IsVertical(r, _ int) bool {
	return r%2 == 0
}
