package render

import "github.com/katalvlaran/kruskalmaze/maze"

// ASCII renders m as a wall-glyph diagram: '+' at every cell corner, '-'
// for a present horizontal segment, '|' for a present vertical segment,
// and a space where a wall has been removed or no wall exists. The outer
// perimeter of the grid is always drawn solid — it is the maze's boundary,
// not one of the interior walls m's bitmap models.
//
// The result is (2*height+1) lines of (2*width+1) runes each, terminated by
// a trailing newline.
func ASCII(m *maze.Maze) string {
	w, h := m.Width(), m.Height()
	rows := 2*h + 1
	cols := 2*w + 1

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = make([]byte, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch {
			case r%2 == 0 && c%2 == 0:
				grid[r][c] = '+'
			case r%2 == 0:
				grid[r][c] = horizontalGlyph(m, r, c, h)
			case c%2 == 0:
				grid[r][c] = verticalGlyph(m, r, c, w)
			}
		}
	}

	out := make([]byte, 0, rows*(cols+1))
	for _, line := range grid {
		out = append(out, line...)
		out = append(out, '\n')
	}

	return string(out)
}

// horizontalGlyph resolves the segment between two vertically adjacent
// cells at output row r (even), column c (odd). Output row 0 and row 2*h
// are the grid's outer boundary and are always solid.
func horizontalGlyph(m *maze.Maze, r, c, h int) byte {
	if r == 0 || r == 2*h {
		return '-'
	}

	i := (r - 2) / 2
	j := (c - 1) / 2
	present, err := m.WallAt(2*i+1, 2*j)
	if err != nil || present {
		return '-'
	}

	return ' '
}

// verticalGlyph resolves the segment between two horizontally adjacent
// cells at output row r (odd), column c (even). Output column 0 and column
// 2*w are the grid's outer boundary and are always solid.
func verticalGlyph(m *maze.Maze, r, c, w int) byte {
	if c == 0 || c == 2*w {
		return '|'
	}

	i := (r - 1) / 2
	j := (c - 2) / 2
	present, err := m.WallAt(2*i, 2*j+1)
	if err != nil || present {
		return '|'
	}

	return ' '
}
