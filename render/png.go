package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/kruskalmaze/maze"
)

// ErrInvalidCellPixels is returned by PNG when cellPixels < 2 — too small
// to draw both a cell interior and its bordering walls.
var ErrInvalidCellPixels = errors.New("render: cellPixels must be ≥ 2")

// PNG rasterizes m to w as a PNG image: each cell occupies a cellPixels x
// cellPixels square, with a one-pixel black border drawn wherever the
// corresponding wall (or the grid's outer boundary) is present. The whole
// maze is built once as a single image.Gray canvas and encoded via
// image/png, rather than composed from per-cell images.
func PNG(w io.Writer, m *maze.Maze, cellPixels int) error {
	if cellPixels < 2 {
		return ErrInvalidCellPixels
	}

	width, height := m.Width(), m.Height()
	imgW := width*cellPixels + 1
	imgH := height*cellPixels + 1
	canvas := image.NewGray(image.Rect(0, 0, imgW, imgH))
	for y := 0; y < imgH; y++ {
		for x := 0; x < imgW; x++ {
			canvas.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			drawCellBorders(canvas, m, i, j, cellPixels, width, height)
		}
	}

	return png.Encode(w, canvas)
}

// drawCellBorders paints the top, left, bottom, and right borders of cell
// (i, j), consulting m's wall bitmap for interior borders and always
// painting the grid's outer boundary.
func drawCellBorders(canvas *image.Gray, m *maze.Maze, i, j, cellPixels, width, height int) {
	x0, y0 := j*cellPixels, i*cellPixels
	x1, y1 := x0+cellPixels, y0+cellPixels

	if i == 0 || wallPresent(m, 2*i-1, 2*j) {
		drawHLine(canvas, x0, x1, y0)
	}
	if i == height-1 || wallPresent(m, 2*i+1, 2*j) {
		drawHLine(canvas, x0, x1, y1)
	}
	if j == 0 || wallPresent(m, 2*i, 2*j-1) {
		drawVLine(canvas, y0, y1, x0)
	}
	if j == width-1 || wallPresent(m, 2*i, 2*j+1) {
		drawVLine(canvas, y0, y1, x1)
	}
}

// wallPresent reports whether the wall at lattice coordinate (r, c) is
// present, treating an out-of-range coordinate (the grid's outer boundary,
// which m's bitmap does not model) as absent — callers handle the boundary
// explicitly before consulting this helper.
func wallPresent(m *maze.Maze, r, c int) bool {
	present, err := m.WallAt(r, c)
	return err == nil && present
}

func drawHLine(canvas *image.Gray, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		canvas.SetGray(x, y, color.Gray{Y: 0})
	}
}

func drawVLine(canvas *image.Gray, y0, y1, x int) {
	for y := y0; y <= y1; y++ {
		canvas.SetGray(x, y, color.Gray{Y: 0})
	}
}
