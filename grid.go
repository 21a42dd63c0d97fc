package beadgrid

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Grid is a width x height bead pattern stored row-major in one flat buffer.
//
// Grid has value semantics: every method that produces a grid returns an
// independent copy and never modifies the receiver. The zero Grid has no
// cells and is not a valid pattern; use NewGrid.
type Grid struct {
	w, h  int
	cells []Color
}

// NewGrid returns an all-Empty grid.
func NewGrid(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) Grid {
	return Grid{w: width, h: height, cells: make([]Color, width*height)}
}

// GridFromRows builds a grid from rows of equal, non-zero length.
func GridFromRows(rows [][]Color) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: no cells", ErrInvalidSize)
	}
	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(row), g.w)
		}
		for x, c := range row {
			g.cells[g.offset(x, y)] = c.canonical()
		}
	}
	return g, nil
}

func (g Grid) Width() int  { return g.w }
func (g Grid) Height() int { return g.h }

func (g Grid) Size() image.Point {
	return image.Pt(g.w, g.h)
}

// In reports whether (x, y) addresses a cell of g.
func (g Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g Grid) offset(x, y int) int {
	return y*g.w + x
}

// At returns the cell at (x, y), or Empty outside the grid.
func (g Grid) At(x, y int) Color {
	if !g.In(x, y) {
		return Empty
	}
	return g.cells[g.offset(x, y)]
}

// Paint returns a copy of g with cell (x, y) set to c. Painting Empty, or
// any other value for which IsEmpty reports true, erases.
//
// Coordinates must be inside the grid; clamping pointer input is the
// caller's job. Like image.RGBA.Set, an out-of-range write is dropped and
// the copy equals g.
func (g Grid) Paint(x, y int, c Color) Grid {
	out := g.Clone()
	if g.In(x, y) {
		out.cells[g.offset(x, y)] = c.canonical()
	}
	return out
}

// Resize returns a width x height grid holding the overlapping top-left
// rectangle of g. Cells outside g are Empty; cells outside the new bounds
// are dropped. Each axis grows or shrinks independently.
func (g Grid) Resize(width, height int) (Grid, error) {
	out, err := NewGrid(width, height)
	if err != nil {
		return Grid{}, err
	}
	cw := min(g.w, width)
	for y := range min(g.h, height) {
		copy(out.cells[y*width:y*width+cw], g.cells[y*g.w:y*g.w+cw])
	}
	return out, nil
}

// Clear returns an all-Empty grid of the same size.
func (g Grid) Clear() Grid {
	return newGrid(g.w, g.h)
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	return Grid{w: g.w, h: g.h, cells: slices.Clone(g.cells)}
}

func (g Grid) Equal(o Grid) bool {
	return g.w == o.w && g.h == o.h && slices.Equal(g.cells, o.cells)
}

// Rows returns a freshly allocated row-major copy of the cells.
func (g Grid) Rows() [][]Color {
	rows := make([][]Color, g.h)
	for y := range g.h {
		rows[y] = slices.Clone(g.cells[y*g.w : (y+1)*g.w])
	}
	return rows
}

// BeadCount is the number of non-Empty cells.
func (g Grid) BeadCount() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Histogram counts beads per color. Empty cells are not counted.
func (g Grid) Histogram() map[Color]int {
	out := make(map[Color]int)
	for _, c := range g.cells {
		if !c.IsEmpty() {
			out[c]++
		}
	}
	return out
}

// Image exposes g as a one-pixel-per-cell image. Empty cells are transparent.
func (g Grid) Image() image.Image {
	return gridImage{g.Clone()}
}

type gridImage struct {
	g Grid
}

var _ image.Image = gridImage{}

func (m gridImage) ColorModel() color.Model { return color.RGBAModel }

func (m gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.w, m.g.h)
}

func (m gridImage) At(x, y int) color.Color {
	return m.g.At(x, y)
}
