package beadgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = RGB(255, 0, 0)
	green = RGB(0, 255, 0)
	blue  = RGB(0, 0, 255)
)

func filledGrid(t *testing.T, w, h int, c Color) Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			g = g.Paint(x, y, c)
		}
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Zero(t, g.BeadCount())
	for _, row := range g.Rows() {
		assert.Len(t, row, 3)
		for _, c := range row {
			assert.Equal(t, Empty, c)
		}
	}

	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := NewGrid(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]Color{{red, Empty}, {Empty, blue}})
	require.NoError(t, err)
	assert.Equal(t, red, g.At(0, 0))
	assert.Equal(t, blue, g.At(1, 1))

	_, err = GridFromRows([][]Color{{red, red}, {blue}})
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = GridFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestPaintChangesOnlyTargetCell(t *testing.T) {
	base := filledGrid(t, 4, 3, green)
	for y := range base.Height() {
		for x := range base.Width() {
			got := base.Paint(x, y, red)
			for yy := range base.Height() {
				for xx := range base.Width() {
					want := base.At(xx, yy)
					if xx == x && yy == y {
						want = red
					}
					require.Equal(t, want, got.At(xx, yy), "paint(%d,%d) cell (%d,%d)", x, y, xx, yy)
				}
			}
		}
	}
}

func TestPaintIsPure(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	painted := g.Paint(1, 1, red)
	assert.Equal(t, Empty, g.At(1, 1))
	assert.Equal(t, red, painted.At(1, 1))

	erased := painted.Paint(1, 1, Empty)
	assert.Equal(t, Empty, erased.At(1, 1))
	assert.Equal(t, red, painted.At(1, 1))
}

func TestPaintOutOfRangeIsDropped(t *testing.T) {
	g := filledGrid(t, 3, 3, green)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {0, -1}} {
		assert.True(t, g.Equal(g.Paint(p[0], p[1], red)))
	}
	assert.Equal(t, Empty, g.At(5, 5))
}

func TestUnsetLiteralStoresAsEmpty(t *testing.T) {
	lit := Color{R: 255}
	require.True(t, lit.IsEmpty())

	g, err := NewGrid(2, 1)
	require.NoError(t, err)
	painted := g.Paint(0, 0, lit)
	assert.Equal(t, Empty, painted.At(0, 0))
	assert.True(t, painted.Equal(g))
	assert.Empty(t, painted.Histogram())

	erased := filledGrid(t, 2, 1, red).Paint(0, 0, lit)
	assert.Equal(t, Empty, erased.At(0, 0))

	fromRows, err := GridFromRows([][]Color{{lit, Color{G: 9, B: 9}}})
	require.NoError(t, err)
	assert.True(t, fromRows.Equal(g))

	h := NewHistory(g)
	if !painted.Equal(h.Current()) {
		h.Commit(painted)
	}
	assert.Equal(t, 1, h.Len())
}

func TestResize(t *testing.T) {
	g, err := GridFromRows([][]Color{
		{red, green, blue},
		{blue, red, green},
	})
	require.NoError(t, err)

	t.Run("grow width shrink height", func(t *testing.T) {
		out, err := g.Resize(5, 1)
		require.NoError(t, err)
		assert.Equal(t, [][]Color{{red, green, blue, Empty, Empty}}, out.Rows())
	})
	t.Run("shrink width grow height", func(t *testing.T) {
		out, err := g.Resize(2, 3)
		require.NoError(t, err)
		assert.Equal(t, [][]Color{
			{red, green},
			{blue, red},
			{Empty, Empty},
		}, out.Rows())
	})
	t.Run("same size copies", func(t *testing.T) {
		out, err := g.Resize(3, 2)
		require.NoError(t, err)
		assert.True(t, g.Equal(out))
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := g.Resize(0, 2)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestResizeIsNotInvertible(t *testing.T) {
	g := filledGrid(t, 4, 4, red)
	small, err := g.Resize(2, 2)
	require.NoError(t, err)
	back, err := small.Resize(4, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, back.BeadCount())
	for y := range 4 {
		for x := range 4 {
			want := Empty
			if x < 2 && y < 2 {
				want = red
			}
			assert.Equal(t, want, back.At(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 16, g.BeadCount(), "source grid must not change")
}

func TestClear(t *testing.T) {
	g := filledGrid(t, 3, 2, blue)
	c := g.Clear()
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Zero(t, c.BeadCount())
	assert.Equal(t, 6, g.BeadCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g := filledGrid(t, 2, 2, red)
	c := g.Clone()
	rows := c.Rows()
	rows[0][0] = blue
	assert.Equal(t, red, c.At(0, 0))
	assert.True(t, g.Equal(c))
}

func TestHistogram(t *testing.T) {
	g, err := GridFromRows([][]Color{{red, red, Empty}, {blue, Empty, red}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.BeadCount())
	assert.Equal(t, map[Color]int{red: 3, blue: 1}, g.Histogram())
}

func TestGridImage(t *testing.T) {
	g, err := GridFromRows([][]Color{{red, Empty}})
	require.NoError(t, err)
	img := g.Image()
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, red, FromColor(img.At(0, 0)))
	_, _, _, a := img.At(1, 0).RGBA()
	assert.Zero(t, a)
}
