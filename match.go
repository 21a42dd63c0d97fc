package beadgrid

import (
	"gonum.org/v1/gonum/floats"
)

// Distance is the plain Euclidean distance between a and b in 0-255 RGB
// space. There is no gamma correction or perceptual weighting, so visually
// close colors are not always numerically close.
func Distance(a, b Color) float64 {
	return floats.Distance(rgbVec(a), rgbVec(b), 2)
}

func rgbVec(c Color) []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// Nearest returns the entry of p closest to c. Ties go to the entry that
// comes first in p, so repeated calls are deterministic.
func (p Palette) Nearest(c Color) (Color, error) {
	m, err := newMatcher(p)
	if err != nil {
		return Empty, err
	}
	return m.nearest(c), nil
}

// matcher caches the palette vectors for repeated lookups during an import.
type matcher struct {
	palette Palette
	vecs    [][]float64
	buf     []float64
}

func newMatcher(p Palette) (*matcher, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	vecs := make([][]float64, len(p))
	for i, c := range p {
		vecs[i] = rgbVec(c)
	}
	return &matcher{palette: p, vecs: vecs, buf: make([]float64, 3)}, nil
}

func (m *matcher) nearest(c Color) Color {
	m.buf[0], m.buf[1], m.buf[2] = float64(c.R), float64(c.G), float64(c.B)
	best := 0
	bestDist := floats.Distance(m.buf, m.vecs[0], 2)
	for i := 1; i < len(m.vecs); i++ {
		d := floats.Distance(m.buf, m.vecs[i], 2)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return m.palette[best]
}
