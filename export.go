package beadgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

const DefaultCellSize = 10

var (
	gridLineColor     = color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	previewBackground = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	highlightColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
)

type RenderOptions struct {
	// Pixels per cell edge.
	CellSize int
	// nil leaves the background transparent.
	Background color.Color
	// Draws cell borders under the beads.
	GridLines bool
	// Adds a small light spot to each bead.
	Highlight bool
}

// DefaultRenderOptions matches the pattern export: 10px cells on a
// transparent background.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{CellSize: DefaultCellSize}
}

// PreviewRenderOptions fits g into roughly maxWidth pixels with beads of at
// most 10px, on a light background with highlights.
func PreviewRenderOptions(g Grid, maxWidth int) RenderOptions {
	cell := DefaultCellSize
	if g.Width() > 0 {
		cell = max(1, min(DefaultCellSize, maxWidth/g.Width()))
	}
	return RenderOptions{
		CellSize:   cell,
		Background: previewBackground,
		Highlight:  true,
	}
}

// Render rasterizes g with one filled circle per bead.
func Render(g Grid, opts RenderOptions) (*image.NRGBA, error) {
	cell := opts.CellSize
	if cell < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidSize, cell)
	}
	bounds := image.Rect(0, 0, g.Width()*cell, g.Height()*cell)
	dst := image.NewNRGBA(bounds)
	if opts.Background != nil {
		draw.Draw(dst, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if opts.GridLines {
		drawGridLines(dst, g.Width(), g.Height(), cell)
	}

	fc := float64(cell)
	radius := fc/2 - 1
	if radius <= 0 {
		radius = fc / 2
	}
	for y := range g.Height() {
		for x := range g.Width() {
			c := g.At(x, y)
			if c.IsEmpty() {
				continue
			}
			cx := float64(x)*fc + fc/2
			cy := float64(y)*fc + fc/2
			fillCircle(dst, cx, cy, radius, c)
			if opts.Highlight {
				fillCircle(dst, cx-fc/5, cy-fc/5, fc/4, highlightColor)
			}
		}
	}
	return dst, nil
}

// EncodePNG renders g and writes it as PNG.
func EncodePNG(w io.Writer, g Grid, opts RenderOptions) error {
	img, err := Render(g, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func drawGridLines(dst draw.Image, w, h, cell int) {
	b := dst.Bounds()
	line := image.NewUniform(gridLineColor)
	for i := 0; i <= w; i++ {
		x := min(i*cell, b.Max.X-1)
		draw.Draw(dst, image.Rect(x, 0, x+1, b.Max.Y), line, image.Point{}, draw.Over)
	}
	for i := 0; i <= h; i++ {
		y := min(i*cell, b.Max.Y-1)
		draw.Draw(dst, image.Rect(0, y, b.Max.X, y+1), line, image.Point{}, draw.Over)
	}
}

func fillCircle(dst draw.Image, cx, cy, r float64, c color.Color) {
	mask := &circle{cx: cx, cy: cy, r: r}
	mb := mask.Bounds()
	draw.DrawMask(dst, mb, image.NewUniform(c), image.Point{}, mask, mb.Min, draw.Over)
}

// circle is an alpha mask covering pixels whose centers lie inside the disc.
type circle struct {
	cx, cy, r float64
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(c.cx-c.r)), int(math.Floor(c.cy-c.r)),
		int(math.Ceil(c.cx+c.r)), int(math.Ceil(c.cy+c.r)),
	)
}

func (c *circle) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - c.cx
	dy := float64(y) + 0.5 - c.cy
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
