package beadgrid

import (
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultAlphaThreshold is the lowest alpha that still becomes a bead.
// Pixels more than half transparent import as Empty.
const DefaultAlphaThreshold = 128

// Importer approximates a bitmap onto a grid using a fixed palette.
type Importer struct {
	Palette Palette
	// Sampler resamples the source to one sample per cell.
	// The image is stretched to fill the grid; aspect ratio is not kept.
	// nil means draw.NearestNeighbor.
	Sampler draw.Interpolator
	// Samples with alpha below AlphaThreshold become Empty.
	// Zero means DefaultAlphaThreshold, so the lowest usable cut-off is 1:
	// every sample that is not fully transparent becomes a bead. A fully
	// transparent sample is always Empty.
	AlphaThreshold uint8
}

func NewImporter(palette Palette) *Importer {
	return &Importer{
		Palette:        palette,
		Sampler:        draw.NearestNeighbor,
		AlphaThreshold: DefaultAlphaThreshold,
	}
}

// Import builds a width x height grid from src. Each cell is the palette
// entry nearest to its resampled pixel, or Empty when that pixel is mostly
// transparent. A fully transparent source gives an all-Empty grid.
func (im *Importer) Import(src image.Image, width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, width, height)
	}
	m, err := newMatcher(im.Palette)
	if err != nil {
		return Grid{}, err
	}
	if src == nil || src.Bounds().Empty() {
		return Grid{}, fmt.Errorf("%w: empty source image", ErrDecode)
	}

	sampler := im.Sampler
	if sampler == nil {
		sampler = draw.NearestNeighbor
	}
	threshold := im.AlphaThreshold
	if threshold == 0 {
		threshold = DefaultAlphaThreshold
	}

	samples := image.NewNRGBA(image.Rect(0, 0, width, height))
	sampler.Scale(samples, samples.Bounds(), src, src.Bounds(), draw.Src, nil)

	g := newGrid(width, height)
	for y := range height {
		for x := range width {
			px := samples.NRGBAAt(x, y)
			if px.A < threshold {
				continue
			}
			g.cells[g.offset(x, y)] = m.nearest(RGB(px.R, px.G, px.B))
		}
	}
	return g, nil
}

// Decode reads an image in any registered format (png, jpeg, gif, bmp,
// tiff, webp).
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}

// SamplerByName maps a sampler name to its interpolator.
// Accepted names: nearest, approxbilinear, bilinear, catmullrom.
func SamplerByName(name string) (draw.Interpolator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nearest":
		return draw.NearestNeighbor, nil
	case "approxbilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("unknown sampler %q", name)
}
