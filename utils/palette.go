package utils

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/beadgrid"
	"github.com/setanarut/beadgrid/internal/logging"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod accepts "dominantcolor" (or "dominant") and "kmeans".
func ParsePaletteMethod(s string) (PaletteMethod, bool) {
	switch s {
	case "dominantcolor", "dominant", "":
		return PaletteMethodDominantColor, true
	case "kmeans":
		return PaletteMethodKMeans, true
	}
	return PaletteMethodDominantColor, false
}

// WeightedColor is a palette candidate with its share of the image.
type WeightedColor struct {
	Col    colorful.Color
	Weight float64
}

// SortPaletteByBrightness orders colors from darkest to brightest by
// relative luminance. Equal luminance keeps the original order.
func SortPaletteByBrightness(palette beadgrid.Palette) {
	slices.SortStableFunc(palette, func(a, b beadgrid.Color) int {
		ya, yb := luminance(a), luminance(b)
		if ya < yb {
			return -1
		}
		if ya > yb {
			return 1
		}
		return 0
	})
}

func luminance(c beadgrid.Color) float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ExtractDominantPalette derives up to k bead colors from img.
func ExtractDominantPalette(img image.Image, k int) beadgrid.Palette {
	if k <= 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Never hand back an empty palette; the importer cannot match against it.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]WeightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, WeightedColor{Col: col.Clamped(), Weight: c.Weight})
	}
	return SelectDiverseWeightedColors(weighted, k)
}

// SelectDiverseWeightedColors greedily picks up to k candidates that are far
// apart in Lab space, favoring heavier ones. Candidates that round to the
// same 8-bit color are merged, so the result is always a valid palette.
func SelectDiverseWeightedColors(cands []WeightedColor, k int) beadgrid.Palette {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	pool, heaviest := mergeCandidates(cands)

	// gap[i] is the Lab distance from pool[i] to the closest pick so far,
	// or -1 once pool[i] itself is picked.
	gap := make([]float64, len(pool))
	for i := range gap {
		gap[i] = math.Inf(1)
	}

	out := make(beadgrid.Palette, 0, min(k, len(pool)))
	pick := heaviestSwatch(pool)
	for pick >= 0 && len(out) < k {
		chosen := pool[pick]
		out = append(out, chosen.col)
		gap[pick] = -1

		pick = -1
		best := -1.0
		for i, s := range pool {
			if gap[i] < 0 {
				continue
			}
			gap[i] = min(gap[i], s.ref.DistanceLab(chosen.ref))
			if score := gap[i] * s.prominence(heaviest); score > best {
				best, pick = score, i
			}
		}
	}
	return out
}

// swatch is a candidate after rounding to a bead color.
type swatch struct {
	col    beadgrid.Color
	ref    colorful.Color
	weight float64
}

// prominence scales distance so that a heavy swatch beats an equally
// distant light one, without letting weight dominate.
func (s swatch) prominence(heaviest float64) float64 {
	return 0.55 + 0.45*math.Sqrt(s.weight/heaviest)
}

// mergeCandidates rounds cands to 8-bit colors, summing the weights of
// duplicates, and returns them in first-seen order with the largest weight.
func mergeCandidates(cands []WeightedColor) ([]swatch, float64) {
	pool := make([]swatch, 0, len(cands))
	seen := make(map[beadgrid.Color]int, len(cands))
	heaviest := 0.0
	for _, c := range cands {
		r, g, b := c.Col.Clamped().RGB255()
		col := beadgrid.RGB(r, g, b)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		i, ok := seen[col]
		if !ok {
			i = len(pool)
			seen[col] = i
			pool = append(pool, swatch{col: col, ref: col.Colorful()})
		}
		pool[i].weight += w
		heaviest = max(heaviest, pool[i].weight)
	}
	return pool, heaviest
}

// heaviestSwatch returns the index of the heaviest swatch, the first one on
// ties, or -1 for an empty pool.
func heaviestSwatch(pool []swatch) int {
	best := -1
	for i, s := range pool {
		if best < 0 || s.weight > pool[best].weight {
			best = i
		}
	}
	return best
}

// ExtractKMeansPalette clusters the opaque pixels of img and returns up to k
// bead colors. It returns nil when clustering fails.
func ExtractKMeansPalette(img image.Image, k int) beadgrid.Palette {
	if k <= 0 {
		return nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample large images.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 < beadgrid.DefaultAlphaThreshold<<8 {
				continue
			}
			c := beadgrid.FromColor(color.RGBA64{R: uint16(r16), G: uint16(g16), B: uint16(b16), A: uint16(a16)})
			dataset = append(dataset, clusters.Coordinates{
				float64(c.R) / 255.0,
				float64(c.G) / 255.0,
				float64(c.B) / 255.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Most populated clusters first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	weighted := make([]WeightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		if math.IsNaN(c.Center[0]) || math.IsNaN(c.Center[1]) || math.IsNaN(c.Center[2]) {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, WeightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return SelectDiverseWeightedColors(weighted, k)
}

// ExtractPalette runs the chosen method, falling back to dominant colors
// when k-means yields nothing. The fallback is logged as a warning on
// logger; nil discards it.
func ExtractPalette(img image.Image, k int, method PaletteMethod, logger *slog.Logger) beadgrid.Palette {
	if logger == nil {
		logger = logging.NewNop()
	}
	switch method {
	case PaletteMethodKMeans:
		p := ExtractKMeansPalette(img, k)
		if len(p) != 0 {
			return p
		}
		logger.Warn("kmeans returned empty palette, falling back to dominantcolor", "k", k)
		return ExtractDominantPalette(img, k)
	default:
		return ExtractDominantPalette(img, k)
	}
}
