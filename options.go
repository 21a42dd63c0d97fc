package beadgrid

import (
	"log/slog"

	"golang.org/x/image/draw"
)

// Editor grid size bounds. The Grid type itself accepts any positive size;
// the editor clamps user input into this range.
const (
	MinSize = 5
	MaxSize = 50
)

const DefaultBeadSize = 20

type Options struct {
	// Initial grid size, clamped to [MinSize, MaxSize].
	Width, Height int
	// Candidate colors for drawing and import. Must be valid; see Palette.Validate.
	Palette Palette
	// Import resampler. nil means draw.NearestNeighbor.
	Sampler draw.Interpolator
	// Import transparency cut-off. Zero means DefaultAlphaThreshold; use 1 to
	// keep every pixel that is not fully transparent.
	AlphaThreshold uint8
	// On-screen pixels per cell, used by CellAt to map pointer positions.
	BeadSize int
	// nil discards logs.
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:          20,
		Height:         20,
		Palette:        DefaultPalette(),
		Sampler:        draw.NearestNeighbor,
		AlphaThreshold: DefaultAlphaThreshold,
		BeadSize:       DefaultBeadSize,
	}
}

// ClampSize forces a requested grid dimension into [MinSize, MaxSize].
func ClampSize(n int) int {
	return max(MinSize, min(MaxSize, n))
}
