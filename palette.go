package beadgrid

import (
	"fmt"
	"slices"
)

// Palette is an ordered list of distinct candidate colors.
// Order matters: Nearest breaks ties by first occurrence.
type Palette []Color

var defaultPaletteHex = []string{
	"#000000", "#ffffff", "#808080", "#c0c0c0",
	"#ff0000", "#b22222", "#ff7f00", "#ffd700",
	"#ffff00", "#9acd32", "#00a651", "#006400",
	"#00ffff", "#40e0d0", "#1e90ff", "#0000ff",
	"#000080", "#8a2be2", "#ff00ff", "#ff69b4",
	"#ffc0cb", "#8b4513", "#d2b48c", "#f5deb3",
}

// DefaultPalette returns a fresh copy of the built-in bead colors.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultPaletteHex))
	for i, h := range defaultPaletteHex {
		p[i] = MustParseHex(h)
	}
	return p
}

// ParsePalette parses hex strings in order and validates the result.
func ParsePalette(hexes ...string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports whether p is usable as a candidate list:
// non-empty, no Empty entries, no duplicates.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[Color]int, len(p))
	for i, c := range p {
		if c.IsEmpty() {
			return fmt.Errorf("palette entry %d: %w: transparent is not a bead color", i, ErrInvalidColor)
		}
		if j, ok := seen[c]; ok {
			return fmt.Errorf("%w: %s at %d and %d", ErrDuplicateColor, c.Hex(), j, i)
		}
		seen[c] = i
	}
	return nil
}

func (p Palette) Index(c Color) int {
	return slices.Index(p, c)
}

func (p Palette) Contains(c Color) bool {
	return p.Index(c) >= 0
}

// WithCustom returns a copy of p with c appended, unless c is Empty or
// already present. The receiver is never modified.
func (p Palette) WithCustom(c Color) Palette {
	out := slices.Clone(p)
	if c.IsEmpty() || p.Contains(c) {
		return out
	}
	return append(out, c)
}

func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
