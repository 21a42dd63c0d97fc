package beadgrid

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a bead color: either Empty (no bead) or an opaque sRGB triple.
// Colors are plain values and compare with ==.
type Color struct {
	R, G, B uint8
	set     bool
}

// Empty is the "no bead" cell value. Painting with Empty erases.
var Empty = Color{}

// emptyName is the external spelling of Empty.
const emptyName = "transparent"

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// ParseHex parses "#rrggbb" or "#rgb" (leading '#' optional).
// "transparent" and "" parse to Empty.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, emptyName) {
		return Empty, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any color.Color. Fully transparent input maps to Empty;
// any other alpha is dropped after un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return Empty
	}
	return RGB(n.R, n.G, n.B)
}

func (c Color) IsEmpty() bool {
	return !c.set
}

// canonical maps every unset value, such as the literal Color{R: 255},
// to Empty so that cells stay comparable with ==.
func (c Color) canonical() Color {
	if !c.set {
		return Empty
	}
	return c
}

// Hex returns "#rrggbb", or "transparent" for Empty.
func (c Color) Hex() string {
	if !c.set {
		return emptyName
	}
	return c.Colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// Colorful returns c as a go-colorful color with channels in [0,1].
// Empty maps to black.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RGBA implements color.Color. Empty is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.set {
		return 0, 0, 0, 0
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

var _ color.Color = Color{}
