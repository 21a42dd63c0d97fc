package beadgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteIsValid(t *testing.T) {
	p := DefaultPalette()
	require.NoError(t, p.Validate())
	assert.Len(t, p, len(defaultPaletteHex))

	p[0] = RGB(1, 2, 3)
	assert.NotEqual(t, p[0], DefaultPalette()[0], "DefaultPalette must return a copy")
}

func TestPaletteValidate(t *testing.T) {
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)
	tests := []struct {
		name    string
		p       Palette
		wantErr error
	}{
		{name: "ok", p: Palette{red, blue}},
		{name: "nil", p: nil, wantErr: ErrEmptyPalette},
		{name: "empty", p: Palette{}, wantErr: ErrEmptyPalette},
		{name: "duplicate", p: Palette{red, blue, red}, wantErr: ErrDuplicateColor},
		{name: "transparent entry", p: Palette{red, Empty}, wantErr: ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("#ff0000", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, Palette{RGB(255, 0, 0), RGB(0, 0, 255)}, p)
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, p.Hex())

	_, err = ParsePalette("#ff0000", "nope")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = ParsePalette("#ff0000", "#FF0000")
	assert.ErrorIs(t, err, ErrDuplicateColor)

	_, err = ParsePalette()
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestPaletteWithCustom(t *testing.T) {
	red, blue, green := RGB(255, 0, 0), RGB(0, 0, 255), RGB(0, 255, 0)
	p := Palette{red, blue}

	withGreen := p.WithCustom(green)
	assert.Equal(t, Palette{red, blue, green}, withGreen)
	assert.Equal(t, Palette{red, blue}, p, "receiver must not change")

	assert.Equal(t, p, p.WithCustom(blue))
	assert.Equal(t, p, p.WithCustom(Empty))
	assert.Equal(t, 1, p.Index(blue))
	assert.False(t, p.Contains(green))
}
