package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/setanarut/beadgrid"
)

// ReadImage opens and decodes an image file in any format beadgrid.Decode knows.
func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := beadgrid.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePattern renders g and writes it as a PNG file.
func SavePattern(g beadgrid.Grid, opts beadgrid.RenderOptions, filename string) error {
	img, err := beadgrid.Render(g, opts)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}

// PaletteSwatch draws the palette as a row of square tiles.
func PaletteSwatch(palette beadgrid.Palette, tileSize int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, beadgrid.ErrEmptyPalette
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(palette)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, c := range palette {
		rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := range h {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, rgba)
			}
		}
	}
	return img, nil
}

func SavePalette(palette beadgrid.Palette, tileSize int, filename string) error {
	img, err := PaletteSwatch(palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
