// Package assets provides the game's textures: built-in pixel-art sprites
// with optional PNG overrides from disk.
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/vovakirdan/hophop/internal/core"
)

// Sprite is a small RGBA image addressed from the top-left corner.
type Sprite struct {
	W, H int
	Pix  []core.Color
}

// NewSprite creates a transparent sprite.
func NewSprite(w, h int) *Sprite {
	return &Sprite{W: w, H: h, Pix: make([]core.Color, w*h)}
}

// At returns the pixel at (x, y), or transparent when out of bounds.
func (s *Sprite) At(x, y int) core.Color {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return core.ColorTransparent
	}
	return s.Pix[y*s.W+x]
}

// Set writes a pixel; out-of-bounds writes are ignored.
func (s *Sprite) Set(x, y int, c core.Color) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	s.Pix[y*s.W+x] = c
}

// Sample returns the pixel under normalized coordinates u, v in [0, 1)
// using nearest-neighbor lookup.
func (s *Sprite) Sample(u, v float64) core.Color {
	x := int(u * float64(s.W))
	y := int(v * float64(s.H))
	return s.At(core.Clamp(x, 0, s.W-1), core.Clamp(y, 0, s.H-1))
}

// Image converts the sprite to an image.RGBA.
func (s *Sprite) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := s.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// FromImage converts any image to a sprite.
func FromImage(img image.Image) *Sprite {
	b := img.Bounds()
	s := NewSprite(b.Dx(), b.Dy())
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			s.Set(x, y, core.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return s
}

// parseArt builds a sprite from rows of palette characters. Every row must
// have the same width and every character must be in the palette.
func parseArt(rows []string, palette map[rune]core.Color) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("assets: empty art")
	}
	w := len(rows[0])
	s := NewSprite(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("assets: row %d has width %d, expected %d", y, len(row), w)
		}
		for x, ch := range row {
			c, ok := palette[ch]
			if !ok {
				return nil, fmt.Errorf("assets: unknown palette key %q at %d,%d", ch, x, y)
			}
			s.Set(x, y, c)
		}
	}
	return s, nil
}
