package core

import "fmt"

// Color is a straight-alpha RGBA color used for colored quads and for
// the pixels of the terminal screen buffer.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Palette used by the game's colored quads.
var (
	ColorTransparent = Color{}
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(255, 255, 255)
	ColorSky         = RGB(135, 206, 235) // 0.53, 0.81, 0.92
	ColorPipe        = RGB(46, 204, 43)   // 0.18, 0.80, 0.17
	ColorPipeShade   = RGB(30, 140, 30)
	ColorActor       = RGB(255, 230, 51) // 1.0, 0.9, 0.2
	ColorGround      = RGB(222, 184, 135)
	ColorGrass       = RGB(94, 176, 60)
	ColorCloud       = RGB(250, 250, 255)
	ColorBanner      = RGB(255, 140, 0)
	ColorDigit       = RGB(255, 255, 255)
	ColorOutline     = RGB(40, 40, 40)
)

// Hex returns the color as a "#rrggbb" string (alpha is ignored).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Over composites c on top of dst with an extra opacity multiplier.
// The result is always opaque when dst is opaque.
func (c Color) Over(dst Color, alpha float64) Color {
	a := float64(c.A) / 255 * ClampF(alpha, 0, 1)
	if a <= 0 {
		return dst
	}
	if a >= 1 {
		return Color{R: c.R, G: c.G, B: c.B, A: 255}
	}
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	outA := a + float64(dst.A)/255*(1-a)
	return Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(outA*255 + 0.5),
	}
}
