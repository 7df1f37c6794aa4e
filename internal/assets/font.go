package assets

import (
	"strings"

	"github.com/vovakirdan/hophop/internal/core"
)

// Glyph dimensions of the built-in font.
const (
	GlyphW = 3
	GlyphH = 5
)

// glyphs is a 3x5 bitmap font covering digits and the letters used by the
// game's banners and buttons.
var glyphs = map[rune][GlyphH]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "##.", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'G': {"###", "#..", "#.#", "#.#", "###"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'P': {"###", "#.#", "###", "#..", "#.."},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {"###", "#..", "###", "..#", "###"},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", ".#.", ".#.", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

// TextWidth returns the pixel width of s in the built-in font with
// one pixel between glyphs.
func TextWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*(GlyphW+1) - 1
}

// DrawText writes s onto the sprite with its top-left corner at (x, y).
// Unknown characters are skipped but still take up space.
func DrawText(dst *Sprite, s string, x, y int, c core.Color) {
	for _, ch := range strings.ToUpper(s) {
		if g, ok := glyphs[ch]; ok {
			for gy, row := range g {
				for gx, px := range row {
					if px == '#' {
						dst.Set(x+gx, y+gy, c)
					}
				}
			}
		}
		x += GlyphW + 1
	}
}
