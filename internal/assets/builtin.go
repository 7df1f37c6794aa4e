package assets

import (
	"fmt"

	"github.com/vovakirdan/hophop/internal/core"
)

// Texture identifiers.
const (
	ActorFrame0 = "actor_0"
	ActorFrame1 = "actor_1"
	ActorDead   = "actor_dead"
	Cloud       = "cloud"
	Ground      = "ground"
	TitleBanner = "title"
	GameOver    = "gameover"
	ButtonStart = "btn_start"
	ButtonReset = "btn_reset"
	ButtonExit  = "btn_exit"
)

// Digit returns the texture identifier of a decimal digit.
func Digit(d int) string {
	return fmt.Sprintf("digit_%d", d)
}

// Banner and button canvas sizes; their ratios match the default layout.
const (
	bannerW = 55
	bannerH = 7
	buttonW = 26
	buttonH = 10
)

var artPalette = map[rune]core.Color{
	'.': core.ColorTransparent,
	'w': core.ColorWhite,
	'g': core.RGB(200, 200, 210),
	'p': core.RGB(255, 150, 180),
	'k': core.ColorOutline,
	'c': core.ColorCloud,
	'C': core.RGB(220, 230, 245),
	'G': core.ColorGrass,
	'h': core.RGB(70, 140, 45),
	'd': core.ColorGround,
	'D': core.RGB(190, 150, 100),
}

var art = map[string][]string{
	ActorFrame0: {
		"..kk..kk..",
		".kwpk.kwpk",
		".kwpk.kwpk",
		".kwwkkwwk.",
		"kwwwwwwwwk",
		"kwwkwwwkwk",
		"kwwwwppwwk",
		".kwwwwwwk.",
		"..kwk.kwk.",
		"...k...k..",
	},
	ActorFrame1: {
		"..........",
		"....kkkkk.",
		"..kkwwppwk",
		".kwwwwkkk.",
		"kwwwwwwwwk",
		"kwwkwwwkwk",
		"kwwwwppwwk",
		".kwwwwwwk.",
		"kwk....kwk",
		"kk......kk",
	},
	ActorDead: {
		"..kk..kk..",
		".kwpk.kwpk",
		".kwwkkwwk.",
		"kwwwwwwwwk",
		"kwkwkwkwkw",
		"kwwkwwwkwk",
		"kwkwkwkwkw",
		"kwwwwggwwk",
		".kwwwwwwk.",
		"..kkkkkk..",
	},
	Cloud: {
		"......cccc......",
		"....cccccccc....",
		"..cccccccccccc..",
		".cccccccccccccc.",
		"cccccccccccccccc",
		"CccccccccccccccC",
		".CCCCCCCCCCCCCC.",
		"................",
	},
	Ground: {
		"GGGGGGGG",
		"GhGGhGGh",
		"dddddddd",
		"ddDddddD",
		"dddddddd",
		"dDddddDd",
		"dddddddd",
		"ddddDddd",
	},
}

// builtin returns the built-in sprite for id.
func builtin(id string) (*Sprite, bool) {
	if rows, ok := art[id]; ok {
		s, err := parseArt(rows, artPalette)
		return s, err == nil
	}
	for d := 0; d <= 9; d++ {
		if id == Digit(d) {
			return digitSprite(d), true
		}
	}
	switch id {
	case TitleBanner:
		return banner("HOP HOP BUNNY", core.ColorBanner), true
	case GameOver:
		return banner("GAME OVER", core.RGB(200, 40, 40)), true
	case ButtonStart:
		return button("START"), true
	case ButtonReset:
		return button("RESET"), true
	case ButtonExit:
		return button("EXIT"), true
	}
	return nil, false
}

// BuiltinIDs lists every texture that has a built-in sprite.
func BuiltinIDs() []string {
	ids := []string{
		ActorFrame0, ActorFrame1, ActorDead, Cloud, Ground,
		TitleBanner, GameOver, ButtonStart, ButtonReset, ButtonExit,
	}
	for d := 0; d <= 9; d++ {
		ids = append(ids, Digit(d))
	}
	return ids
}

func digitSprite(d int) *Sprite {
	s := NewSprite(GlyphW, GlyphH)
	DrawText(s, fmt.Sprint(d), 0, 0, core.ColorDigit)
	return s
}

// banner draws white text with a one pixel shadow on a transparent canvas.
func banner(text string, shadow core.Color) *Sprite {
	s := NewSprite(bannerW, bannerH)
	x := (bannerW - TextWidth(text)) / 2
	DrawText(s, text, x+1, 2, shadow)
	DrawText(s, text, x, 1, core.ColorWhite)
	return s
}

// button draws centered text on a filled, outlined plate.
func button(text string) *Sprite {
	s := NewSprite(buttonW, buttonH)
	for y := 0; y < buttonH; y++ {
		for x := 0; x < buttonW; x++ {
			c := core.ColorBanner
			if x == 0 || y == 0 || x == buttonW-1 || y == buttonH-1 {
				c = core.ColorOutline
			}
			s.Set(x, y, c)
		}
	}
	DrawText(s, text, (buttonW-TextWidth(text)+1)/2, (buttonH-GlyphH)/2, core.ColorWhite)
	return s
}
