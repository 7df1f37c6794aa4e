package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hophop/internal/core"
)

func TestBuiltinArtParses(t *testing.T) {
	for id, rows := range art {
		if _, err := parseArt(rows, artPalette); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}
}

func TestEveryBuiltinLoads(t *testing.T) {
	lib := NewLibrary("", nil)
	for _, id := range BuiltinIDs() {
		s, err := lib.Load(id)
		if err != nil {
			t.Errorf("Load(%s): %v", id, err)
			continue
		}
		if s.W == 0 || s.H == 0 {
			t.Errorf("%s has empty size", id)
		}
	}
}

func TestSpriteAspectsMatchLayout(t *testing.T) {
	lib := NewLibrary("", nil)

	tests := []struct {
		id   string
		w, h int
	}{
		{TitleBanner, bannerW, bannerH},
		{GameOver, bannerW, bannerH},
		{ButtonStart, buttonW, buttonH},
		{Digit(7), GlyphW, GlyphH},
		{Cloud, 16, 8},
	}
	for _, tt := range tests {
		s, err := lib.Load(tt.id)
		if err != nil {
			t.Fatalf("Load(%s): %v", tt.id, err)
		}
		if s.W != tt.w || s.H != tt.h {
			t.Errorf("%s is %dx%d, expected %dx%d", tt.id, s.W, s.H, tt.w, tt.h)
		}
	}
}

func TestUnknownTexture(t *testing.T) {
	lib := NewLibrary("", nil)
	if _, err := lib.Load("nope"); err == nil {
		t.Error("Expected error for unknown texture")
	}
	if s := lib.LoadSafe("nope"); s != nil {
		t.Error("LoadSafe should return nil for unknown texture")
	}
}

func TestPNGOverride(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	f, err := os.Create(filepath.Join(dir, Cloud+".png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	// Unreadable override falls back to the built-in
	if err := os.WriteFile(filepath.Join(dir, Ground+".png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(dir, nil)

	s, err := lib.Load(Cloud)
	if err != nil {
		t.Fatalf("Load override: %v", err)
	}
	if s.W != 4 || s.H != 2 {
		t.Errorf("Override size %dx%d, expected 4x2", s.W, s.H)
	}
	if got := s.At(1, 1); got != core.RGB(10, 20, 30) {
		t.Errorf("Override pixel = %+v", got)
	}

	g, err := lib.Load(Ground)
	if err != nil || g.W != 8 {
		t.Errorf("Broken override should fall back to built-in, got %v, %v", g, err)
	}
}

func TestLargeOverrideIsScaledDown(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 600, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 600; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, Cloud+".png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, err := NewLibrary(dir, nil).Load(Cloud)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.W != MaxOverrideSize || s.H != MaxOverrideSize/2 {
		t.Errorf("Scaled size %dx%d, expected %dx%d", s.W, s.H, MaxOverrideSize, MaxOverrideSize/2)
	}
	got := s.At(10, 10)
	near := func(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }
	if !near(got.R, 200) || !near(got.G, 100) || !near(got.B, 50) || got.A != 255 {
		t.Errorf("Scaled pixel = %+v, expected about {200 100 50 255}", got)
	}
}

func TestLoadIsCached(t *testing.T) {
	lib := NewLibrary("", nil)
	a, _ := lib.Load(ActorFrame0)
	b, _ := lib.Load(ActorFrame0)
	if a != b {
		t.Error("Expected the same sprite from the cache")
	}
}

func TestSample(t *testing.T) {
	s := NewSprite(2, 2)
	s.Set(1, 0, core.ColorWhite)

	if got := s.Sample(0.75, 0.25); got != core.ColorWhite {
		t.Errorf("Sample(0.75, 0.25) = %+v, expected white", got)
	}
	if got := s.Sample(0.25, 0.75); got != core.ColorTransparent {
		t.Errorf("Sample(0.25, 0.75) = %+v, expected transparent", got)
	}
	// Edges clamp instead of escaping the sprite
	if got := s.Sample(1.0, 0); got != core.ColorWhite {
		t.Errorf("Sample(1, 0) = %+v, expected white", got)
	}
}

func TestDrawText(t *testing.T) {
	if w := TextWidth("EXIT"); w != 15 {
		t.Errorf("TextWidth(EXIT) = %d, expected 15", w)
	}
	if w := TextWidth(""); w != 0 {
		t.Errorf("TextWidth(\"\") = %d", w)
	}

	s := NewSprite(GlyphW, GlyphH)
	DrawText(s, "1", 0, 0, core.ColorWhite)
	// '1' has a lit center column
	for y := 0; y < GlyphH; y++ {
		if s.At(1, y) != core.ColorWhite {
			t.Errorf("Digit 1 missing pixel at row %d", y)
		}
	}
}
