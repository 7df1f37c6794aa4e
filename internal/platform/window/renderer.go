package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/present"
)

// Renderer draws quads onto an ebiten image. It implements present.Renderer.
type Renderer struct {
	lib     *assets.Library
	images  []*ebiten.Image // Index is Handle-1
	handles map[string]present.Handle
	target  *ebiten.Image
}

// NewRenderer creates a renderer loading textures from lib.
func NewRenderer(lib *assets.Library) *Renderer {
	if lib == nil {
		lib = assets.NewLibrary("", nil)
	}
	return &Renderer{
		lib:     lib,
		handles: make(map[string]present.Handle),
	}
}

// SetTarget sets the image the next quads are drawn onto.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// LoadTexture uploads the sprite for id as an ebiten image.
func (r *Renderer) LoadTexture(id string) present.Handle {
	if h, ok := r.handles[id]; ok {
		return h
	}
	s := r.lib.LoadSafe(id)
	if s == nil || s.W == 0 || s.H == 0 {
		return present.NoTexture
	}
	r.images = append(r.images, ebiten.NewImageFromImage(s.Image()))
	h := present.Handle(len(r.images))
	r.handles[id] = h
	return h
}

// DrawQuad draws a colored rectangle, or a texture stretched over the quad
// with nearest filtering.
func (r *Renderer) DrawQuad(tex present.Handle, c core.Color, center, size, viewport core.Vec2, alpha float64) {
	if r.target == nil || viewport.X <= 0 || viewport.Y <= 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	b := r.target.Bounds()
	sx := float64(b.Dx()) / viewport.X
	sy := float64(b.Dy()) / viewport.Y

	x := (center.X - size.X/2) * sx
	y := (center.Y - size.Y/2) * sy
	w, h := size.X*sx, size.Y*sy

	if tex == present.NoTexture || int(tex) > len(r.images) {
		a := float64(c.A) * core.ClampF(alpha, 0, 1)
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a + 0.5)}
		vector.DrawFilledRect(r.target, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}

	img := r.images[tex-1]
	ib := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(ib.Dx()), h/float64(ib.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(core.ClampF(alpha, 0, 1)))
	op.Filter = ebiten.FilterNearest
	r.target.DrawImage(img, op)
}
