package tui

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/present"
)

// halfBlock draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = "▀"

// ScreenRenderer rasterizes quads into a Screen with two pixels per
// terminal cell. It implements present.Renderer.
type ScreenRenderer struct {
	screen   *core.Screen
	lib      *assets.Library
	textures []*assets.Sprite // Index is Handle-1
	handles  map[string]present.Handle
	styles   *lipgloss.Renderer
	cache    map[[2]core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer for a terminal of cols x rows cells.
// styles may be nil to use the default lipgloss renderer.
func NewScreenRenderer(lib *assets.Library, styles *lipgloss.Renderer, cols, rows int) *ScreenRenderer {
	if lib == nil {
		lib = assets.NewLibrary("", nil)
	}
	if styles == nil {
		styles = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		screen:  core.NewScreen(cols, rows*2),
		lib:     lib,
		handles: make(map[string]present.Handle),
		styles:  styles,
		cache:   make(map[[2]core.Color]lipgloss.Style),
	}
}

// Screen returns the pixel buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize sets the terminal size in cells.
func (r *ScreenRenderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows*2)
}

// Viewport returns the pixel size quads are laid out in.
func (r *ScreenRenderer) Viewport() core.Vec2 {
	return core.V(float64(r.screen.Width()), float64(r.screen.Height()))
}

// LoadTexture resolves id through the asset library.
func (r *ScreenRenderer) LoadTexture(id string) present.Handle {
	if h, ok := r.handles[id]; ok {
		return h
	}
	s := r.lib.LoadSafe(id)
	if s == nil {
		return present.NoTexture
	}
	r.textures = append(r.textures, s)
	h := present.Handle(len(r.textures))
	r.handles[id] = h
	return h
}

// DrawQuad fills the pixels whose centers fall inside the quad. Textured
// quads sample the sprite with nearest-neighbor filtering.
func (r *ScreenRenderer) DrawQuad(tex present.Handle, color core.Color, center, size, viewport core.Vec2, alpha float64) {
	if viewport.X <= 0 || viewport.Y <= 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	sx := float64(r.screen.Width()) / viewport.X
	sy := float64(r.screen.Height()) / viewport.Y

	left := (center.X - size.X/2) * sx
	top := (center.Y - size.Y/2) * sy
	w, h := size.X*sx, size.Y*sy

	x0, x1 := pixelSpan(left, w)
	y0, y1 := pixelSpan(top, h)

	var sprite *assets.Sprite
	if tex != present.NoTexture && int(tex) <= len(r.textures) {
		sprite = r.textures[tex-1]
	}
	if sprite == nil {
		r.screen.FillRect(x0, y0, x1, y1, color, alpha)
		return
	}

	x0, x1 = core.Clamp(x0, 0, r.screen.Width()), core.Clamp(x1, 0, r.screen.Width())
	y0, y1 = core.Clamp(y0, 0, r.screen.Height()), core.Clamp(y1, 0, r.screen.Height())
	for y := y0; y < y1; y++ {
		v := (float64(y) + 0.5 - top) / h
		for x := x0; x < x1; x++ {
			u := (float64(x) + 0.5 - left) / w
			r.screen.Blend(x, y, sprite.Sample(u, v), alpha)
		}
	}
}

// pixelSpan returns the half-open range of pixels whose centers lie in
// [start, start+length).
func pixelSpan(start, length float64) (int, int) {
	return int(math.Ceil(start - 0.5)), int(math.Ceil(start + length - 0.5))
}

// Begin clears the buffer for a new frame.
func (r *ScreenRenderer) Begin() {
	r.screen.Clear()
}

// String renders the buffer as half-block cells.
func (r *ScreenRenderer) String() string {
	return renderHalfBlocks(r.screen, r.style)
}

func (r *ScreenRenderer) style(top, bottom core.Color) lipgloss.Style {
	k := [2]core.Color{top, bottom}
	if s, ok := r.cache[k]; ok {
		return s
	}
	s := r.styles.NewStyle().
		Foreground(lipgloss.Color(top.Hex())).
		Background(lipgloss.Color(bottom.Hex()))
	r.cache[k] = s
	return s
}

// renderHalfBlocks converts a Screen buffer to a styled string, two pixel
// rows per line. Adjacent cells with the same color pair are grouped to
// minimize ANSI escape sequences.
func renderHalfBlocks(s *core.Screen, style func(top, bottom core.Color) lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}
		top, bottom := s.Row(y), s.Row(y+1)

		x := 0
		for x < s.Width() {
			start := x
			for x < s.Width() && top[x] == top[start] && bottom[x] == bottom[start] {
				x++
			}
			run := strings.Repeat(halfBlock, x-start)
			sb.WriteString(style(top[start], bottom[start]).Render(run))
		}
	}
	return sb.String()
}

// ScreenImage copies the buffer into an image, one image pixel per
// buffer pixel.
func ScreenImage(s *core.Screen) *image.RGBA {
	sprite := assets.NewSprite(s.Width(), s.Height())
	for y := 0; y < s.Height(); y++ {
		for x, c := range s.Row(y) {
			sprite.Set(x, y, c)
		}
	}
	return sprite.Image()
}
