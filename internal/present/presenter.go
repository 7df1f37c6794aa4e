package present

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/game"
)

// Vertical anchors as fractions of viewport height.
const (
	scoreY  = 0.12
	bannerY = 0.3
)

// cloudAspect is the width/height ratio of the cloud sprite.
const cloudAspect = 2.0

// Longest dt the decoration timers accept, in seconds.
const maxDecorationDelta = 0.25

// cloud positions are fractions of the viewport so they survive resizes.
type cloud struct {
	x, y  float64
	scale float64
}

// Presenter builds the draw list for each frame.
type Presenter struct {
	cfg      config.Config
	textures map[string]Handle

	clock      float64 // Drives the title animation
	animClock  float64 // Drives actor frames, stops on death
	groundDist float64 // Ground scroll in viewport widths
	clouds     []cloud
}

// New creates a presenter and resolves every texture once.
func New(r Renderer, cfg config.Config, seed int64) *Presenter {
	p := &Presenter{
		cfg:      cfg,
		textures: make(map[string]Handle),
	}
	for _, id := range assets.BuiltinIDs() {
		p.textures[id] = r.LoadTexture(id)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < cfg.Layout.CloudCount; i++ {
		p.clouds = append(p.clouds, cloud{
			x:     (float64(i) + rng.Float64()*0.5) / float64(cfg.Layout.CloudCount),
			y:     0.08 + rng.Float64()*0.3,
			scale: 0.7 + rng.Float64()*0.6,
		})
	}
	return p
}

// Update advances decoration timers. The world freezes on GameOver, so do
// the actor animation, clouds and ground.
func (p *Presenter) Update(dt float64, view game.View, viewport core.Vec2) {
	dt = core.ClampF(dt, 0, maxDecorationDelta)
	p.clock += dt
	if view.State == game.StateGameOver {
		return
	}
	p.animClock += dt

	if view.State == game.StateRunning {
		// Ground moves with the obstacles: world x spans two units
		p.groundDist += view.Speed * dt / 2
	}

	if viewport.X <= 0 || viewport.Y <= 0 {
		return
	}
	layout := p.cfg.Layout
	for i := range p.clouds {
		c := &p.clouds[i]
		c.x -= layout.CloudSpeed * c.scale * dt
		halfW := layout.CloudHeight * c.scale * cloudAspect * viewport.Y / viewport.X / 2
		if c.x+halfW < 0 {
			c.x = 1 + halfW
		}
	}
}

// Frame returns the draw commands for the view, back to front. Everything is
// laid out from the viewport size passed in.
func (p *Presenter) Frame(view game.View, viewport core.Vec2) []DrawCommand {
	vw, vh := viewport.X, viewport.Y
	if vw <= 0 || vh <= 0 {
		return nil
	}
	f := frameBuilder{p: p, vw: vw, vh: vh}

	f.color("background", core.ColorSky, core.V(vw/2, vh/2), viewport)
	f.clouds()
	f.obstacles(view)
	f.ground(view)
	f.actor(view)

	switch view.State {
	case game.StateIdle:
		f.title()
	case game.StateRunning:
		h := p.cfg.Layout.ScoreDigitHeight * vh
		f.number(view.Score.Current, core.V(vw/2, scoreY*vh), h)
	case game.StateGameOver:
		f.gameOver(view)
	}

	f.buttons(view.State)
	return f.cmds
}

type frameBuilder struct {
	p      *Presenter
	vw, vh float64
	cmds   []DrawCommand
}

// toPixel maps world coordinates to viewport pixels.
func (f *frameBuilder) toPixel(x, y float64) core.Vec2 {
	return core.V((x+1)/2*f.vw, (1-y)/2*f.vh)
}

func (f *frameBuilder) color(id string, c core.Color, center, size core.Vec2) {
	f.cmds = append(f.cmds, DrawCommand{ID: id, Texture: NoTexture, Color: c, Center: center, Size: size, Alpha: 1})
}

// sprite appends a textured quad, or nothing when the texture is missing.
func (f *frameBuilder) sprite(id string, center, size core.Vec2, alpha float64) {
	h := f.p.textures[id]
	if h == NoTexture || size.X <= 0 || size.Y <= 0 {
		return
	}
	f.cmds = append(f.cmds, DrawCommand{ID: id, Texture: h, Color: core.ColorWhite, Center: center, Size: size, Alpha: alpha})
}

// span appends a colored quad between two pixel rows.
func (f *frameBuilder) span(id string, c core.Color, cx, w, top, bottom float64) {
	if bottom <= top {
		return
	}
	f.color(id, c, core.V(cx, (top+bottom)/2), core.V(w, bottom-top))
}

func (f *frameBuilder) clouds() {
	layout := f.p.cfg.Layout
	for _, c := range f.p.clouds {
		h := layout.CloudHeight * c.scale * f.vh
		f.sprite(assets.Cloud, core.V(c.x*f.vw, c.y*f.vh), core.V(h*cloudAspect, h), 0.9)
	}
}

// obstacles draws the span above each gap (to the world top) and the span
// below it (to the world bottom).
func (f *frameBuilder) obstacles(view game.View) {
	top := f.toPixel(0, view.World.Top).Y
	bottom := f.toPixel(0, view.World.Bottom).Y
	for _, o := range view.Obstacles {
		cx := f.toPixel(o.X, 0).X
		w := o.Width / 2 * f.vw
		f.span("obstacle_top", core.ColorPipe, cx, w, top, f.toPixel(0, o.GapTop()).Y)
		f.span("obstacle_bottom", core.ColorPipe, cx, w, f.toPixel(0, o.GapBottom()).Y, bottom)
	}
}

// GroundTiles returns how many ground tiles cover a viewport width.
func GroundTiles(viewportW, tileW float64) int {
	if tileW <= 0 {
		return 0
	}
	return int(math.Ceil(viewportW/tileW)) + 1
}

func (f *frameBuilder) ground(view game.View) {
	top := f.toPixel(0, view.World.Bottom).Y
	h := f.vh - top
	if h <= 0 {
		return
	}
	f.span("soil", core.ColorGround, f.vw/2, f.vw, top, f.vh)

	tileW := f.p.cfg.Layout.GroundTileWidth * f.vh
	n := GroundTiles(f.vw, tileW)
	offset := math.Mod(f.p.groundDist*f.vw, tileW)
	for i := 0; i < n; i++ {
		x := float64(i)*tileW + tileW/2 - offset
		f.sprite(assets.Ground, core.V(x, top+h/2), core.V(tileW, h), 1)
	}
}

// actorSprite picks the animation frame: two frames alternate on a timer
// while alive, a fixed frame once dead.
func (p *Presenter) actorSprite(state game.State) string {
	if state == game.StateGameOver {
		return assets.ActorDead
	}
	frames := []string{assets.ActorFrame0, assets.ActorFrame1}
	d := p.cfg.Layout.ActorFrameSeconds
	if d <= 0 {
		return frames[0]
	}
	return frames[int(p.animClock/d)%len(frames)]
}

func (f *frameBuilder) actor(view game.View) {
	a := f.p.cfg.Actor
	h := view.Actor.Radius * a.SpriteScale * f.vh
	w := h
	if !a.AspectCorrect {
		w = view.Actor.Radius * a.SpriteScale * f.vw
	}
	f.sprite(f.p.actorSprite(view.State), f.toPixel(view.ActorX, view.Actor.Y), core.V(w, h), 1)
}

// number composes n from digit sprites centered on center.
func (f *frameBuilder) number(n int, center core.Vec2, h float64) {
	layout := f.p.cfg.Layout
	digits := strconv.Itoa(core.Max(n, 0))
	w := h * layout.DigitAspect
	step := w * (1 + layout.DigitSpacing)
	total := step*float64(len(digits)) - w*layout.DigitSpacing

	x := center.X - total/2 + w/2
	for _, ch := range digits {
		f.sprite(assets.Digit(int(ch-'0')), core.V(x, center.Y), core.V(w, h), 1)
		x += step
	}
}

// bannerSize keeps the banner aspect while fitting 90% of the viewport width.
func (f *frameBuilder) bannerSize() core.Vec2 {
	layout := f.p.cfg.Layout
	h := layout.BannerHeight * f.vh
	w := h * layout.BannerAspect
	if maxW := 0.9 * f.vw; w > maxW {
		w = maxW
		h = w / layout.BannerAspect
	}
	return core.V(w, h)
}

// title bobs up and down and breathes in size.
func (f *frameBuilder) title() {
	layout := f.p.cfg.Layout
	phase := 2 * math.Pi * layout.TitleBobHz * f.p.clock
	y := bannerY*f.vh + math.Sin(phase)*layout.TitleBobAmplitude*f.vh
	size := f.bannerSize().Scale(1 + layout.TitleBreathe*math.Cos(phase))
	f.sprite(assets.TitleBanner, core.V(f.vw/2, y), size, 1)
}

func (f *frameBuilder) gameOver(view game.View) {
	layout := f.p.cfg.Layout
	size := f.bannerSize()
	f.sprite(assets.GameOver, core.V(f.vw/2, bannerY*f.vh), size, 1)

	h := layout.ScoreDigitHeight * layout.BestDigitScale * f.vh
	y := bannerY*f.vh + size.Y/2 + h*0.9
	f.number(view.Score.Best, core.V(f.vw/2, y), h)
}

var buttonTextures = map[game.ButtonKind]string{
	game.ButtonStart: assets.ButtonStart,
	game.ButtonReset: assets.ButtonReset,
	game.ButtonExit:  assets.ButtonExit,
}

func (f *frameBuilder) buttons(state game.State) {
	for _, b := range game.Buttons(state, core.V(f.vw, f.vh), f.p.cfg.Layout) {
		if b.Visible {
			f.sprite(buttonTextures[b.Kind], b.Box.Center, b.Box.Size, 1)
		}
	}
}
