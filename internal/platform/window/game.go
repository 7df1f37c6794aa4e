// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/game"
	"github.com/vovakirdan/hophop/internal/present"
	"github.com/vovakirdan/hophop/internal/storage"
)

// Options configures the desktop frontend. Every pointer may be nil.
type Options struct {
	Runtime core.RuntimeConfig // Window size, tick rate, seed, player
	Store   *storage.Store
	Assets  *assets.Library
	Audio   game.Audio
	Logger  *log.Logger
}

// bindings maps each action to the keys that hold it down.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionFlap:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionStart: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionReset: {ebiten.KeyR},
	core.ActionExit:  {ebiten.KeyEscape},
	core.ActionMenu:  {ebiten.KeyM},
}

// titler mirrors the game title onto the window.
type titler struct{}

func (titler) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Game implements ebiten.Game.
type Game struct {
	machine   *game.Machine
	presenter *present.Presenter
	renderer  *Renderer
	store     *storage.Store
	logger    *log.Logger
	runtime   core.RuntimeConfig

	viewport core.Vec2
	last     time.Time
}

// NewGame creates the desktop game.
func NewGame(cfg config.Config, opts Options) *Game {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	r := NewRenderer(opts.Assets)
	return &Game{
		machine:   game.NewMachine(cfg, rt.Seed, game.WithAudio(opts.Audio), game.WithTitler(titler{})),
		presenter: present.New(r, cfg, rt.Seed),
		renderer:  r,
		store:     opts.Store,
		logger:    opts.Logger,
		runtime:   rt,
		viewport:  rt.Viewport(),
	}
}

// sampleKeys reads the current key levels.
func sampleKeys() core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range bindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// postClicks forwards this frame's mouse and touch presses to the mailbox.
func (g *Game) postClicks() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.machine.Clicks().Post(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.machine.Clicks().Post(float64(x), float64(y))
	}
}

// Update runs one frame of the simulation.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.postClicks()
	res := g.machine.Step(sampleKeys(), dt, g.viewport)
	if res.Quit {
		return ebiten.Termination
	}

	view := g.machine.Snapshot()
	if res.Events.Has(game.EventDied) {
		g.saveRun(view)
	}
	g.presenter.Update(dt, view, g.viewport)
	return nil
}

// saveRun records the run that just ended.
func (g *Game) saveRun(view game.View) {
	if g.store == nil {
		return
	}
	run := storage.Run{
		Player:   g.runtime.Player,
		Frontend: g.runtime.Frontend,
		Score:    view.Score.Current,
		Best:     view.Score.Best,
		Seed:     g.runtime.Seed,
		Duration: time.Duration(view.RunTime * float64(time.Second)),
	}
	id, err := g.store.SaveRun(run)
	if g.logger == nil {
		return
	}
	if err != nil {
		g.logger.Error("could not save run", "error", err)
		return
	}
	g.logger.Info("run saved", "id", id, "score", run.Score, "duration", run.Duration)
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	present.Draw(g.renderer, g.presenter.Frame(g.machine.Snapshot(), g.viewport), g.viewport)
}

// Layout uses the window size as the viewport, so layout is recomputed on
// every resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = core.V(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the game exits.
func Run(cfg config.Config, opts Options) error {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = 480, 640
	}
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}
	opts.Runtime = rt

	ebiten.SetWindowSize(rt.ScreenW, rt.ScreenH)
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(cfg, opts))
}
