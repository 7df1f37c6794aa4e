package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hophop/internal/assets"
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
	"github.com/vovakirdan/hophop/internal/game"
	"github.com/vovakirdan/hophop/internal/present"
	"github.com/vovakirdan/hophop/internal/storage"
)

// Services are the collaborators a Model talks to. Every field may be nil.
type Services struct {
	Store  *storage.Store
	Assets *assets.Library
	Audio  game.Audio
	Logger *log.Logger
	Styles *lipgloss.Renderer // Per-session renderer for SSH clients

	// Best is the best score of earlier games in this process or session.
	Best int

	// Embedded models end with Done instead of quitting the program, so a
	// session can show its menu again.
	Embedded bool
}

// titleQueue collects window titles set during a Step so the model can
// turn them into tea commands.
type titleQueue struct {
	pending string
	dirty   bool
}

func (q *titleQueue) SetTitle(title string) {
	q.pending = title
	q.dirty = true
}

func (q *titleQueue) take() (string, bool) {
	if !q.dirty {
		return "", false
	}
	q.dirty = false
	return q.pending, true
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	machine   *game.Machine
	presenter *present.Presenter
	renderer  *ScreenRenderer
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig

	keys     KeyMap
	help     help.Model
	latch    *KeyLatch
	titles   *titleQueue
	loop     uint64
	lastTick time.Time
	embedded bool
	quitting bool
	done     bool
}

// NewModel creates a game screen for a terminal of rt.ScreenW x rt.ScreenH
// cells.
func NewModel(cfg config.Config, rt core.RuntimeConfig, svc Services) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	titles := &titleQueue{}
	machine := game.NewMachine(cfg, rt.Seed,
		game.WithAudio(svc.Audio),
		game.WithTitler(titles),
		game.WithBest(svc.Best),
	)

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		machine:  machine,
		store:    svc.Store,
		logger:   svc.Logger,
		config:   rt,
		keys:     DefaultKeyMap(),
		help:     h,
		latch:    NewKeyLatch(rt.TickRate),
		titles:   titles,
		loop:     nextLoop(),
		embedded: svc.Embedded,
	}
	cols, rows := m.screenSize()
	m.renderer = NewScreenRenderer(svc.Assets, svc.Styles, cols, rows)
	m.presenter = present.New(m.renderer, cfg, rt.Seed)
	return m
}

// Machine returns the game driven by this model.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// screenSize returns the cells available to the game, leaving one row for
// the help bar.
func (m Model) screenSize() (cols, rows int) {
	return core.Max(m.config.ScreenW, 0), core.Max(m.config.ScreenH-m.helpHeight(), 0)
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// Init starts the tick loop and sets the initial window title.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.loop)}
	if title, ok := m.titles.take(); ok {
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return tea.Batch(cmds...)
}

// Best returns the best score of this game, including the carried-over best.
func (m Model) Best() int {
	return m.machine.Score().Best
}

// Done returns true once an embedded model has been exited.
func (m Model) Done() bool {
	return m.done
}

// IsQuitting returns true if the user forced the program to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// exit ends the game: the program for a standalone model, only the model
// when embedded.
func (m Model) exit() (tea.Model, tea.Cmd) {
	if m.embedded {
		m.done = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop || m.done {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.renderer.Resize(m.screenSize())
		return m, nil
	}

	m.latch.Press(m.keys.Action(msg))
	return m, nil
}

// handleMouse posts left-button presses to the click mailbox. A cell is two
// pixels tall; the click lands on the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.machine.Clicks().Post(float64(msg.X)+0.5, float64(msg.Y)*2+1)
	return m, nil
}

// handleResize processes window resize events. The simulation lives in
// world space, so nothing but the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.renderer.Resize(m.screenSize())
	return m, nil
}

// handleTick runs one frame: sample keys, step the machine, advance the
// decorations.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	frame := core.NewInputFrame()
	m.latch.Levels(&frame)

	viewport := m.renderer.Viewport()
	res := m.machine.Step(frame, dt, viewport)
	if res.Quit {
		return m.exit()
	}

	view := m.machine.Snapshot()
	if res.Events.Has(game.EventDied) {
		m.saveRun(view)
	}
	m.presenter.Update(dt, view, viewport)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.loop)}
	if title, ok := m.titles.take(); ok {
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return m, tea.Batch(cmds...)
}

// saveRun records the run that just ended. Failures are logged; the game
// continues regardless.
func (m Model) saveRun(view game.View) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		Player:   m.config.Player,
		Frontend: m.config.Frontend,
		Score:    view.Score.Current,
		Best:     view.Score.Best,
		Seed:     m.config.Seed,
		Duration: time.Duration(view.RunTime * float64(time.Second)),
	}
	id, err := m.store.SaveRun(run)
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "player", run.Player, "score", run.Score, "duration", run.Duration)
}

// draw renders the current state into the pixel buffer.
func (m Model) draw() {
	viewport := m.renderer.Viewport()
	m.renderer.Begin()
	present.Draw(m.renderer, m.presenter.Frame(m.machine.Snapshot(), viewport), viewport)
}

// saveScreenshot saves the current frame as a PNG.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".hophop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hophop_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return
	}
	defer f.Close()
	if err := png.Encode(f, ScreenImage(m.renderer.Screen())); err != nil && m.logger != nil {
		m.logger.Warn("could not encode screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.draw()
	helpStyle := m.renderer.styles.NewStyle().Foreground(lipgloss.Color("241"))
	return m.renderer.String() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal. It returns the
// best score when the game ends, to be passed back in as svc.Best for the
// next game.
func Run(cfg config.Config, rt core.RuntimeConfig, svc Services) (int, error) {
	model := NewModel(cfg, rt, svc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Best(), err
	}
	return model.Best(), err
}
