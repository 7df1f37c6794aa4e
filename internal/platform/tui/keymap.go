package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hophop/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Reset      key.Binding
	Menu       key.Binding
	Exit       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Start, k.Reset, k.Exit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start, k.Reset, k.Menu},
		{k.Exit, k.Quit, k.Screenshot, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/w", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "title screen"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// Action translates a key message to a game action. Keys that are not game
// actions (quit, screenshot, help) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Menu):
		return core.ActionMenu
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	}
	return core.ActionNone
}

// keyHold is how long a key counts as down after its last press event.
// Terminals report presses and auto-repeats but never releases. Once
// auto-repeat is running, repeats arrive faster than this and the key stays
// down. The delay before the first repeat (usually 250-600ms) is longer, so
// holding a key past it reads as a second press. A longer hold would merge
// quick taps instead, and taps are how the game is played.
const keyHold = 80 * time.Millisecond

// KeyLatch turns terminal key presses into per-frame key levels.
type KeyLatch struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewKeyLatch creates a latch for a loop running at tickRate frames per second.
func NewKeyLatch(tickRate int) *KeyLatch {
	if tickRate <= 0 {
		tickRate = 60
	}
	frame := time.Second / time.Duration(tickRate)
	hold := int((keyHold + frame - 1) / frame)
	return &KeyLatch{
		holdTicks: core.Max(hold, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press (or auto-repeat) for the action.
func (l *KeyLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	l.remaining[a] = l.holdTicks
}

// Levels fills frame with the actions currently held and ages the latch by
// one frame.
func (l *KeyLatch) Levels(frame *core.InputFrame) {
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
}
