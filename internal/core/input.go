package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, Up, W - upward impulse
	ActionStart        // Enter - start from the title screen
	ActionReset        // R - retry after game over
	ActionExit         // Esc - terminate from any state
	ActionMenu         // M - back to the title screen after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionExit:
		return "Exit"
	case ActionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Click is a mouse press captured in viewport pixel space.
type Click struct {
	X, Y float64
}

// InputFrame is the per-frame input snapshot handed to the simulation.
// Actions holds key-down levels as sampled this frame (not edges).
// Click is an optional press for frontends that sample the mouse together
// with the keys; it is ignored when the machine's click mailbox also holds
// a press that frame.
type InputFrame struct {
	Actions map[Action]bool
	Click   *Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action's key as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action's key is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		c := *f.Click
		clone.Click = &c
	}
	return clone
}

// EdgeDetector turns sampled key levels into rising edges by comparing
// against the previous frame. A key held for any number of frames yields
// exactly one edge, on the frame it went down.
type EdgeDetector struct {
	prev map[Action]bool
}

// NewEdgeDetector creates a detector with every key considered released.
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{prev: make(map[Action]bool)}
}

// Rising returns the set of actions whose key went from released to held
// between the previous call and this one, then remembers the current levels.
func (d *EdgeDetector) Rising(levels InputFrame) map[Action]bool {
	edges := make(map[Action]bool)
	for a, down := range levels.Actions {
		if down && !d.prev[a] {
			edges[a] = true
		}
	}
	for a := range d.prev {
		delete(d.prev, a)
	}
	for a, down := range levels.Actions {
		if down {
			d.prev[a] = true
		}
	}
	return edges
}

// Reset forgets previous levels so the next held key counts as a fresh press.
func (d *EdgeDetector) Reset() {
	for a := range d.prev {
		delete(d.prev, a)
	}
}

// ClickMailbox is a single-slot mailbox for mouse presses. Posting replaces
// any undrained click, so at most one click is ever pending. Post may be
// called from an input goroutine; Drain is called once per frame.
type ClickMailbox struct {
	slot chan Click
}

// NewClickMailbox creates an empty mailbox.
func NewClickMailbox() *ClickMailbox {
	return &ClickMailbox{slot: make(chan Click, 1)}
}

// Post stores a click, overwriting a pending one.
func (m *ClickMailbox) Post(x, y float64) {
	c := Click{X: x, Y: y}
	for {
		select {
		case m.slot <- c:
			return
		default:
		}
		select {
		case <-m.slot:
		default:
		}
	}
}

// Drain removes and returns the pending click, if any.
func (m *ClickMailbox) Drain() (Click, bool) {
	select {
	case c := <-m.slot:
		return c, true
	default:
		return Click{}, false
	}
}
