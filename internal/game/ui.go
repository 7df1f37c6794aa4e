package game

import (
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
)

// ButtonKind identifies what a button does when clicked.
type ButtonKind int

const (
	ButtonStart ButtonKind = iota
	ButtonReset
	ButtonExit
)

// String returns a human-readable name for the button.
func (k ButtonKind) String() string {
	switch k {
	case ButtonStart:
		return "Start"
	case ButtonReset:
		return "Reset"
	case ButtonExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Vertical anchor of the first button, as a fraction of viewport height.
const buttonAnchorY = 0.62

// Button is a clickable element in viewport pixel space (y grows downward).
type Button struct {
	Kind    ButtonKind
	Box     core.Box
	Visible bool
}

// ButtonSize returns the pixel size of a button for the viewport. Height is a
// fraction of viewport height; width follows the aspect ratio but is capped to
// a fraction of viewport width, shrinking height to keep the ratio.
func ButtonSize(viewport core.Vec2, layout config.Layout) core.Vec2 {
	h := layout.ButtonHeight * viewport.Y
	w := h * layout.ButtonAspect
	if maxW := layout.ButtonMaxWidth * viewport.X; w > maxW {
		w = maxW
		h = w / layout.ButtonAspect
	}
	return core.V(w, h)
}

// Buttons lays out every button for the state. Start and Reset share the
// primary slot; Exit sits one row below. The slice is ordered for hit-testing.
func Buttons(state State, viewport core.Vec2, layout config.Layout) []Button {
	size := ButtonSize(viewport, layout)
	cx := viewport.X / 2
	primary := viewport.Y * buttonAnchorY
	secondary := primary + size.Y*(1+layout.ButtonGap)

	return []Button{
		{Kind: ButtonStart, Box: core.Box{Center: core.V(cx, primary), Size: size}, Visible: state == StateIdle},
		{Kind: ButtonReset, Box: core.Box{Center: core.V(cx, primary), Size: size}, Visible: state == StateGameOver},
		{Kind: ButtonExit, Box: core.Box{Center: core.V(cx, secondary), Size: size}, Visible: state != StateRunning},
	}
}

// HitTest returns the first visible button containing the point.
func HitTest(buttons []Button, x, y float64) (ButtonKind, bool) {
	for _, b := range buttons {
		if b.Visible && b.Box.Contains(x, y) {
			return b.Kind, true
		}
	}
	return 0, false
}
