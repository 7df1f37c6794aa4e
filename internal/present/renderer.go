// Package present turns simulation snapshots into draw commands. It owns no
// simulation state: only decoration timers (sprite frames, clouds, ground
// scroll, title animation) live here.
package present

import "github.com/vovakirdan/hophop/internal/core"

// Handle refers to a texture loaded by a Renderer.
type Handle int

// NoTexture is returned when a texture could not be loaded. Commands that
// need a texture are dropped rather than drawn with it.
const NoTexture Handle = 0

// Renderer is the drawing backend.
type Renderer interface {
	// LoadTexture resolves a texture identifier. Failure returns NoTexture.
	LoadTexture(id string) Handle
	// DrawQuad draws an axis-aligned quad given in viewport pixels (origin
	// top-left, y down). A NoTexture handle draws a solid color instead.
	DrawQuad(tex Handle, color core.Color, center, size, viewport core.Vec2, alpha float64)
}

// DrawCommand is one quad of a frame.
type DrawCommand struct {
	ID      string // Element name, e.g. "obstacle_top" or a texture identifier
	Texture Handle
	Color   core.Color
	Center  core.Vec2
	Size    core.Vec2
	Alpha   float64
}

// Draw executes the commands in order against the renderer.
func Draw(r Renderer, cmds []DrawCommand, viewport core.Vec2) {
	for _, c := range cmds {
		r.DrawQuad(c.Texture, c.Color, c.Center, c.Size, viewport, c.Alpha)
	}
}
