package game

import (
	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
)

// Obstacle is a vertical barrier with a passable gap, positioned in world space.
type Obstacle struct {
	X         float64 // Horizontal center
	GapCenter float64 // Vertical center of the gap
	GapSize   float64 // Height of the passable gap
	Width     float64
	Scored    bool // Whether the actor has passed this obstacle (flips at most once)
}

// Leading returns the x-coordinate of the left edge.
func (o Obstacle) Leading() float64 {
	return o.X - o.Width/2
}

// Trailing returns the x-coordinate of the right edge.
func (o Obstacle) Trailing() float64 {
	return o.X + o.Width/2
}

// GapTop returns the upper edge of the gap.
func (o Obstacle) GapTop() float64 {
	return o.GapCenter + o.GapSize/2
}

// GapBottom returns the lower edge of the gap.
func (o Obstacle) GapBottom() float64 {
	return o.GapCenter - o.GapSize/2
}

// Pool holds the obstacles currently in play, ordered by spawn time.
// All obstacles move left at the same speed and new ones appear at the same
// x, so spawn order is also spatial order: x never increases along the slice.
// That is what lets Prune work from the front only.
type Pool struct {
	obstacles []Obstacle
	world     config.World
	width     float64
	gapSize   float64
	margin    float64
	spawnX    float64
	pruneX    float64
}

// NewPool creates an empty pool for the given world.
func NewPool(cfg config.Obstacles, world config.World) *Pool {
	return &Pool{
		obstacles: make([]Obstacle, 0, 8),
		world:     world,
		width:     cfg.Width,
		gapSize:   cfg.GapSize,
		margin:    cfg.Margin,
		spawnX:    cfg.SpawnX,
		pruneX:    cfg.PruneX,
	}
}

// Reset removes every obstacle.
func (p *Pool) Reset() {
	p.obstacles = p.obstacles[:0]
}

// SetGapSize changes the gap used for subsequent spawns.
func (p *Pool) SetGapSize(size float64) {
	p.gapSize = size
}

// GapSize returns the gap used for the next spawn.
func (p *Pool) GapSize() float64 {
	return p.gapSize
}

// GapBounds returns the range of gap centers that keep the whole gap inside
// the world minus the margin. A range too small to hold the gap collapses to
// the world's midpoint.
func (p *Pool) GapBounds() (lower, upper float64) {
	lower = p.world.Bottom + p.margin + p.gapSize/2
	upper = p.world.Top - p.margin - p.gapSize/2
	if upper < lower {
		mid := (p.world.Top + p.world.Bottom) / 2
		return mid, mid
	}
	return lower, upper
}

// Spawn appends one obstacle at the right edge. draw is a uniform sample in
// [0, 1) that picks the gap center; out-of-range values are clamped.
func (p *Pool) Spawn(draw float64) Obstacle {
	draw = core.ClampF(draw, 0, 1)
	lower, upper := p.GapBounds()

	o := Obstacle{
		X:         p.spawnX,
		GapCenter: lower + draw*(upper-lower),
		GapSize:   p.gapSize,
		Width:     p.width,
	}
	p.obstacles = append(p.obstacles, o)
	return o
}

// Advance moves every obstacle left by speed*dt.
func (p *Pool) Advance(dt, speed float64) {
	dx := speed * dt
	for i := range p.obstacles {
		p.obstacles[i].X -= dx
	}
}

// Prune removes obstacles from the front while their trailing edge is left
// of the off-screen threshold. Returns how many were removed.
func (p *Pool) Prune() int {
	n := 0
	for n < len(p.obstacles) && p.obstacles[n].Trailing() < p.pruneX {
		n++
	}
	if n > 0 {
		p.obstacles = append(p.obstacles[:0], p.obstacles[n:]...)
	}
	return n
}

// ScorePass marks every unscored obstacle whose trailing edge has passed
// actorX and returns how many were newly marked.
func (p *Pool) ScorePass(actorX float64) int {
	passed := 0
	for i := range p.obstacles {
		if !p.obstacles[i].Scored && p.obstacles[i].Trailing() < actorX {
			p.obstacles[i].Scored = true
			passed++
		}
	}
	return passed
}

// Obstacles returns the obstacles in spawn order.
// The slice is owned by the pool and must not be modified.
func (p *Pool) Obstacles() []Obstacle {
	return p.obstacles
}

// Len returns the number of obstacles in play.
func (p *Pool) Len() int {
	return len(p.obstacles)
}
