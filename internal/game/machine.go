package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
)

// Title is the window title shown outside of a run.
const Title = "Hop Hop Bunny"

// View is a read-only snapshot of the simulation for presentation.
type View struct {
	State     State
	Actor     Actor
	ActorX    float64
	Obstacles []Obstacle
	Score     Score
	World     config.World
	RunTime   float64 // Seconds simulated in the current run
	Speed     float64 // Current obstacle speed, 0 outside of Running
}

// Option configures a Machine.
type Option func(*Machine)

// WithAudio sets the sound service.
func WithAudio(a Audio) Option {
	return func(m *Machine) {
		if a != nil {
			m.audio = a
		}
	}
}

// WithTitler sets the title service.
func WithTitler(t Titler) Option {
	return func(m *Machine) {
		if t != nil {
			m.titler = t
		}
	}
}

// WithBest starts the machine with a best score carried over from an earlier
// machine in the same process.
func WithBest(best int) Option {
	return func(m *Machine) {
		if best > m.score.Best {
			m.score.Best = best
		}
	}
}

// Machine is the game state machine. It owns all simulation state and is
// driven by one Step call per frame from a single goroutine; only the click
// mailbox may be written from elsewhere.
type Machine struct {
	cfg   config.Config
	state State

	actor Actor
	pool  *Pool
	score Score

	spawnTimer float64
	runTime    float64
	speed      float64

	rng        *rand.Rand
	edges      *core.EdgeDetector
	clicks     *core.ClickMailbox
	difficulty *config.DifficultyManager

	audio     Audio
	titler    Titler
	lastTitle string
}

// NewMachine creates a machine in the Idle state. The seed makes obstacle
// placement reproducible.
func NewMachine(cfg config.Config, seed int64, opts ...Option) *Machine {
	m := &Machine{
		cfg:        cfg,
		actor:      NewActor(cfg.Actor.Radius, cfg.Actor.RestY),
		pool:       NewPool(cfg.Obstacles, cfg.World),
		rng:        rand.New(rand.NewSource(seed)),
		edges:      core.NewEdgeDetector(),
		clicks:     core.NewClickMailbox(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		audio:      NopAudio{},
		titler:     NopTitler{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.enterIdle()
	return m
}

// Clicks returns the mailbox that mouse presses are posted to.
func (m *Machine) Clicks() *core.ClickMailbox {
	return m.clicks
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current and best score.
func (m *Machine) Score() Score {
	return m.score
}

// Actor returns a copy of the actor.
func (m *Machine) Actor() Actor {
	return m.actor
}

// Obstacles returns the obstacles in play. The slice must not be modified.
func (m *Machine) Obstacles() []Obstacle {
	return m.pool.Obstacles()
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.Config {
	return m.cfg
}

// Snapshot returns a copy of the state needed to draw a frame.
func (m *Machine) Snapshot() View {
	obstacles := make([]Obstacle, m.pool.Len())
	copy(obstacles, m.pool.Obstacles())
	return View{
		State:     m.state,
		Actor:     m.actor,
		ActorX:    m.cfg.Actor.X,
		Obstacles: obstacles,
		Score:     m.score,
		World:     m.cfg.World,
		RunTime:   m.runTime,
		Speed:     m.speed,
	}
}

// Step advances the game by one frame. in carries key-down levels sampled
// this frame; dt is clamped to [0, max_frame_delta]; viewport is the current
// pixel size, used for button layout and hitbox aspect correction.
func (m *Machine) Step(in core.InputFrame, dt float64, viewport core.Vec2) StepResult {
	dt = core.ClampF(dt, 0, m.cfg.Timing.MaxFrameDelta)

	// At most one click per frame; the mailbox wins over in.Click.
	click, clicked := m.clicks.Drain()
	if !clicked && in.Click != nil {
		click, clicked = *in.Click, true
	}
	edges := m.edges.Rising(in)

	var pressed ButtonKind
	var hit bool
	if clicked {
		pressed, hit = HitTest(Buttons(m.state, viewport, m.cfg.Layout), click.X, click.Y)
		if hit {
			m.audio.Play(SoundClick)
		}
	}

	res := StepResult{}
	if edges[core.ActionExit] || (hit && pressed == ButtonExit) {
		res.Quit = true
		res.State = m.state
		res.Score = m.score
		return res
	}

	switch m.state {
	case StateIdle:
		if edges[core.ActionStart] || (hit && pressed == ButtonStart) {
			m.startRun()
			res.Events |= EventStarted
		}
	case StateRunning:
		if edges[core.ActionFlap] || (clicked && !hit) {
			m.actor.ApplyImpulse(m.cfg.Physics.FlapStrength)
			m.audio.Play(SoundFlap)
			res.Events |= EventFlapped
		}
		res.Events |= m.simulate(dt, aspect(viewport))
	case StateGameOver:
		switch {
		case edges[core.ActionReset] || (hit && pressed == ButtonReset):
			m.startRun()
			res.Events |= EventStarted
		case edges[core.ActionMenu]:
			m.enterIdle()
			res.Events |= EventIdle
		}
	}

	res.State = m.state
	res.Score = m.score
	return res
}

// simulate runs one Running frame: physics, spawning, scrolling, scoring,
// pruning and collision, in that order.
func (m *Machine) simulate(dt, aspect float64) Event {
	var ev Event
	m.runTime += dt

	m.actor.Integrate(dt, m.cfg.Physics.Gravity)
	if m.actor.ClampToWorld(m.cfg.World) {
		m.die()
		return ev | EventDied
	}

	score := m.score.Current
	obs := m.cfg.Obstacles
	m.speed = m.difficulty.Speed(m.cfg.Physics.ScrollSpeed, score, m.runTime)

	m.spawnTimer += dt
	if m.spawnTimer > m.difficulty.SpawnInterval(obs.SpawnInterval, score, m.runTime) {
		m.spawnTimer = 0
		m.pool.SetGapSize(m.difficulty.GapSize(obs.GapSize, obs.MinGapSize, score, m.runTime))
		m.pool.Spawn(m.rng.Float64())
	}

	m.pool.Advance(dt, m.speed)
	if n := m.pool.ScorePass(m.cfg.Actor.X); n > 0 {
		m.score.Add(n)
		m.audio.Play(SoundScore)
		m.updateTitle()
		ev |= EventScored
	}
	m.pool.Prune()

	halfW := HalfWidth(m.actor.Radius, aspect, m.cfg.Actor.AspectCorrect)
	if _, hit := FirstCollision(m.actor, m.cfg.Actor.X, halfW, m.pool.Obstacles()); hit {
		m.die()
		ev |= EventDied
	}
	return ev
}

// startRun resets the actor, obstacles and current score and enters Running.
// Best is kept.
func (m *Machine) startRun() {
	m.resetWorld()
	m.score.ResetCurrent()
	m.speed = m.cfg.Physics.ScrollSpeed
	m.state = StateRunning
	m.audio.Play(SoundStart)
	m.updateTitle()
}

func (m *Machine) enterIdle() {
	m.resetWorld()
	m.score.ResetCurrent()
	m.speed = 0
	m.state = StateIdle
	m.setTitle(Title)
}

func (m *Machine) resetWorld() {
	m.actor.Reset(m.cfg.Actor.RestY)
	m.pool.Reset()
	m.pool.SetGapSize(m.cfg.Obstacles.GapSize)
	m.spawnTimer = 0
	m.runTime = 0
}

func (m *Machine) die() {
	m.score.Commit()
	m.speed = 0
	m.state = StateGameOver
	m.audio.Play(SoundHit)
	m.updateTitle()
}

func (m *Machine) updateTitle() {
	m.setTitle(fmt.Sprintf("%s - Score: %d  Best: %d", Title, m.score.Current, m.score.Best))
}

func (m *Machine) setTitle(title string) {
	if title == m.lastTitle {
		return
	}
	m.lastTitle = title
	m.titler.SetTitle(title)
}

// aspect returns viewport height over width, or 1 for a degenerate viewport.
func aspect(viewport core.Vec2) float64 {
	if viewport.X <= 0 || viewport.Y <= 0 {
		return 1
	}
	return viewport.Y / viewport.X
}
