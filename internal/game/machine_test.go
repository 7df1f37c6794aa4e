package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hophop/internal/config"
	"github.com/vovakirdan/hophop/internal/core"
)

var testViewport = core.V(800, 600)

const testDT = 0.05

type recordingAudio struct {
	played []string
}

func (r *recordingAudio) Play(name string) {
	r.played = append(r.played, name)
}

func (r *recordingAudio) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

type recordingTitler struct {
	titles []string
}

func (r *recordingTitler) SetTitle(title string) {
	r.titles = append(r.titles, title)
}

func (r *recordingTitler) last() string {
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// hoverConfig widens the gap so an actor hovering at y=0 always passes.
func hoverConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Obstacles.GapSize = 1.2
	cfg.Obstacles.Margin = 0.1
	return cfg
}

// playUntilDeath starts a run, hovers until at least one obstacle is passed,
// then flaps once and lets the actor fall.
func playUntilDeath(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 400 && m.Score().Current == 0; i++ {
		m.Step(press(), testDT, testViewport)
	}
	if m.Score().Current == 0 {
		t.Fatal("Hovering actor never scored")
	}

	m.Step(press(core.ActionFlap), testDT, testViewport)
	for i := 0; i < 400 && m.State() == StateRunning; i++ {
		m.Step(press(), testDT, testViewport)
	}
	if m.State() != StateGameOver {
		t.Fatalf("State = %v, expected GameOver after falling", m.State())
	}
}

func TestMachineStartsIdle(t *testing.T) {
	titler := &recordingTitler{}
	m := NewMachine(config.DefaultConfig(), 1, WithTitler(titler))

	if m.State() != StateIdle {
		t.Errorf("State = %v, expected Idle", m.State())
	}
	if len(m.Obstacles()) != 0 || m.Score().Current != 0 {
		t.Error("Idle should start with an empty pool and zero score")
	}
	if titler.last() != Title {
		t.Errorf("Title = %q, expected %q", titler.last(), Title)
	}

	// Nothing moves in Idle
	for i := 0; i < 100; i++ {
		m.Step(press(), testDT, testViewport)
	}
	if m.State() != StateIdle || len(m.Obstacles()) != 0 {
		t.Error("Idle should not simulate")
	}
}

func TestMachineStartKey(t *testing.T) {
	audio := &recordingAudio{}
	titler := &recordingTitler{}
	m := NewMachine(config.DefaultConfig(), 1, WithAudio(audio), WithTitler(titler))

	res := m.Step(press(core.ActionStart), testDT, testViewport)
	if res.State != StateRunning || !res.Events.Has(EventStarted) {
		t.Fatalf("Step = %+v, expected Running with EventStarted", res)
	}
	if audio.count(SoundStart) != 1 {
		t.Errorf("Start sound played %d times", audio.count(SoundStart))
	}
	if want := "Hop Hop Bunny - Score: 0  Best: 0"; titler.last() != want {
		t.Errorf("Title = %q, expected %q", titler.last(), want)
	}
}

func TestHeldFlapKeyImpulsesOnce(t *testing.T) {
	audio := &recordingAudio{}
	m := NewMachine(config.DefaultConfig(), 1, WithAudio(audio))
	m.Step(press(core.ActionStart), testDT, testViewport)

	flaps := 0
	for i := 0; i < 10; i++ {
		res := m.Step(press(core.ActionFlap), 1.0/60, testViewport)
		if res.Events.Has(EventFlapped) {
			flaps++
		}
	}
	if flaps != 1 {
		t.Errorf("Held key produced %d impulses, expected 1", flaps)
	}
	if audio.count(SoundFlap) != 1 {
		t.Errorf("Flap sound played %d times, expected 1", audio.count(SoundFlap))
	}

	// Release then press again: a new edge
	m.Step(press(), 1.0/60, testViewport)
	if res := m.Step(press(core.ActionFlap), 1.0/60, testViewport); !res.Events.Has(EventFlapped) {
		t.Error("Re-pressed key should impulse again")
	}
}

func TestActorHoversUntilFirstFlap(t *testing.T) {
	m := NewMachine(config.DefaultConfig(), 1)
	m.Step(press(core.ActionStart), testDT, testViewport)

	for i := 0; i < 20; i++ {
		m.Step(press(), testDT, testViewport)
	}
	if m.Actor().Y != 0 {
		t.Errorf("Actor Y = %v, expected rest pose before first flap", m.Actor().Y)
	}
	if m.Snapshot().RunTime == 0 {
		t.Error("Run clock should advance while hovering")
	}
}

func TestObstaclesSpawnWhileHovering(t *testing.T) {
	m := NewMachine(config.DefaultConfig(), 1)
	m.Step(press(core.ActionStart), testDT, testViewport)

	// Spawn interval 1.6s: the accumulator must exceed it
	for i := 0; i < 33; i++ {
		m.Step(press(), testDT, testViewport)
	}
	if len(m.Obstacles()) != 1 {
		t.Fatalf("Obstacles = %d after 1.65s, expected 1", len(m.Obstacles()))
	}
	if x := m.Obstacles()[0].X; x >= 1.2 {
		t.Errorf("Obstacle x = %v, expected it to have moved left", x)
	}
}

func TestRestartResetsRunButKeepsBest(t *testing.T) {
	audio := &recordingAudio{}
	m := NewMachine(hoverConfig(), 3, WithAudio(audio))
	m.Step(press(core.ActionStart), testDT, testViewport)

	playUntilDeath(t, m)

	score := m.Score()
	if score.Best != score.Current || score.Best == 0 {
		t.Fatalf("After death score = %+v, expected best == current > 0", score)
	}
	if audio.count(SoundHit) != 1 {
		t.Errorf("Hit sound played %d times, expected 1", audio.count(SoundHit))
	}

	res := m.Step(press(core.ActionReset), testDT, testViewport)
	if res.State != StateRunning || !res.Events.Has(EventStarted) {
		t.Fatalf("Reset key: %+v, expected Running", res)
	}
	if m.Score().Current != 0 {
		t.Errorf("Current = %d after restart, expected 0", m.Score().Current)
	}
	if len(m.Obstacles()) != 0 {
		t.Errorf("Pool has %d obstacles after restart, expected 0", len(m.Obstacles()))
	}
	if m.Score().Best != score.Best {
		t.Errorf("Best = %d after restart, expected %d", m.Score().Best, score.Best)
	}
	if a := m.Actor(); a.Y != 0 || a.VelocityY != 0 || a.Flapped {
		t.Errorf("Actor not reset: %+v", a)
	}
}

func TestBestNeverDecreases(t *testing.T) {
	m := NewMachine(hoverConfig(), 9)
	m.Step(press(core.ActionStart), testDT, testViewport)

	best := 0
	for run := 0; run < 3; run++ {
		playUntilDeath(t, m)
		if m.Score().Best < best {
			t.Fatalf("Best decreased from %d to %d", best, m.Score().Best)
		}
		best = m.Score().Best
		m.Step(press(core.ActionReset), testDT, testViewport)
	}
}

func TestCarriedBestSurvivesLowerRuns(t *testing.T) {
	titles := &recordingTitler{}
	m := NewMachine(hoverConfig(), 5, WithBest(1000), WithTitler(titles))
	if m.Score().Best != 1000 || m.Score().Current != 0 {
		t.Fatalf("New machine score = %+v, expected best 1000", m.Score())
	}

	m.Step(press(core.ActionStart), testDT, testViewport)
	playUntilDeath(t, m)

	if got := m.Snapshot().Score.Best; got != 1000 {
		t.Errorf("Best = %d after a lower run, expected 1000", got)
	}
	if want := "Best: 1000"; !strings.Contains(titles.last(), want) {
		t.Errorf("Title %q does not contain %q", titles.last(), want)
	}

	// A lower carried best never lowers what the machine already has
	m2 := NewMachine(hoverConfig(), 5, WithBest(-3))
	if m2.Score().Best != 0 {
		t.Errorf("Best = %d from a negative carry, expected 0", m2.Score().Best)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	m := NewMachine(hoverConfig(), 3)
	m.Step(press(core.ActionStart), testDT, testViewport)
	playUntilDeath(t, m)

	frozen := m.Snapshot()
	for i := 0; i < 50; i++ {
		res := m.Step(press(core.ActionFlap), testDT, testViewport)
		if res.Events.Has(EventDied) || res.Events.Has(EventFlapped) {
			t.Fatalf("GameOver produced events %v", res.Events)
		}
	}
	after := m.Snapshot()
	if after.Actor != frozen.Actor || len(after.Obstacles) != len(frozen.Obstacles) {
		t.Error("World changed during GameOver")
	}
	for i := range after.Obstacles {
		if after.Obstacles[i] != frozen.Obstacles[i] {
			t.Errorf("Obstacle %d moved during GameOver", i)
		}
	}
}

func TestMenuReturnsToIdle(t *testing.T) {
	m := NewMachine(hoverConfig(), 3)
	m.Step(press(core.ActionStart), testDT, testViewport)
	playUntilDeath(t, m)
	best := m.Score().Best

	res := m.Step(press(core.ActionMenu), testDT, testViewport)
	if res.State != StateIdle || !res.Events.Has(EventIdle) {
		t.Fatalf("Menu key: %+v, expected Idle", res)
	}
	if len(m.Obstacles()) != 0 || m.Score().Current != 0 || m.Score().Best != best {
		t.Errorf("Idle after menu: obstacles=%d score=%+v", len(m.Obstacles()), m.Score())
	}
}

func TestExitFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m *Machine)
	}{
		{"idle", func(t *testing.T, m *Machine) {}},
		{"running", func(t *testing.T, m *Machine) {
			m.Step(press(core.ActionStart), testDT, testViewport)
		}},
		{"game over", func(t *testing.T, m *Machine) {
			m.Step(press(core.ActionStart), testDT, testViewport)
			playUntilDeath(t, m)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(hoverConfig(), 3)
			tt.setup(t, m)
			if res := m.Step(press(core.ActionExit), testDT, testViewport); !res.Quit {
				t.Error("Exit key should quit")
			}
		})
	}
}

func TestClickButtons(t *testing.T) {
	layout := config.DefaultConfig().Layout
	start := Buttons(StateIdle, testViewport, layout)[0].Box.Center
	exit := Buttons(StateIdle, testViewport, layout)[2].Box.Center

	t.Run("start", func(t *testing.T) {
		audio := &recordingAudio{}
		m := NewMachine(config.DefaultConfig(), 1, WithAudio(audio))
		m.Clicks().Post(start.X, start.Y)
		res := m.Step(press(), testDT, testViewport)
		if res.State != StateRunning {
			t.Errorf("State = %v, expected Running", res.State)
		}
		if audio.count(SoundClick) != 1 {
			t.Errorf("Click sound played %d times", audio.count(SoundClick))
		}
		// Consumed: the next frame sees no click
		if res := m.Step(press(), testDT, testViewport); res.Events.Has(EventFlapped) {
			t.Error("Start click was applied twice")
		}
	})

	t.Run("exit", func(t *testing.T) {
		m := NewMachine(config.DefaultConfig(), 1)
		m.Clicks().Post(exit.X, exit.Y)
		if res := m.Step(press(), testDT, testViewport); !res.Quit {
			t.Error("Exit click should quit")
		}
	})

	t.Run("miss in idle", func(t *testing.T) {
		m := NewMachine(config.DefaultConfig(), 1)
		m.Clicks().Post(1, 1)
		if res := m.Step(press(), testDT, testViewport); res.State != StateIdle || res.Quit {
			t.Errorf("Missed click changed state: %+v", res)
		}
	})

	t.Run("hidden exit flaps while running", func(t *testing.T) {
		m := NewMachine(config.DefaultConfig(), 1)
		m.Step(press(core.ActionStart), testDT, testViewport)
		m.Clicks().Post(exit.X, exit.Y)
		res := m.Step(press(), testDT, testViewport)
		if res.Quit || !res.Events.Has(EventFlapped) {
			t.Errorf("Click while running: %+v, expected a flap", res)
		}
	})

	t.Run("frame click", func(t *testing.T) {
		m := NewMachine(config.DefaultConfig(), 1)
		in := press()
		in.Click = &core.Click{X: start.X, Y: start.Y}
		if res := m.Step(in, testDT, testViewport); res.State != StateRunning {
			t.Errorf("State = %v, expected Running", res.State)
		}
	})

	t.Run("mailbox wins over frame click", func(t *testing.T) {
		m := NewMachine(config.DefaultConfig(), 1)
		m.Clicks().Post(start.X, start.Y)
		in := press()
		in.Click = &core.Click{X: exit.X, Y: exit.Y}
		res := m.Step(in, testDT, testViewport)
		if res.Quit || res.State != StateRunning {
			t.Errorf("Step = %+v, expected the mailbox Start click to apply", res)
		}
	})
}

func TestFrameDeltaIsClamped(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64 // Actor rise after flapping
	}{
		{"negative", -1, 0},
		{"huge", 10, 0.6 * 0.05},
		{"normal", 0.02, 0.6 * 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(config.DefaultConfig(), 1)
			m.Step(press(core.ActionStart), testDT, testViewport)
			m.Step(press(core.ActionFlap), tt.dt, testViewport)
			if got := m.Actor().Y; !approx(got, tt.want) {
				t.Errorf("Actor Y = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestScoreMirroredToTitle(t *testing.T) {
	audio := &recordingAudio{}
	titler := &recordingTitler{}
	m := NewMachine(hoverConfig(), 5, WithAudio(audio), WithTitler(titler))
	m.Step(press(core.ActionStart), testDT, testViewport)

	scored := false
	for i := 0; i < 400 && !scored; i++ {
		res := m.Step(press(), testDT, testViewport)
		scored = res.Events.Has(EventScored)
	}
	if !scored {
		t.Fatal("Never scored")
	}
	if want := "Hop Hop Bunny - Score: 1  Best: 1"; titler.last() != want {
		t.Errorf("Title = %q, expected %q", titler.last(), want)
	}
	if audio.count(SoundScore) != 1 {
		t.Errorf("Score sound played %d times, expected 1", audio.count(SoundScore))
	}
}

func TestMachineDeterminism(t *testing.T) {
	run := func() []Obstacle {
		m := NewMachine(hoverConfig(), 12345)
		m.Step(press(core.ActionStart), testDT, testViewport)
		for i := 0; i < 150; i++ {
			m.Step(press(), testDT, testViewport)
		}
		return m.Snapshot().Obstacles
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("Obstacle counts differ or empty: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewMachine(hoverConfig(), 1)
	m.Step(press(core.ActionStart), testDT, testViewport)
	for i := 0; i < 40; i++ {
		m.Step(press(), testDT, testViewport)
	}

	view := m.Snapshot()
	if len(view.Obstacles) == 0 {
		t.Fatal("Expected obstacles in view")
	}
	view.Obstacles[0].X = 99
	if m.Obstacles()[0].X == 99 {
		t.Error("Snapshot shares obstacle storage with the machine")
	}
	if view.State != StateRunning || view.ActorX != -0.4 || view.Speed != 0.6 {
		t.Errorf("Unexpected view %+v", view)
	}
}
