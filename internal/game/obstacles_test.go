package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/hophop/internal/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestPool() *Pool {
	cfg := config.DefaultConfig()
	return NewPool(cfg.Obstacles, cfg.World)
}

func TestSpawnGapBounds(t *testing.T) {
	p := newTestPool()
	// bottom -0.9 + margin 0.32 + gap/2 0.18, top 1.0 - 0.32 - 0.18
	lower, upper := p.GapBounds()
	if !approx(lower, -0.4) || !approx(upper, 0.5) {
		t.Fatalf("GapBounds = (%v, %v), expected (-0.4, 0.5)", lower, upper)
	}

	tests := []struct {
		name string
		draw float64
		want float64
	}{
		{"lowest", 0, -0.4},
		{"middle", 0.5, 0.05},
		{"above range clamps", 2, 0.5},
		{"below range clamps", -1, -0.4},
		{"NaN clamps to lowest", math.NaN(), -0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := p.Spawn(tt.draw)
			if !approx(o.GapCenter, tt.want) {
				t.Errorf("GapCenter = %v, expected %v", o.GapCenter, tt.want)
			}
			if o.X != 1.2 || o.Width != 0.18 || o.GapSize != 0.36 || o.Scored {
				t.Errorf("Unexpected obstacle %+v", o)
			}
		})
	}

	if p.Len() != len(tests) {
		t.Errorf("Len = %d, expected %d", p.Len(), len(tests))
	}
}

func TestSpawnKeepsGapInsideWorld(t *testing.T) {
	p := newTestPool()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		o := p.Spawn(rng.Float64())
		if o.GapTop() > 1.0-0.32+1e-9 || o.GapBottom() < -0.9+0.32-1e-9 {
			t.Fatalf("Gap [%v, %v] escapes the margin", o.GapBottom(), o.GapTop())
		}
	}
}

func TestSpawnDegenerateRangeUsesMidpoint(t *testing.T) {
	p := newTestPool()
	p.SetGapSize(1.8)

	lower, upper := p.GapBounds()
	if lower != upper || !approx(lower, 0.05) {
		t.Errorf("GapBounds = (%v, %v), expected collapse to 0.05", lower, upper)
	}
	if o := p.Spawn(0.9); !approx(o.GapCenter, 0.05) {
		t.Errorf("GapCenter = %v, expected 0.05", o.GapCenter)
	}
}

func TestPoolStaysOrdered(t *testing.T) {
	p := newTestPool()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			p.Spawn(rng.Float64())
		case 1, 2:
			p.Advance(rng.Float64()*0.05, 0.6)
		case 3:
			p.Prune()
		}

		obs := p.Obstacles()
		for j := 1; j < len(obs); j++ {
			if obs[j].X > obs[j-1].X {
				t.Fatalf("Step %d: obstacle %d at x=%v is right of obstacle %d at x=%v",
					i, j, obs[j].X, j-1, obs[j-1].X)
			}
		}
	}
}

func TestPruneRemovesFromFront(t *testing.T) {
	p := newTestPool()
	p.Spawn(0.5)
	p.Advance(1, 1.0) // x = 0.2
	p.Spawn(0.5)      // x = 1.2

	if n := p.Prune(); n != 0 {
		t.Fatalf("Prune removed %d on-screen obstacles", n)
	}

	p.Advance(1, 1.40) // x = -1.2 and -0.2; trailing -1.11 is still on-screen
	if n := p.Prune(); n != 0 {
		t.Fatalf("Prune removed %d obstacles with trailing edge on-screen", n)
	}

	p.Advance(1, 0.2) // x = -1.4, trailing -1.31
	if n := p.Prune(); n != 1 {
		t.Fatalf("Prune removed %d, expected 1", n)
	}
	if p.Len() != 1 || !approx(p.Obstacles()[0].X, -0.4) {
		t.Errorf("Remaining obstacles %+v, expected one at x=-0.4", p.Obstacles())
	}
}

func TestScorePassCountsOnce(t *testing.T) {
	p := newTestPool()
	p.Spawn(0.5)

	total := 0
	for i := 0; i < 200; i++ {
		p.Advance(0.05, 0.6)
		total += p.ScorePass(-0.4)
	}
	if total != 1 {
		t.Errorf("ScorePass counted %d, expected 1", total)
	}
	if !p.Obstacles()[0].Scored {
		t.Error("Obstacle should be marked scored")
	}
}

func TestScorePassUsesTrailingEdge(t *testing.T) {
	p := newTestPool()
	p.Spawn(0.5)
	// Center passes the actor first; trailing edge is still to its right
	p.Advance(1, 1.55) // x = -0.35, trailing -0.26
	if n := p.ScorePass(-0.3); n != 0 {
		t.Errorf("ScorePass = %d before trailing edge passed", n)
	}
	p.Advance(1, 0.1) // trailing -0.36
	if n := p.ScorePass(-0.3); n != 1 {
		t.Errorf("ScorePass = %d after trailing edge passed, expected 1", n)
	}
}

func TestPoolReset(t *testing.T) {
	p := newTestPool()
	p.SetGapSize(0.3)
	for i := 0; i < 3; i++ {
		p.Spawn(0.1)
	}
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len after Reset = %d", p.Len())
	}
	if p.GapSize() != 0.3 {
		t.Errorf("Reset should not touch the gap size")
	}
}
