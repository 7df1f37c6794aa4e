package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("Default difficulty should be disabled")
	}
	if got := d.Speed(0.6, 100, 100); !approx(got, 0.6) {
		t.Errorf("Speed = %v, expected base 0.6", got)
	}
	if got := d.GapSize(0.36, 0.26, 100, 100); !approx(got, 0.36) {
		t.Errorf("GapSize = %v, expected base 0.36", got)
	}
	if got := d.SpawnInterval(1.6, 100, 100); !approx(got, 1.6) {
		t.Errorf("SpawnInterval = %v, expected base 1.6", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 10}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := d.Level(5, 0); !approx(got, 0.5) {
		t.Errorf("Level(5) = %v, expected 0.5", got)
	}
	if got := d.Level(50, 0); got != 1 {
		t.Errorf("Level(50) = %v, expected clamp to 1", got)
	}

	// At max difficulty the gap is floored at the minimum
	if got := d.GapSize(0.36, 0.3, 10, 0); !approx(got, 0.3) {
		t.Errorf("GapSize at max = %v, expected floor 0.3", got)
	}
	if got := d.Speed(1.0, 10, 0); !approx(got, 1.6) {
		t.Errorf("Speed at max = %v, expected 1.6", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 20}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 10); !approx(got, 0.75) {
		t.Errorf("Level after half the time = %v, expected 0.75", got)
	}
	if got := d.SpawnInterval(1.0, 0, 1000); !approx(got, 0.6) {
		t.Errorf("SpawnInterval = %v, expected floor 0.6", got)
	}
}
