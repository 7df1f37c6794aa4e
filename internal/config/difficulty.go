package config

import "math"

// Floors applied regardless of scaling so the game stays playable.
const (
	minSpawnInterval = 0.6
	minSpeedFactor   = 0.1
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// seconds elapsed in the run. Without progression the level stays at the
// initial level.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	factor := math.Max(1.0+level*d.cfg.Scaling.SpeedMultiplier, minSpeedFactor)
	return baseSpeed * factor
}

// GapSize returns the gap size for the current difficulty level, never
// smaller than minGap (unless the base itself is smaller).
func (d *DifficultyManager) GapSize(baseGap, minGap float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	floor := math.Min(minGap, baseGap)
	if result < floor {
		result = floor
	}
	return result
}

// SpawnInterval returns seconds between obstacle spawns for the current level.
func (d *DifficultyManager) SpawnInterval(baseInterval float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	result := baseInterval - level*d.cfg.Scaling.SpawnIntervalReduction
	floor := math.Min(minSpawnInterval, baseInterval)
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
