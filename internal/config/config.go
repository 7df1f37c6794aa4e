// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the game. World-space values are in
// normalized device coordinates (both axes span [-1, 1]); layout values are
// fractions of the current viewport so nothing is stored in absolute pixels.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Actor      Actor            `yaml:"actor"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	World      World            `yaml:"world"`
	Timing     Timing           `yaml:"timing"`
	Layout     Layout           `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Vertical acceleration, negative = down
	FlapStrength float64 `yaml:"flap_strength"` // Velocity set by an impulse
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Leftward obstacle speed per second
}

// Actor defines the player entity.
type Actor struct {
	X             float64 `yaml:"x"`              // Fixed horizontal position
	RestY         float64 `yaml:"rest_y"`         // Vertical position on reset
	Radius        float64 `yaml:"radius"`         // Collision half-size
	SpriteScale   float64 `yaml:"sprite_scale"`   // Drawn size relative to the hitbox
	AspectCorrect bool    `yaml:"aspect_correct"` // Keep the hitbox circular on screen
}

// Obstacles defines obstacle geometry and spawning.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	MinGapSize    float64 `yaml:"min_gap_size"` // Floor applied by difficulty scaling
	Margin        float64 `yaml:"margin"`       // Distance kept between gap and world edge
	SpawnX        float64 `yaml:"spawn_x"`
	PruneX        float64 `yaml:"prune_x"` // Obstacles whose trailing edge is left of this are removed
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// World defines the vertical extent the actor lives in.
type World struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Timing defines frame loop limits.
type Timing struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds; longer frames are clamped
}

// Layout defines the responsive presentation. Heights are fractions of the
// viewport height unless stated otherwise.
type Layout struct {
	ButtonHeight      float64 `yaml:"button_height"`
	ButtonAspect      float64 `yaml:"button_aspect"`    // width / height
	ButtonMaxWidth    float64 `yaml:"button_max_width"` // fraction of viewport width
	ButtonGap         float64 `yaml:"button_gap"`       // vertical gap between stacked buttons, in button heights
	BannerHeight      float64 `yaml:"banner_height"`
	BannerAspect      float64 `yaml:"banner_aspect"`
	ScoreDigitHeight  float64 `yaml:"score_digit_height"`
	BestDigitScale    float64 `yaml:"best_digit_scale"` // relative to score_digit_height
	DigitAspect       float64 `yaml:"digit_aspect"`
	DigitSpacing      float64 `yaml:"digit_spacing"` // fraction of digit width
	GroundTileWidth   float64 `yaml:"ground_tile_width"`
	CloudCount        int     `yaml:"cloud_count"`
	CloudSpeed        float64 `yaml:"cloud_speed"` // viewport widths per second
	CloudHeight       float64 `yaml:"cloud_height"`
	ActorFrameSeconds float64 `yaml:"actor_frame_seconds"`
	TitleBobAmplitude float64 `yaml:"title_bob_amplitude"`
	TitleBobHz        float64 `yaml:"title_bob_hz"`
	TitleBreathe      float64 `yaml:"title_breathe"` // scale oscillation amplitude
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier        float64 `yaml:"speed_multiplier"`         // Added to speed multiplier at max difficulty
	GapReduction           float64 `yaml:"gap_reduction"`            // Gap shrink at max difficulty
	SpawnIntervalReduction float64 `yaml:"spawn_interval_reduction"` // Seconds removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets other than fixed turn on score-based progression.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}

// Validate checks that the configuration describes a playable world.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Top > c.World.Bottom, "world.top (%v) must be above world.bottom (%v)", c.World.Top, c.World.Bottom)
	check(c.Actor.Radius > 0, "actor.radius must be positive, got %v", c.Actor.Radius)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapSize > 0, "obstacles.gap_size must be positive, got %v", c.Obstacles.GapSize)
	check(c.Obstacles.GapSize+2*c.Obstacles.Margin <= c.World.Top-c.World.Bottom,
		"obstacles.gap_size plus margins (%v) exceeds world height (%v)",
		c.Obstacles.GapSize+2*c.Obstacles.Margin, c.World.Top-c.World.Bottom)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	check(c.Obstacles.PruneX < c.Obstacles.SpawnX, "obstacles.prune_x must be left of spawn_x")
	check(c.Physics.ScrollSpeed >= 0, "physics.scroll_speed must not be negative, got %v", c.Physics.ScrollSpeed)
	check(c.Timing.MaxFrameDelta > 0, "timing.max_frame_delta must be positive, got %v", c.Timing.MaxFrameDelta)
	check(c.Layout.GroundTileWidth > 0, "layout.ground_tile_width must be positive, got %v", c.Layout.GroundTileWidth)
	check(c.Layout.DigitAspect > 0, "layout.digit_aspect must be positive, got %v", c.Layout.DigitAspect)
	check(c.Layout.ButtonAspect > 0, "layout.button_aspect must be positive, got %v", c.Layout.ButtonAspect)
	check(c.Layout.CloudCount >= 0, "layout.cloud_count must not be negative, got %d", c.Layout.CloudCount)

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
