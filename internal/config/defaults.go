package config

import (
	_ "embed"
)

//go:embed defaults/hophop.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration.
// It mirrors defaults/hophop.yaml and is the fallback if the embed is unreadable.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      -2.3,
			FlapStrength: 0.6,
			ScrollSpeed:  0.6,
		},
		Actor: Actor{
			X:             -0.4,
			RestY:         0.0,
			Radius:        0.05,
			SpriteScale:   1.4,
			AspectCorrect: true,
		},
		Obstacles: Obstacles{
			Width:         0.18,
			GapSize:       0.36,
			MinGapSize:    0.26,
			Margin:        0.32,
			SpawnX:        1.2,
			PruneX:        -1.2,
			SpawnInterval: 1.6,
		},
		World: World{
			Top:    1.0,
			Bottom: -0.9,
		},
		Timing: Timing{
			MaxFrameDelta: 0.05,
		},
		Layout: Layout{
			ButtonHeight:      0.14,
			ButtonAspect:      2.6,
			ButtonMaxWidth:    0.45,
			ButtonGap:         0.25,
			BannerHeight:      0.12,
			BannerAspect:      7.8,
			ScoreDigitHeight:  0.12,
			BestDigitScale:    0.7,
			DigitAspect:       0.6,
			DigitSpacing:      0.2,
			GroundTileWidth:   0.08,
			CloudCount:        4,
			CloudSpeed:        0.03,
			CloudHeight:       0.1,
			ActorFrameSeconds: 0.15,
			TitleBobAmplitude: 0.02,
			TitleBobHz:        0.5,
			TitleBreathe:      0.04,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:        0.6,
				GapReduction:           0.08,
				SpawnIntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
