package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Embedded YAML and DefaultConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: -3.0\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != -3.0 {
		t.Errorf("Gravity = %v, expected -3.0", cfg.Physics.Gravity)
	}
	if cfg.Physics.FlapStrength != DefaultConfig().Physics.FlapStrength {
		t.Errorf("Unspecified keys should keep defaults, flap = %v", cfg.Physics.FlapStrength)
	}
}

func TestValidateRejectsBrokenWorld(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"inverted world", func(c *Config) { c.World.Top, c.World.Bottom = -1, 1 }, "world.top"},
		{"zero radius", func(c *Config) { c.Actor.Radius = 0 }, "actor.radius"},
		{"gap too big", func(c *Config) { c.Obstacles.GapSize = 5 }, "exceeds world height"},
		{"zero interval", func(c *Config) { c.Obstacles.SpawnInterval = 0 }, "spawn_interval"},
		{"bad progression", func(c *Config) { c.Difficulty.Progression.Type = "level" }, "progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  spawn_interval: 2.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Obstacles.SpawnInterval != 2.5 {
		t.Errorf("SpawnInterval = %v, expected 2.5", cfg.Obstacles.SpawnInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"flap_strength", "spawn_interval", "max_frame_delta", "best_digit_scale"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshalled config is missing %q", key)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("hard preset should enable score progression, got %q", cfg.Difficulty.Progression.Type)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("insane") != "" {
		t.Error("Unknown presets should parse to empty")
	}
}
