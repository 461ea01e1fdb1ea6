package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  speed: 0.25\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Obstacles.Speed != 0.25 {
		t.Errorf("speed = %g, expected 0.25", cfg.Obstacles.Speed)
	}
	// Untouched values keep their defaults
	if cfg.Obstacles.SpawnZ != -10 || cfg.Player.Z != 5 {
		t.Errorf("partial override should keep defaults, got %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"inverted player range", func(c *Config) { c.Player.MinX, c.Player.MaxX = 3, -3 }, "player.min_x"},
		{"start outside range", func(c *Config) { c.Player.StartX = 4 }, "player.start_x"},
		{"zero step", func(c *Config) { c.Player.Step = 0 }, "player.step"},
		{"inverted obstacle range", func(c *Config) { c.Obstacles.MinX = 5 }, "obstacles.min_x"},
		{"spawn beyond retire", func(c *Config) { c.Obstacles.SpawnZ = 10 }, "obstacles.spawn_z"},
		{"negative speed", func(c *Config) { c.Obstacles.Speed = -0.1 }, "obstacles.speed"},
		{"chance above one", func(c *Config) { c.Obstacles.SpawnChance = 1.5 }, "obstacles.spawn_chance"},
		{"zero threshold", func(c *Config) { c.Collision.Threshold = 0 }, "collision.threshold"},
		{"flat fov", func(c *Config) { c.Camera.FOV = 0 }, "camera.fov"},
		{"negative swipe", func(c *Config) { c.Input.SwipeThreshold = -1 }, "input.swipe_threshold"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("obstacles:\n  spawn_chance: 2\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse should reject invalid values, got %v", err)
	}

	if _, err := Parse([]byte("player: [not, a, map]")); err == nil {
		t.Error("Parse should reject malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dodge.yaml")
	if err := os.WriteFile(path, []byte("player:\n  step: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Step != 0.5 {
		t.Errorf("step = %g, expected 0.5", cfg.Player.Step)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "spawn_chance: 0.01") {
		t.Errorf("marshalled YAML should use snake_case keys, got:\n%s", data)
	}
}
