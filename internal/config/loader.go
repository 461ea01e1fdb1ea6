package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the dodge configuration.
// Search order: customPath -> ~/.dodge/config.yaml -> ./configs/dodge.yaml -> embedded default.
// Files found on the search path are layered over the defaults, so a partial
// file only needs to mention the values it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that every range is ordered and every rate is usable.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	p, o := c.Player, c.Obstacles
	check(p.MinX <= p.MaxX, "player.min_x (%g) > player.max_x (%g)", p.MinX, p.MaxX)
	check(p.StartX >= p.MinX && p.StartX <= p.MaxX, "player.start_x (%g) outside [%g, %g]", p.StartX, p.MinX, p.MaxX)
	check(p.Step > 0, "player.step must be positive, got %g", p.Step)
	check(o.MinX <= o.MaxX, "obstacles.min_x (%g) > obstacles.max_x (%g)", o.MinX, o.MaxX)
	check(o.SpawnZ < o.RetireZ, "obstacles.spawn_z (%g) must be below retire_z (%g)", o.SpawnZ, o.RetireZ)
	check(o.Speed > 0, "obstacles.speed must be positive, got %g", o.Speed)
	check(o.SpawnChance >= 0 && o.SpawnChance <= 1, "obstacles.spawn_chance (%g) outside [0, 1]", o.SpawnChance)
	check(c.Collision.Threshold > 0, "collision.threshold must be positive, got %g", c.Collision.Threshold)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov (%g) outside (0, 180)", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far, "camera near/far (%g, %g) not ordered", c.Camera.Near, c.Camera.Far)
	check(c.Input.SwipeThreshold >= 0, "input.swipe_threshold must not be negative, got %d", c.Input.SwipeThreshold)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", filename)
}
