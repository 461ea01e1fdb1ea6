package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			StartX: 0,
			Y:      0,
			Z:      5,
			Step:   0.1,
			MinX:   -3,
			MaxX:   3,
		},
		Obstacles: ObstacleConfig{
			SpawnZ:      -10,
			RetireZ:     10,
			Y:           0.5,
			MinX:        -3,
			MaxX:        3,
			Speed:       0.1,
			SpawnChance: 0.01,
		},
		Collision: CollisionConfig{
			Threshold: 1.0,
		},
		Camera: CameraConfig{
			X:    0,
			Y:    2,
			Z:    10,
			FOV:  75,
			Near: 0.1,
			Far:  1000,
		},
		Input: InputConfig{
			SwipeThreshold: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
