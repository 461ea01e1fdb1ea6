// Package config provides YAML-based configuration loading for the dodge game.
package config

// Config contains all tunables for a dodge session.
type Config struct {
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
}

// PlayerConfig defines where the player cube lives and how far one intent moves it.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Step   float64 `yaml:"step"` // Lateral distance per consumed intent
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
}

// ObstacleConfig defines obstacle spawning, movement and retirement.
type ObstacleConfig struct {
	SpawnZ      float64 `yaml:"spawn_z"`
	RetireZ     float64 `yaml:"retire_z"` // Obstacles with z beyond this are retired and scored
	Y           float64 `yaml:"y"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	Speed       float64 `yaml:"speed"`        // Depth advanced per tick
	SpawnChance float64 `yaml:"spawn_chance"` // Bernoulli probability per tick
}

// CollisionConfig defines the hit test.
type CollisionConfig struct {
	Threshold float64 `yaml:"threshold"` // Hit when distance is strictly below this
}

// CameraConfig mirrors a perspective camera looking down -Z.
type CameraConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	FOV  float64 `yaml:"fov"` // Vertical field of view in degrees
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// InputConfig defines gesture recognition for the input port.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Columns a drag must cover to count as a swipe
}
