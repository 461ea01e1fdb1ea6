package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Sessions use this to size the render surface and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has reached its terminal state
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only for the tick on which the terminal transition happened.
	Ended bool
	// FinalScore is the frozen score, valid when Ended is true.
	FinalScore int
}
