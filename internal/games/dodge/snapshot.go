package dodge

// Snapshot captures the session state for determinism testing and the
// headless simulator.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	PlayerX   float64
	Obstacles int
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return Snapshot{
		Tick:      g.loop.Ticks(),
		Phase:     g.state.Phase(),
		Score:     g.state.Score(),
		PlayerX:   g.state.Player().X,
		Obstacles: g.obstacles.Len(),
	}
}
