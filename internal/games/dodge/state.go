package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseRunning Phase = iota // Initial phase
	PhaseOver                 // Terminal phase, entered exactly once
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Intent is a buffered directional request from the input port.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "unknown"
	}
}

// intentFor maps an input action to an intent.
func intentFor(a core.Action) Intent {
	switch a {
	case core.ActionLeft:
		return IntentLeft
	case core.ActionRight:
		return IntentRight
	default:
		return IntentNone
	}
}

// State is the single source of truth for a session's phase, score,
// pending intent and player position. Every mutator is a no-op once the
// phase is Over.
type State struct {
	phase   Phase
	score   int
	pending Intent
	player  core.Vec3
}

// NewState creates a running state with the player at the given position.
func NewState(player core.Vec3) *State {
	return &State{phase: PhaseRunning, player: player}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Running reports whether the session has not ended yet.
func (s *State) Running() bool {
	return s.phase == PhaseRunning
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Player returns the player position.
func (s *State) Player() core.Vec3 {
	return s.player
}

// Pending returns the buffered intent without consuming it.
func (s *State) Pending() Intent {
	return s.pending
}

// SetIntent buffers an intent. The slot holds one intent; a newer intent
// replaces an older one that has not been consumed yet.
func (s *State) SetIntent(i Intent) {
	if s.phase != PhaseRunning {
		return
	}
	s.pending = i
}

// TakeIntent returns the buffered intent and empties the slot.
func (s *State) TakeIntent() Intent {
	if s.phase != PhaseRunning {
		return IntentNone
	}
	i := s.pending
	s.pending = IntentNone
	return i
}

// AddScore increases the score by n. Negative n is ignored.
func (s *State) AddScore(n int) {
	if s.phase != PhaseRunning || n <= 0 {
		return
	}
	s.score += n
}

// MovePlayer shifts the player laterally by dx, saturating at [minX, maxX].
func (s *State) MovePlayer(dx, minX, maxX float64) {
	if s.phase != PhaseRunning {
		return
	}
	s.player.X = core.ClampF(s.player.X+dx, minX, maxX)
}

// End moves the session to Over. It returns true only for the call that
// performed the transition.
func (s *State) End() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.phase = PhaseOver
	s.pending = IntentNone
	return true
}
