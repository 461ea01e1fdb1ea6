package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestStateIntentMailbox(t *testing.T) {
	s := NewState(core.V3(0, 0, 5))

	if s.TakeIntent() != IntentNone {
		t.Error("fresh state should have no pending intent")
	}

	// Last writer wins between ticks
	s.SetIntent(IntentLeft)
	s.SetIntent(IntentRight)
	if got := s.TakeIntent(); got != IntentRight {
		t.Errorf("TakeIntent() = %s, expected right", got)
	}

	// Draining empties the slot
	if got := s.TakeIntent(); got != IntentNone {
		t.Errorf("second TakeIntent() = %s, expected none", got)
	}
}

func TestStateScore(t *testing.T) {
	s := NewState(core.V3(0, 0, 5))
	s.AddScore(2)
	s.AddScore(-5)
	s.AddScore(0)
	s.AddScore(1)

	if s.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", s.Score())
	}
}

func TestStateMovePlayerSaturates(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		dx       float64
		expected float64
	}{
		{"inside", 0, 0.1, 0.1},
		{"past right edge", 2.95, 0.1, 3},
		{"past left edge", -2.95, -0.1, -3},
		{"at right edge", 3, 0.1, 3},
		{"huge jump", 0, -100, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(core.V3(tc.start, 0, 5))
			s.MovePlayer(tc.dx, -3, 3)
			if got := s.Player().X; got != tc.expected {
				t.Errorf("MovePlayer(%v) from %v = %v, expected %v", tc.dx, tc.start, got, tc.expected)
			}
		})
	}
}

func TestStateEndOnce(t *testing.T) {
	s := NewState(core.V3(0, 0, 5))
	s.AddScore(4)
	s.SetIntent(IntentLeft)

	if !s.End() {
		t.Fatal("first End() should perform the transition")
	}
	if s.End() {
		t.Error("second End() should report no transition")
	}
	if s.Phase() != PhaseOver || s.Running() {
		t.Errorf("phase = %s, expected over", s.Phase())
	}
	if s.Pending() != IntentNone {
		t.Error("End should drop the pending intent")
	}
}

func TestStateFrozenWhenOver(t *testing.T) {
	s := NewState(core.V3(1, 0, 5))
	s.AddScore(4)
	s.End()

	s.AddScore(10)
	s.SetIntent(IntentRight)
	s.MovePlayer(1, -3, 3)

	if s.Score() != 4 {
		t.Errorf("score changed after game over: %d", s.Score())
	}
	if s.Pending() != IntentNone || s.TakeIntent() != IntentNone {
		t.Error("intents should be ignored after game over")
	}
	if s.Player().X != 1 {
		t.Errorf("player moved after game over: %v", s.Player().X)
	}
}

func TestIntentFor(t *testing.T) {
	tests := []struct {
		action core.Action
		intent Intent
	}{
		{core.ActionLeft, IntentLeft},
		{core.ActionRight, IntentRight},
		{core.ActionRestart, IntentNone},
		{core.ActionQuit, IntentNone},
	}
	for _, tc := range tests {
		if got := intentFor(tc.action); got != tc.intent {
			t.Errorf("intentFor(%s) = %s, expected %s", tc.action, got, tc.intent)
		}
	}
}
