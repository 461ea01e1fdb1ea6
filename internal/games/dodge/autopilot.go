package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Autopilot is a simple bot that steers away from the nearest obstacle
// heading for the player. It only ever produces intents, so it goes through
// the same mailbox as human input.
type Autopilot struct {
	Lookahead    float64 // Depth window in front of the player that counts as a threat
	DangerRadius float64 // Lateral distance under which an obstacle is a threat
}

// DefaultAutopilot returns an autopilot tuned for the default speeds.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		Lookahead:    4.0,
		DangerRadius: 1.2,
	}
}

// Decide picks the intent for the next tick.
func (a Autopilot) Decide(player core.Vec3, obstacles []Obstacle, minX, maxX float64) Intent {
	var (
		threat *Obstacle
		best   = math.Inf(-1)
	)
	for i := range obstacles {
		o := &obstacles[i]
		if o.Pos.Z > player.Z+0.5 || o.Pos.Z < player.Z-a.Lookahead {
			continue
		}
		if math.Abs(o.Pos.X-player.X) >= a.DangerRadius {
			continue
		}
		if o.Pos.Z > best {
			best = o.Pos.Z
			threat = o
		}
	}
	if threat == nil {
		return IntentNone
	}

	dx := player.X - threat.Pos.X
	switch {
	case dx > 0:
		if player.X >= maxX {
			return IntentLeft
		}
		return IntentRight
	case dx < 0:
		if player.X <= minX {
			return IntentRight
		}
		return IntentLeft
	default:
		// Dead centre: head for the side with more room
		if player.X-minX < maxX-player.X {
			return IntentRight
		}
		return IntentLeft
	}
}
