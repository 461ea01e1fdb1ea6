package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// DefaultHitThreshold is the collision distance used by the classic game.
const DefaultHitThreshold = 1.0

// IsColliding reports whether the player and an obstacle are closer than
// threshold. The comparison is strict: touching at exactly threshold is a miss.
func IsColliding(player, obstacle core.Vec3, threshold float64) bool {
	return player.DistanceTo(obstacle) < threshold
}
