package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ObstacleID identifies an obstacle for its whole life. Zero means "none".
type ObstacleID uint64

// Obstacle is a cube travelling towards the player along +Z.
type Obstacle struct {
	ID     ObstacleID
	Pos    core.Vec3
	handle core.Handle
}

// Registry owns the live obstacles: it spawns, advances and retires them and
// keeps the render port in sync with their membership.
type Registry struct {
	obstacles []Obstacle
	nextID    ObstacleID
	rng       *rand.Rand
	port      RenderPort
	cfg       config.ObstacleConfig
	sealed    bool
}

// NewRegistry creates an empty registry. Spawn positions are drawn from rng.
func NewRegistry(rng *rand.Rand, port RenderPort, cfg config.ObstacleConfig) *Registry {
	return &Registry{
		obstacles: make([]Obstacle, 0, 32),
		rng:       rng,
		port:      port,
		cfg:       cfg,
	}
}

// Spawn creates one obstacle at the spawn depth with x drawn uniformly from
// the configured lateral range. Returns 0 once the registry is sealed.
func (r *Registry) Spawn() ObstacleID {
	if r.sealed {
		return 0
	}
	x := r.cfg.MinX + r.rng.Float64()*(r.cfg.MaxX-r.cfg.MinX)
	x = core.ClampF(x, r.cfg.MinX, r.cfg.MaxX)
	return r.Inject(core.V3(x, r.cfg.Y, r.cfg.SpawnZ))
}

// Inject places an obstacle at an explicit position.
// Returns 0 once the registry is sealed.
func (r *Registry) Inject(pos core.Vec3) ObstacleID {
	if r.sealed {
		return 0
	}
	r.nextID++
	o := Obstacle{
		ID:     r.nextID,
		Pos:    pos,
		handle: r.port.CreateEntity(obstacleShape, obstacleMaterial, pos),
	}
	r.obstacles = append(r.obstacles, o)
	return o.ID
}

// AdvanceAll moves every live obstacle speed units along +Z.
func (r *Registry) AdvanceAll(speed float64) {
	if r.sealed {
		return
	}
	for i := range r.obstacles {
		r.obstacles[i].Pos.Z += speed
	}
}

// RetireWhere removes and returns every obstacle matching pred, unregistering
// each from the render port. Each obstacle is tested exactly once; survivors
// keep their relative order.
func (r *Registry) RetireWhere(pred func(Obstacle) bool) []Obstacle {
	if r.sealed {
		return nil
	}

	var removed []Obstacle
	kept := r.obstacles[:0]
	for _, o := range r.obstacles {
		if pred(o) {
			removed = append(removed, o)
		} else {
			kept = append(kept, o)
		}
	}
	// Zero the stale tail so the backing array holds no retired entries
	clear(r.obstacles[len(kept):])
	r.obstacles = kept

	for _, o := range removed {
		r.port.RemoveEntity(o.handle)
	}
	return removed
}

// BeyondZ matches obstacles whose depth is strictly greater than z.
func BeyondZ(z float64) func(Obstacle) bool {
	return func(o Obstacle) bool {
		return o.Pos.Z > z
	}
}

// All returns a copy of the live obstacles in spawn order.
func (r *Registry) All() []Obstacle {
	out := make([]Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Seal freezes the registry. Every later mutation is a no-op.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry has been frozen.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// syncPort pushes every obstacle position to the render port.
func (r *Registry) syncPort() {
	for _, o := range r.obstacles {
		r.port.MoveEntity(o.handle, o.Pos)
	}
}
