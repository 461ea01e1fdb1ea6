package dodge

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// TickReport summarises one call to Loop.Tick.
type TickReport struct {
	Tick     uint64 // Number of ticks executed so far
	Running  bool   // Whether the host should schedule another tick
	Collided bool   // A collision ended the session on this tick
	Retired  int    // Obstacles retired (and scored) on this tick
	Spawned  bool   // An obstacle was spawned on this tick
	Rendered bool   // A render call was issued on this tick
}

// LoopDeps holds everything a Loop drives.
type LoopDeps struct {
	State     *State
	Obstacles *Registry
	Port      RenderPort
	Notifier  Notifier
	Rand      *rand.Rand
	Logger    *log.Logger
	Config    config.Config
	Player    core.Handle // Render handle of the player entity
}

// Loop is the per-frame orchestrator. It never schedules itself: the host
// calls Tick once per frame for as long as the previous report says Running.
type Loop struct {
	state     *State
	obstacles *Registry
	port      RenderPort
	notifier  Notifier
	rng       *rand.Rand
	logger    *log.Logger
	cfg       config.Config
	player    core.Handle
	tick      uint64
}

// NewLoop creates a loop over the given dependencies.
func NewLoop(deps LoopDeps) *Loop {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		state:     deps.State,
		obstacles: deps.Obstacles,
		port:      deps.Port,
		notifier:  deps.Notifier,
		rng:       deps.Rand,
		logger:    logger,
		cfg:       deps.Config,
		player:    deps.Player,
	}
}

// Tick runs one frame of the game:
//
//  1. consume the pending intent and move the player (clamped)
//  2. advance every obstacle
//  3. test the player against a snapshot of the obstacles; the first hit
//     ends the session and skips the rest of the tick
//  4. retire obstacles past the retire depth, one point each
//  5. spawn an obstacle with the configured per-tick probability
//  6. render
//  7. report Running so the host schedules the next tick
//
// After the session has ended Tick does nothing.
func (l *Loop) Tick() TickReport {
	if !l.state.Running() {
		return TickReport{Tick: l.tick}
	}
	l.tick++
	report := TickReport{Tick: l.tick}

	pc, oc := l.cfg.Player, l.cfg.Obstacles

	switch l.state.TakeIntent() {
	case IntentLeft:
		l.state.MovePlayer(-pc.Step, pc.MinX, pc.MaxX)
	case IntentRight:
		l.state.MovePlayer(pc.Step, pc.MinX, pc.MaxX)
	}

	l.obstacles.AdvanceAll(oc.Speed)

	player := l.state.Player()
	for _, o := range l.obstacles.All() {
		if IsColliding(player, o.Pos, l.cfg.Collision.Threshold) {
			l.finish(o)
			report.Collided = true
			return report
		}
	}

	retired := l.obstacles.RetireWhere(BeyondZ(oc.RetireZ))
	if len(retired) > 0 {
		l.state.AddScore(len(retired))
		l.logger.Debug("obstacles retired", "count", len(retired), "score", l.state.Score())
	}
	report.Retired = len(retired)

	if l.rng.Float64() < oc.SpawnChance {
		id := l.obstacles.Spawn()
		report.Spawned = id != 0
		l.logger.Debug("obstacle spawned", "id", id, "live", l.obstacles.Len())
	}

	l.port.MoveEntity(l.player, player)
	l.obstacles.syncPort()
	l.port.Render()
	report.Rendered = true

	report.Running = l.state.Running()
	return report
}

// Ticks returns the number of ticks executed.
func (l *Loop) Ticks() uint64 {
	return l.tick
}

// finish performs the terminal transition and notifies the presentation layer.
func (l *Loop) finish(hit Obstacle) {
	if !l.state.End() {
		return
	}
	l.obstacles.Seal()
	l.logger.Info("game over",
		"score", l.state.Score(),
		"tick", l.tick,
		"obstacle", hit.ID,
		"player_x", l.state.Player().X,
	)
	if l.notifier != nil {
		l.notifier.GameOver(l.state.Score())
	}
}
