// Package dodge implements the endless-runner core: the player slides left
// and right on a ground plane while cubes approach along the depth axis.
// Every cube that gets past the player scores a point; touching one ends
// the session.
package dodge

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// PortFactory builds the render surface for a new session.
type PortFactory func(cam scene.Camera, width, height int) RenderPort

// drawer is implemented by render ports that can rasterize into a screen.
type drawer interface {
	Draw(dst *core.Screen)
}

// Option customises a Game.
type Option func(*Game)

// WithLogger sets the logger used by the loop.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithPortFactory replaces the terminal scene with another render port.
func WithPortFactory(f PortFactory) Option {
	return func(g *Game) {
		g.newPort = f
	}
}

// WithAutopilot lets a bot feed intents every tick.
func WithAutopilot(a Autopilot) Option {
	return func(g *Game) {
		g.autopilot = &a
	}
}

// Game is one play session: it wires state, obstacles and loop around a
// render port. Reset throws everything away and starts from scratch.
type Game struct {
	cfg       config.Config
	runtime   core.RuntimeConfig
	logger    *log.Logger
	newPort   PortFactory
	autopilot *Autopilot

	port      RenderPort
	state     *State
	obstacles *Registry
	loop      *Loop

	ended      bool // Terminal notification pending for the next StepResult
	finalScore int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		newPort: func(cam scene.Camera, width, height int) RenderPort {
			return scene.New(cam, width, height)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset builds a brand new session on a fresh render surface.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cc := g.cfg.Camera
	cam := scene.Camera{
		Pos:  core.V3(cc.X, cc.Y, cc.Z),
		FOV:  cc.FOV,
		Near: cc.Near,
		Far:  cc.Far,
	}
	g.port = g.newPort(cam, runtime.ScreenW, runtime.ScreenH)

	pc := g.cfg.Player
	g.state = NewState(core.V3(pc.StartX, pc.Y, pc.Z))

	g.port.CreateEntity(groundShape, groundMaterial, core.V3(0, 0, 0))
	player := g.port.CreateEntity(playerShape, playerMaterial, g.state.Player())

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.obstacles = NewRegistry(rng, g.port, g.cfg.Obstacles)
	g.ended = false
	g.finalScore = 0

	g.loop = NewLoop(LoopDeps{
		State:     g.state,
		Obstacles: g.obstacles,
		Port:      g.port,
		Notifier:  NotifierFunc(g.onGameOver),
		Rand:      rng,
		Logger:    g.logger,
		Config:    g.cfg,
		Player:    player,
	})

	g.port.Render()
	g.logger.Debug("session reset", "seed", runtime.Seed, "width", runtime.ScreenW, "height", runtime.ScreenH)
}

// Input delivers an action from the input port. Movement actions are
// buffered until the next tick; everything else is ignored here.
func (g *Game) Input(a core.Action) {
	if g.state == nil {
		return
	}
	if i := intentFor(a); i != IntentNone {
		g.state.SetIntent(i)
	}
}

// Step advances the session by one tick.
func (g *Game) Step() core.StepResult {
	if g.autopilot != nil && g.state.Running() {
		pc := g.cfg.Player
		if i := g.autopilot.Decide(g.state.Player(), g.obstacles.All(), pc.MinX, pc.MaxX); i != IntentNone {
			g.state.SetIntent(i)
		}
	}

	g.loop.Tick()

	result := core.StepResult{State: g.State()}
	if g.ended {
		result.Ended = true
		result.FinalScore = g.finalScore
		g.ended = false
	}
	return result
}

// onGameOver receives the loop's terminal notification.
func (g *Game) onGameOver(finalScore int) {
	g.ended = true
	g.finalScore = finalScore
}

// Resize adapts the render surface to a new terminal size without
// touching the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.port != nil {
		g.port.Resize(scene.AspectFor(width, height), width, height)
	}
}

// Render draws the last rendered frame and the score line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if d, ok := g.port.(drawer); ok {
		d.Draw(dst)
	}

	scoreText := fmt.Sprintf(" Score: %d ", g.state.Score())
	dst.DrawTextColored(2, 0, scoreText, core.ColorWhite)

	if g.autopilot != nil {
		label := " AUTO "
		dst.DrawTextColored(dst.Width()-len(label)-2, 0, label, core.ColorYellow)
	}
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: !g.state.Running(),
	}
}
