package dodge

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// fakePort records every command issued to the render surface.
type fakePort struct {
	next    core.Handle
	live    map[core.Handle]core.Vec3
	created int
	removed int
	renders int
	resizes int
	aspect  float64
}

func newFakePort() *fakePort {
	return &fakePort{live: make(map[core.Handle]core.Vec3)}
}

func (p *fakePort) CreateEntity(_ core.Shape, _ core.Material, pos core.Vec3) core.Handle {
	p.next++
	p.created++
	p.live[p.next] = pos
	return p.next
}

func (p *fakePort) MoveEntity(h core.Handle, pos core.Vec3) {
	if _, ok := p.live[h]; ok {
		p.live[h] = pos
	}
}

func (p *fakePort) RemoveEntity(h core.Handle) {
	if _, ok := p.live[h]; ok {
		p.removed++
		delete(p.live, h)
	}
}

func (p *fakePort) Render() {
	p.renders++
}

func (p *fakePort) Resize(aspect float64, _, _ int) {
	p.resizes++
	p.aspect = aspect
}

// countingNotifier records terminal notifications.
type countingNotifier struct {
	calls  int
	scores []int
}

func (n *countingNotifier) GameOver(finalScore int) {
	n.calls++
	n.scores = append(n.scores, finalScore)
}

// testRig is a loop wired to fakes, with spawning disabled unless changed.
type testRig struct {
	cfg       config.Config
	state     *State
	obstacles *Registry
	port      *fakePort
	notifier  *countingNotifier
	loop      *Loop
}

func newTestRig(mutate func(*config.Config)) *testRig {
	cfg := config.Default()
	cfg.Obstacles.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}

	rng := rand.New(rand.NewSource(7))
	port := newFakePort()
	notifier := &countingNotifier{}
	state := NewState(core.V3(cfg.Player.StartX, cfg.Player.Y, cfg.Player.Z))
	player := port.CreateEntity(playerShape, playerMaterial, state.Player())
	obstacles := NewRegistry(rng, port, cfg.Obstacles)

	loop := NewLoop(LoopDeps{
		State:     state,
		Obstacles: obstacles,
		Port:      port,
		Notifier:  notifier,
		Rand:      rng,
		Logger:    log.New(io.Discard),
		Config:    cfg,
		Player:    player,
	})

	return &testRig{
		cfg:       cfg,
		state:     state,
		obstacles: obstacles,
		port:      port,
		notifier:  notifier,
		loop:      loop,
	}
}

// newTestConfig returns the default configuration with spawning disabled.
func newTestConfig() config.Config {
	cfg := config.Default()
	cfg.Obstacles.SpawnChance = 0
	return cfg
}

func fakePortFactory(scene.Camera, int, int) RenderPort {
	return newFakePort()
}
