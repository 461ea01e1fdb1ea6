package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/input"
)

// helpHeight is the number of rows reserved under the play area for the legend.
const helpHeight = 1

// Game is the contract a session must fulfil to be hosted by a Model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Input(a core.Action)
	Step() core.StepResult
	Render(dst *core.Screen)
	Resize(width, height int)
	State() core.GameState
}

// ModelOption customises a Model.
type ModelOption func(*Model)

// WithSwipeThreshold sets how many columns a mouse drag must cover to steer.
func WithSwipeThreshold(cols int) ModelOption {
	return func(m *Model) {
		m.swipe.Threshold = cols
	}
}

// WithModelLogger sets the logger for session events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// WithSeedSource sets the seed generator used for every new session.
func WithSeedSource(f func() int64) ModelOption {
	return func(m *Model) {
		m.seed = f
	}
}

// Model is the Bubble Tea model running one dodge session at a time.
type Model struct {
	game    Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	swipe   *input.SwipeDetector
	logger  *log.Logger
	shotDir string
	seed    func() int64

	gen      uint64 // Session generation, bumped on every restart
	over     bool
	counter  *scoreCounter
	status   string
	quitting bool
}

// NewModel creates a model hosting game on a cfg.ScreenW x cfg.ScreenH
// terminal. A zero seed is replaced by one taken from the seed source.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		swipe:  input.NewSwipeDetector(4),
		logger: log.New(io.Discard),
		seed: func() int64 {
			return time.Now().UnixNano()
		},
	}
	for _, opt := range opts {
		opt(&m)
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = m.seed()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	m.config = cfg
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the session and its tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case bannerMsg:
		return m.handleBanner(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. While the banner is up any key
// except quit starts a new session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.over {
		return m.restart()
	}

	switch {
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case action.IsMovement():
		m.game.Input(action)
	}
	return m, nil
}

// handleMouse turns a left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(msg.X)
		}
	case tea.MouseActionRelease:
		if action, ok := m.swipe.End(msg.X); ok && !m.over {
			m.game.Input(action)
		}
	}
	return m, nil
}

// handleResize resizes the play area. The running session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	playH := max(msg.Height-helpHeight, 1)

	m.config.ScreenW = msg.Width
	m.config.ScreenH = playH
	m.screen.Resize(msg.Width, playH)
	m.game.Resize(msg.Width, playH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick steps the session. The next tick is scheduled only while the
// session is running, so the loop stops on its own at game over.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.over {
		return m, nil
	}

	result := m.game.Step()
	if result.Ended {
		m.over = true
		m.counter = newScoreCounter(result.FinalScore)
		m.swipe.Cancel()
		m.logger.Info("game over", "game", m.game.ID(), "score", result.FinalScore)
		if m.counter.Settled() {
			return m, nil
		}
		return m, bannerCmd(m.gen)
	}
	if result.State.GameOver {
		return m, nil
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleBanner advances the score count-up on the game over banner.
func (m Model) handleBanner(msg bannerMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.over || m.counter == nil {
		return m, nil
	}
	if m.counter.Advance(float32(bannerFrame.Seconds())) {
		return m, bannerCmd(m.gen)
	}
	return m, nil
}

// restart throws the finished session away and starts a new one with a
// fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen++
	m.config.Seed = m.seed()
	m.game.Reset(m.config)
	m.over = false
	m.counter = nil
	m.status = ""
	m.swipe.Cancel()

	m.logger.Info("session restarted", "game", m.game.ID(), "seed", m.config.Seed)
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return
		}
		dir = filepath.Join(home, ".dodge", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	m.status = "saved " + filepath.Base(path)
	m.logger.Debug("screenshot saved", "path", path)
}

var (
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// View renders the play area and the key legend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.over && m.counter != nil {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center,
			renderBanner(m.counter.Value()))
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	footer := legendStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return body + "\n" + footer
}

// Over reports whether the hosted session has ended.
func (m Model) Over() bool {
	return m.over
}

// Run starts a Bubble Tea program hosting game in the current terminal.
func Run(game Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
