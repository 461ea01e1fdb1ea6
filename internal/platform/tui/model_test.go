package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// fakeGame scripts Step results and records what the model asked of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	inputs  []core.Action
	steps   int
	resizes [][2]int
	endAt   int // Step number that ends the session, 0 for never
	score   int
	over    bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.steps = 0
	g.over = false
}

func (g *fakeGame) Input(a core.Action) {
	g.inputs = append(g.inputs, a)
}

func (g *fakeGame) Step() core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if g.steps == g.endAt {
		g.over = true
		return core.StepResult{State: g.State(), Ended: true, FinalScore: g.score}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake frame")
}

func (g *fakeGame) Resize(w, h int) {
	g.resizes = append(g.resizes, [2]int{w, h})
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func newTestModel(g *fakeGame, opts ...ModelOption) Model {
	seeds := int64(100)
	opts = append([]ModelOption{WithSeedSource(func() int64 {
		seeds++
		return seeds
	})}, opts...)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, opts...)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelInitResetsWithSeed(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g)

	if len(g.resets) != 1 {
		t.Fatalf("Init reset %d times", len(g.resets))
	}
	cfg := g.resets[0]
	if cfg.Seed != 101 {
		t.Errorf("seed = %d, expected one from the seed source", cfg.Seed)
	}
	if cfg.ScreenW != 40 || cfg.ScreenH != 12-helpHeight {
		t.Errorf("play area = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestModelTickSchedulesNext(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
	if cmd == nil {
		t.Error("running session did not schedule another tick")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	_, cmd := update(t, m, TickMsg{Gen: 7})
	if g.steps != 0 || cmd != nil {
		t.Errorf("stale tick stepped=%d cmd=%v", g.steps, cmd != nil)
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	g := &fakeGame{endAt: 2, score: 9}
	m := newTestModel(g)

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, TickMsg{})
	if !m.Over() {
		t.Fatal("model did not notice the session ended")
	}
	if cmd == nil {
		t.Fatal("expected the banner animation to start")
	}
	if _, ok := cmd().(bannerMsg); !ok {
		t.Error("game over scheduled something other than the banner animation")
	}

	_, cmd = update(t, m, TickMsg{})
	if g.steps != 2 || cmd != nil {
		t.Errorf("tick after game over stepped=%d scheduled=%v", g.steps, cmd != nil)
	}
}

func TestModelBannerCountsUp(t *testing.T) {
	g := &fakeGame{endAt: 1, score: 30}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})

	var cmd tea.Cmd
	for i := 0; i < 200; i++ {
		m, cmd = update(t, m, bannerMsg{})
		if cmd == nil {
			break
		}
	}
	if cmd != nil {
		t.Fatal("banner animation never settled")
	}

	view := m.View()
	if !strings.Contains(view, "GAME OVER") || !strings.Contains(view, "Score: 30") {
		t.Errorf("banner view:\n%s", view)
	}
}

func TestModelZeroScoreBanner(t *testing.T) {
	g := &fakeGame{endAt: 1}
	m := newTestModel(g)

	m, cmd := update(t, m, TickMsg{})
	if !m.Over() || cmd != nil {
		t.Errorf("over=%v animation=%v, expected a settled banner", m.Over(), cmd != nil)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("banner does not show the zero score")
	}
}

func TestModelAnyKeyRestarts(t *testing.T) {
	g := &fakeGame{endAt: 1, score: 3}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('x'))
	if m.Over() {
		t.Fatal("model still over after restart")
	}
	if len(g.resets) != 2 {
		t.Fatalf("resets = %d, expected a full session reset", len(g.resets))
	}
	if g.resets[1].Seed == g.resets[0].Seed {
		t.Error("restart reused the previous seed")
	}
	if cmd == nil {
		t.Fatal("restart did not resume ticking")
	}
	tick, ok := cmd().(TickMsg)
	if !ok || tick.Gen != 1 {
		t.Errorf("restart scheduled %#v, expected a tick of generation 1", tick)
	}

	// A tick left over from the finished session must not step the new one
	_, _ = update(t, m, TickMsg{Gen: 0})
	if g.steps != 0 {
		t.Errorf("stale tick stepped the new session")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		over bool
	}{
		{"while running", false},
		{"on the banner", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			if tt.over {
				g.endAt = 1
			}
			m := newTestModel(g)
			m, _ = update(t, m, TickMsg{})

			m, cmd := update(t, m, runeKey('q'))
			if cmd == nil {
				t.Fatal("quit returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not quit")
			}
			if m.View() != "" {
				t.Error("quitting model still renders")
			}
			if len(g.resets) != 1 {
				t.Error("quit reset the session")
			}
		})
	}
}

func TestModelMovementKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('d'))
	_, _ = update(t, m, runeKey('x'))

	want := []core.Action{core.ActionLeft, core.ActionRight}
	if len(g.inputs) != len(want) {
		t.Fatalf("inputs = %v, expected %v", g.inputs, want)
	}
	for i := range want {
		if g.inputs[i] != want[i] {
			t.Errorf("input %d = %s, expected %s", i, g.inputs[i], want[i])
		}
	}
}

func TestModelMouseSwipe(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		want    core.Action
		steered bool
	}{
		{"swipe right", 10, 20, core.ActionRight, true},
		{"swipe left", 20, 10, core.ActionLeft, true},
		{"short drag", 10, 13, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			m := newTestModel(g, WithSwipeThreshold(4))

			m, _ = update(t, m, tea.MouseMsg{X: tt.from, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			_, _ = update(t, m, tea.MouseMsg{X: tt.to, Action: tea.MouseActionRelease})

			if !tt.steered {
				if len(g.inputs) != 0 {
					t.Errorf("short drag produced %v", g.inputs)
				}
				return
			}
			if len(g.inputs) != 1 || g.inputs[0] != tt.want {
				t.Errorf("inputs = %v, expected [%s]", g.inputs, tt.want)
			}
		})
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 1 {
		t.Error("resize reset the session")
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 30 - helpHeight} {
		t.Errorf("resizes = %v", g.resizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelHelpToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? did not expand the legend")
	}
	if !strings.Contains(m.View(), "screenshot") {
		t.Error("expanded legend lacks the screenshot binding")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? did not collapse the legend")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(g, WithScreenshotDir(dir))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read screenshot dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("screenshots = %d, expected 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("screenshot name %q", entries[0].Name())
	}
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "fake frame") {
		t.Error("screenshot does not contain the frame")
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("no confirmation shown after the screenshot")
	}
}

func TestModelViewShowsFrameAndLegend(t *testing.T) {
	m := newTestModel(&fakeGame{})
	view := m.View()
	if !strings.Contains(view, "fake frame") {
		t.Error("view lacks the game frame")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view lacks the key legend")
	}
}
