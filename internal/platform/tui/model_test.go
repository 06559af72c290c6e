package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// scriptedGame replays queued step results.
type scriptedGame struct {
	resets  int
	inputs  []core.InputFrame
	results []core.StepResult
	state   core.GameState
}

func (g *scriptedGame) ID() string                   { return "scripted" }
func (g *scriptedGame) Title() string                { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState        { return g.state }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelMergesKeysUntilTick(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionUp) {
		t.Errorf("first frame = %v, expected left and up", g.inputs[0].Actions)
	}
	if !g.inputs[1].Empty() {
		t.Errorf("second frame = %v, expected empty", g.inputs[1].Actions)
	}
}

func TestModelSavesRunOnRunEnded(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 700, Level: 3, Lives: 0}},
		{
			State:  core.GameState{Score: 0, Level: 1, Lives: 3},
			Events: []core.Event{{Kind: core.EventRunEnded, Value: 720}},
		},
	}}
	m := NewModel(g, testConfig(), Options{Store: store, Player: "alice"})

	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 720 || got.Level != 3 || got.Player != "alice" {
		t.Errorf("saved %+v, expected 720 on level 3 by alice", got)
	}
}

func TestModelQuitKeySavesCurrentRun(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 150, Level: 1, Lives: 3}},
	}}
	m := NewModel(g, testConfig(), Options{Store: store})

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	high, _ := store.HighScore("scripted")
	if high != 150 {
		t.Errorf("high score = %d, expected 150", high)
	}
}

func TestModelQuitStateStops(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Quit: true}},
	}}
	m := NewModel(g, testConfig(), Options{})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestModelErrorStops(t *testing.T) {
	boom := errors.New("boom")
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{GameOver: true}, Err: boom},
	}}
	m := NewModel(g, testConfig(), Options{})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, expected boom", m.Err())
	}
}

func TestModelObserver(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 10}, Events: []core.Event{{Kind: core.EventPellet, Value: 10}}},
	}}

	var seen []core.StepResult
	obs := ObserverFunc(func(_ registry.Game, r core.StepResult) {
		seen = append(seen, r)
	})
	m := NewModel(g, testConfig(), Options{Observer: obs})

	update(t, m, TickMsg{})

	if len(seen) != 1 || !seen[0].Has(core.EventPellet) {
		t.Errorf("observer saw %v", seen)
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testConfig(), Options{})

	if m.screen.Height() != 9 {
		t.Errorf("game rows = %d, expected 9 with help footer", m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should contain the rendered game")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.screen.Width() != 50 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d after resize, expected 50x19", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize should not reset the game")
	}

	bare := NewModel(g, testConfig(), Options{NoHelp: true})
	if bare.screen.Height() != 10 {
		t.Errorf("game rows = %d, expected 10 without help", bare.screen.Height())
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorPink)
	s.DrawTextColor(2, 0, "cd", core.Color(200))

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
