package pacman

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  60,
		ScreenH:  33,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create() failed: %v", err)
	}
	if g.Title() != "Pac-Man" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	state := g.State()
	if state.Score != 0 || state.Lives != 3 || state.Level != 1 {
		t.Errorf("State() = %+v, expected fresh run", state)
	}
	if state.GameOver || state.Paused || state.Quit {
		t.Errorf("State() = %+v, expected running", state)
	}
}

func TestGameQuitAction(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	result := g.Step(in)

	if !result.State.Quit {
		t.Error("quit action should end the game")
	}
}

func TestGameMenuExit(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.World().setState(StateNormal)

	press := func(a core.Action) core.StepResult {
		in := core.NewInputFrame()
		if a != core.ActionNone {
			in.Set(a)
		}
		return g.Step(in)
	}

	press(core.ActionMenu)
	if !g.State().Paused {
		t.Fatal("menu should pause")
	}
	press(core.ActionNone)
	press(core.ActionDown)
	press(core.ActionNone)
	result := press(core.ActionConfirm)

	if !result.State.Quit {
		t.Error("EXIT should quit")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1200)
	actions := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Set(actions[(i/45)%len(actions)])
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			if res := g.Step(in); res.Err != nil {
				t.Fatal(res.Err)
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != 1200 {
		t.Errorf("Tick = %d, expected 1200", snap1.Tick)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	s := core.NewScreen(60, 33)
	g.Render(s)

	walls := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == '█' {
				walls++
			}
		}
	}
	if walls == 0 {
		t.Error("no walls rendered")
	}
}

func TestGameLevelLoadFailure(t *testing.T) {
	cat, err := levels.NewCatalog(fstest.MapFS{
		"01_bad.yaml": {Data: []byte("layout: |\n  #?#\n")},
	})
	if err != nil {
		t.Fatal(err)
	}
	SetCatalog(cat)
	t.Cleanup(func() { SetCatalog(nil) })

	g := New()
	g.Reset(testRuntime())

	result := g.Step(core.NewInputFrame())
	if !errors.Is(result.Err, maze.ErrMalformed) {
		t.Errorf("Step() error = %v, expected ErrMalformed", result.Err)
	}
	if !result.State.GameOver {
		t.Error("load failure should end the game")
	}

	s := core.NewScreen(60, 10)
	g.Render(s)
	if s.String() == core.NewScreen(60, 10).String() {
		t.Error("error message not rendered")
	}
}

func TestSnapshotRows(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	snap := w.Snapshot()

	if snap.Rows[1] != "#*........#" {
		t.Errorf("row 1 = %q", snap.Rows[1])
	}
	// Start markers are not part of the maze.
	if snap.Rows[4] != "#...    ..#" {
		t.Errorf("row 4 = %q", snap.Rows[4])
	}
	if snap.PelletsLeft != w.Level.PelletCount || len(snap.Ghosts) != 4 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Ghosts[Chaser].Name != "chaser" || snap.State != "ready" || snap.Mode != "scatter" {
		t.Errorf("snapshot names = %s/%s/%s", snap.Ghosts[Chaser].Name, snap.State, snap.Mode)
	}
}
