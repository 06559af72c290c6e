package pacman

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

func TestPlayerSteer(t *testing.T) {
	tests := []struct {
		name     string
		at       TileCoord
		dir      Direction
		in       Input
		expected Direction
	}{
		{"quarter turn near center", TileCoord{X: 2, Y: 2, SubX: 0.04}, DirRight, InputUp, DirUp},
		{"quarter turn off center", TileCoord{X: 2, Y: 2, SubX: 0.3}, DirRight, InputUp, DirRight},
		{"reversal off center", TileCoord{X: 2, Y: 2, SubX: 0.3}, DirRight, InputLeft, DirLeft},
		{"quarter turn into wall", TileCoord{X: 1, Y: 1}, DirRight, InputUp, DirRight},
		{"from standstill", TileCoord{X: 2, Y: 2}, DirNone, InputDown, DirDown},
		{"later bits win", TileCoord{X: 2, Y: 2}, DirNone, InputUp | InputDown | InputLeft | InputRight, DirRight},
		{"down beats up", TileCoord{X: 2, Y: 2}, DirNone, InputUp | InputDown, DirDown},
		{"off grid keeps direction", TileCoord{X: -1, Y: 2}, DirLeft, InputUp, DirLeft},
		{"no input", TileCoord{X: 2, Y: 2}, DirLeft, 0, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, openRows)
			p := &w.Player
			p.Pos = tc.at
			p.Dir = tc.dir

			p.steer(w.Level, tc.in, w.cfg.Movement.CenterEpsilon)

			if p.Dir != tc.expected {
				t.Errorf("Dir = %v, expected %v", p.Dir, tc.expected)
			}
		})
	}
}

func TestPlayerFacingFollowsTurn(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	p := &w.Player
	p.Pos = At(tile(2, 2))
	p.Dir = DirRight

	p.steer(w.Level, InputDown, w.cfg.Movement.CenterEpsilon)

	if p.Facing != DirDown {
		t.Errorf("Facing = %v, expected down", p.Facing)
	}
}

func TestPlayerInputBuffer(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	p := &w.Player

	expected := []Input{InputUp, InputUp, InputUp, 0}
	inputs := []Input{InputUp, 0, 0, 0}
	for i, in := range inputs {
		if got := p.buffer(in, 0.2); got != expected[i] {
			t.Errorf("buffer step %d = %v, expected %v", i, got, expected[i])
		}
	}
}

func TestPlayerInputBufferDropsMenu(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	p := &w.Player

	p.buffer(InputMenu|InputLeft, 0.1)
	if got := p.buffer(0, 0.1); got != InputLeft {
		t.Errorf("buffer() = %v, expected left only", got)
	}
}

func TestPlayerWallSnap(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	p := &w.Player
	p.Pos = At(tile(1, 1))
	p.Dir = DirLeft
	p.PrevInput = InputLeft

	p.move(w.Level, 0.05)

	if p.Pos != At(tile(1, 1)) {
		t.Errorf("Pos = %+v, expected snapped to (1,1)", p.Pos)
	}
	if p.Dir != DirNone || p.PrevInput != 0 {
		t.Errorf("Dir = %v PrevInput = %v, expected stopped", p.Dir, p.PrevInput)
	}
}

func TestPlayerMovesIntoOpenTile(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	p := &w.Player
	p.Pos = At(tile(2, 1))
	p.Dir = DirLeft

	p.move(w.Level, 0.05)

	if p.Pos.X != 2 || p.Pos.SubX != -0.25 || p.Dir != DirLeft {
		t.Errorf("Pos = %+v Dir = %v, expected (2,1) -0.25 left", p.Pos, p.Dir)
	}
}

func TestPlayerEatsPellet(t *testing.T) {
	w, _ := newTestWorld(t, openRows)
	w.Player.Pos = At(tile(2, 1))

	if _, err := w.updatePlayer(0, 0.01); err != nil {
		t.Fatal(err)
	}
	if w.Score() != 10 {
		t.Errorf("score = %d, expected 10", w.Score())
	}
	if w.Level.TileAt(2, 1) != maze.TileEmpty {
		t.Error("pellet not cleared")
	}

	// Standing still does not eat twice.
	if _, err := w.updatePlayer(0, 0.01); err != nil {
		t.Fatal(err)
	}
	if w.Score() != 10 {
		t.Errorf("score = %d after second tick, expected 10", w.Score())
	}

	events := w.DrainEvents()
	if len(events) != 1 || events[0] != (core.Event{Kind: core.EventPellet, Value: 10}) {
		t.Errorf("events = %v, expected one pellet", events)
	}
}

func TestPlayerTunnelWrap(t *testing.T) {
	rows := []string{
		"#########",
		"#.  =   #",
		"   P     ",
		"# rpco  #",
		"#########",
	}
	w, _ := newTestWorld(t, rows)
	w.setState(StateNormal)
	p := &w.Player
	p.Pos = At(tile(0, 2))
	p.Dir = DirLeft

	// One tile into the overhang, then one more wraps to the far side.
	p.move(w.Level, 0.2)
	if p.Pos.X != -1 {
		t.Fatalf("X = %d, expected overhang -1", p.Pos.X)
	}
	p.move(w.Level, 0.2)
	if p.Pos.X != w.Level.LastX()+1 {
		t.Fatalf("X = %d, expected %d", p.Pos.X, w.Level.LastX()+1)
	}
	if p.Dir != DirLeft {
		t.Errorf("Dir = %v, expected left", p.Dir)
	}
}
