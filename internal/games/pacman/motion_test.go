package pacman

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

func TestAdvance(t *testing.T) {
	l, err := maze.ParseRows("open", openRows)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		start    TileCoord
		dir      Direction
		speed    float64
		dt       float64
		expected TileCoord
		next     maze.Coord
	}{
		{"fold overshoot", TileCoord{X: 2, Y: 1}, DirRight, 5, 0.5, TileCoord{X: 4, Y: 1, SubX: 0.5}, tile(5, 1)},
		{"sign preserved", TileCoord{X: 5, Y: 1}, DirLeft, 1, 0.25, TileCoord{X: 5, Y: 1, SubX: -0.25}, tile(4, 1)},
		{"negative fold", TileCoord{X: 2, Y: 2}, DirUp, 2, 0.75, TileCoord{X: 2, Y: 1, SubY: -0.5}, tile(2, 0)},
		{"orthogonal cleared", TileCoord{X: 2, Y: 2, SubY: 0.5}, DirRight, 1, 0.25, TileCoord{X: 2, Y: 2, SubX: 0.25}, tile(3, 2)},
		{"into overhang", TileCoord{X: 10, Y: 2}, DirRight, 1, 1, TileCoord{X: 11, Y: 2}, tile(-1, 2)},
		{"past overhang", TileCoord{X: 11, Y: 2}, DirRight, 1, 1, TileCoord{X: -1, Y: 2}, tile(0, 2)},
		{"vertical wrap", TileCoord{X: 3, Y: 0}, DirUp, 1, 1, TileCoord{X: 3, Y: -1}, tile(3, 7)},
		{"stopped", TileCoord{X: 3, Y: 3, SubX: 0.25}, DirNone, 5, 1, TileCoord{X: 3, Y: 3, SubX: 0.25}, tile(3, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entity{Pos: tc.start, Dir: tc.dir, Speed: tc.speed}
			next := Advance(l, &e, tc.dt)

			got := e.Pos
			if got.X != tc.expected.X || got.Y != tc.expected.Y ||
				math.Abs(got.SubX-tc.expected.SubX) > 1e-9 || math.Abs(got.SubY-tc.expected.SubY) > 1e-9 {
				t.Errorf("Pos = %+v, expected %+v", got, tc.expected)
			}
			if next != tc.next {
				t.Errorf("next = %v, expected %v", next, tc.next)
			}
		})
	}
}

func TestAdvanceKeepsOffsetInRange(t *testing.T) {
	l, err := maze.ParseRows("open", openRows)
	if err != nil {
		t.Fatal(err)
	}

	e := Entity{Pos: At(tile(1, 2)), Dir: DirRight, Speed: 7.3}
	for range 500 {
		Advance(l, &e, 0.037)
		if e.Pos.SubX <= -1 || e.Pos.SubX >= 1 || e.Pos.SubY != 0 {
			t.Fatalf("offset out of range: %+v", e.Pos)
		}
		if e.Pos.X < -1 || e.Pos.X > l.LastX()+1 {
			t.Fatalf("tile out of overhang range: %+v", e.Pos)
		}
	}
}

func TestTileCoordRect(t *testing.T) {
	tests := []struct {
		name     string
		pos      TileCoord
		scale    float64
		expected [4]int
	}{
		{"full tile", At(tile(2, 3)), 1, [4]int{64, 96, 32, 32}},
		{"touch box", At(tile(2, 3)), 0.75, [4]int{68, 100, 24, 24}},
		{"fatal box", At(tile(2, 3)), 0.35, [4]int{74, 106, 11, 11}},
		{"offset", TileCoord{X: 2, Y: 3, SubX: 0.5}, 1, [4]int{80, 96, 32, 32}},
		{"negative offset", TileCoord{X: 2, Y: 3, SubY: -0.25}, 1, [4]int{64, 88, 32, 32}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.pos.Rect(tc.scale)
			if got := [4]int{r.X, r.Y, r.W, r.H}; got != tc.expected {
				t.Errorf("Rect(%v) = %v, expected %v", tc.scale, got, tc.expected)
			}
		})
	}
}

func TestNearCenter(t *testing.T) {
	tests := []struct {
		pos      TileCoord
		expected bool
	}{
		{TileCoord{}, true},
		{TileCoord{SubX: 0.05}, true},
		{TileCoord{SubX: -0.05}, true},
		{TileCoord{SubX: 0.06}, false},
		{TileCoord{SubY: -0.5}, false},
	}

	for _, tc := range tests {
		if got := tc.pos.NearCenter(0.05); got != tc.expected {
			t.Errorf("NearCenter(%+v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestTimer(t *testing.T) {
	tm := Timer{Running: true, Target: 1}

	if tm.Update(0.5) {
		t.Fatal("fired early")
	}
	if tm.Progress() != 0.5 {
		t.Errorf("Progress() = %v, expected 0.5", tm.Progress())
	}
	if !tm.Update(0.5) {
		t.Fatal("did not fire at target")
	}
	if tm.Running || tm.Elapsed != 0 {
		t.Errorf("after firing: %+v, expected stopped at 0", tm)
	}
	if tm.Update(5) || tm.Elapsed != 0 {
		t.Errorf("stopped timer advanced: %+v", tm)
	}

	tm.Restart()
	tm.Update(0.25)
	tm.Stop()
	if tm.Running || tm.Elapsed != 0 {
		t.Errorf("after Stop: %+v", tm)
	}

	if (Timer{}).Progress() != 0 {
		t.Error("zero target progress should be 0")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		a, b     Direction
		expected int
	}{
		{DirUp, DirUp, 1},
		{DirUp, DirDown, -1},
		{DirLeft, DirRight, -1},
		{DirUp, DirLeft, 0},
		{DirRight, DirDown, 0},
	}
	for _, tc := range tests {
		if got := Dot(tc.a, tc.b); got != tc.expected {
			t.Errorf("Dot(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}

	if got := DirLeft.Step(tile(5, 5), 3); got != tile(2, 5) {
		t.Errorf("Step() = %v, expected (2,5)", got)
	}
	if got := DirNone.Step(tile(5, 5), 3); got != tile(5, 5) {
		t.Errorf("DirNone.Step() = %v, expected (5,5)", got)
	}
}

func TestDotPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dot with DirNone should panic")
		}
	}()
	Dot(DirNone, DirUp)
}
