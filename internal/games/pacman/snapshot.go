package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// EntitySnapshot is the position and heading of one entity.
type EntitySnapshot struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	SubX   float64 `json:"sub_x"`
	SubY   float64 `json:"sub_y"`
	Dir    string  `json:"dir"`
	Facing string  `json:"facing"`
}

// GhostSnapshot is the visible state of one ghost.
type GhostSnapshot struct {
	EntitySnapshot
	Name       string `json:"name"`
	State      string `json:"state"`
	Frightened bool   `json:"frightened"`
	InHouse    bool   `json:"in_house"`
	TargetX    int    `json:"target_x"`
	TargetY    int    `json:"target_y"`
}

// Snapshot is a read-only copy of the world used by spectators and
// determinism tests. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        int             `json:"tick"`
	State       string          `json:"state"`
	Mode        string          `json:"mode"`
	Score       int             `json:"score"`
	Lives       int             `json:"lives"`
	LevelNum    int             `json:"level"`
	LevelName   string          `json:"level_name"`
	PelletsLeft int             `json:"pellets_left"`
	Player      EntitySnapshot  `json:"player"`
	Ghosts      []GhostSnapshot `json:"ghosts"`
	Rows        []string        `json:"rows"` // maze in level file notation
}

func entitySnapshot(e Entity) EntitySnapshot {
	return EntitySnapshot{
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		SubX:   e.Pos.SubX,
		SubY:   e.Pos.SubY,
		Dir:    e.Dir.String(),
		Facing: e.Facing.String(),
	}
}

var tileRunes = map[maze.TileKind]rune{
	maze.TileEmpty:       maze.RuneEmpty,
	maze.TileWall:        maze.RuneWall,
	maze.TileGate:        maze.RuneGate,
	maze.TilePellet:      maze.RunePellet,
	maze.TilePowerPellet: maze.RunePowerPellet,
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        w.ticks,
		State:       w.state.String(),
		Mode:        w.mode.String(),
		Score:       w.score,
		Lives:       w.lives,
		LevelNum:    w.levelNum,
		LevelName:   w.Level.Name,
		PelletsLeft: w.Level.PelletCount - w.Level.PelletsEaten,
		Player:      entitySnapshot(w.Player.Entity),
		Ghosts:      make([]GhostSnapshot, len(w.Ghosts)),
		Rows:        make([]string, w.Level.Height),
	}

	for i, g := range w.Ghosts {
		snap.Ghosts[i] = GhostSnapshot{
			EntitySnapshot: entitySnapshot(g.Entity),
			Name:           g.ID.String(),
			State:          g.State.String(),
			Frightened:     g.Frightened,
			InHouse:        g.InGhostHouse,
			TargetX:        g.Target.X,
			TargetY:        g.Target.Y,
		}
	}

	row := make([]rune, w.Level.Width)
	for y := range w.Level.Height {
		for x := range w.Level.Width {
			row[x] = tileRunes[w.Level.TileAt(x, y)]
		}
		snap.Rows[y] = string(row)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + uint64(snap.LevelNum)
	h = h*31 + uint64(snap.PelletsLeft)
	h = hashEntity(h, snap.Player)

	for _, g := range snap.Ghosts {
		h = hashEntity(h, g.EntitySnapshot)
		h = h*31 + hashString(g.State)
		if g.Frightened {
			h = h*31 + 1
		}
	}

	h = h*31 + hashString(snap.State)
	h = h*31 + hashString(snap.Mode)
	for _, r := range snap.Rows {
		h = h*31 + hashString(r)
	}
	return h
}

func hashEntity(h uint64, e EntitySnapshot) uint64 {
	h = h*31 + uint64(e.X)
	h = h*31 + uint64(e.Y)
	h = h*31 + math.Float64bits(e.SubX)
	h = h*31 + math.Float64bits(e.SubY)
	return h*31 + hashString(e.Dir)
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// Snapshot returns the current world state. The game must have been reset.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}
