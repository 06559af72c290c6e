package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Entity is the moving part shared by the player and the ghosts.
type Entity struct {
	Pos       TileCoord
	Dir       Direction // movement direction
	Facing    Direction // visual direction
	BaseSpeed float64   // tiles per second
	Speed     float64
}

// Advance moves e by Speed*dt along its direction. Whole tiles are folded
// from the offset into the tile coordinate, which is then wrapped with the
// overhang rule. It returns the tile one step ahead of e, also wrapped with
// the overhang rule.
func Advance(l *maze.Level, e *Entity, dt float64) maze.Coord {
	step := e.Speed * dt

	switch e.Dir {
	case DirUp:
		e.Pos.SubY -= step
		e.Pos.SubX = 0
	case DirDown:
		e.Pos.SubY += step
		e.Pos.SubX = 0
	case DirLeft:
		e.Pos.SubX -= step
		e.Pos.SubY = 0
	case DirRight:
		e.Pos.SubX += step
		e.Pos.SubY = 0
	}

	whole, frac := math.Modf(e.Pos.SubX)
	e.Pos.X += int(whole)
	e.Pos.SubX = frac
	whole, frac = math.Modf(e.Pos.SubY)
	e.Pos.Y += int(whole)
	e.Pos.SubY = frac

	t := l.WrapOverhang(e.Pos.Tile())
	e.Pos.X, e.Pos.Y = t.X, t.Y

	return l.WrapOverhang(e.Dir.Step(t, 1))
}
