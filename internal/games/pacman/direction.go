// Package pacman implements the maze chase: one player and four ghosts on a
// tile grid, advanced by a fixed-timestep World and exposed to the arcade
// platform as a registry game.
package pacman

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// Direction is a cardinal movement direction. The numeric order is also the
// tie-break priority used when ghosts choose a direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
	DirNone
)

var dirVectors = [4]maze.Coord{
	DirUp:    {X: 0, Y: -1},
	DirLeft:  {X: -1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirRight: {X: 1, Y: 0},
}

// Vector returns the unit step of d, or (0, 0) for DirNone.
func (d Direction) Vector() maze.Coord {
	if d >= DirNone {
		return maze.Coord{}
	}
	return dirVectors[d]
}

// Step returns c moved n tiles along d.
func (d Direction) Step(c maze.Coord, n int) maze.Coord {
	v := d.Vector()
	return c.Add(v.X*n, v.Y*n)
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Dot returns the dot product of two direction vectors: 1 for the same
// direction, 0 for a quarter turn, -1 for a reversal. Both arguments must be
// real directions.
func Dot(a, b Direction) int {
	if a >= DirNone || b >= DirNone {
		panic("pacman: Dot called with DirNone")
	}
	va, vb := dirVectors[a], dirVectors[b]
	return va.X*vb.X + va.Y*vb.Y
}
