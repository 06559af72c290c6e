// Package maze owns the tile grid of a Pac-Man level: tile classification,
// coordinate validity and the two wrap rules used by moving entities.
// It has no knowledge of ghosts or the player.
package maze

import "errors"

// TileKind classifies a single grid cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileGate
	TilePellet
	TilePowerPellet

	// TileOutOfRange is returned for coordinates outside the grid.
	TileOutOfRange
)

// String returns a short name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileGate:
		return "gate"
	case TilePellet:
		return "pellet"
	case TilePowerPellet:
		return "power_pellet"
	case TileOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// GhostSlots is the number of ghost start positions a level carries.
const GhostSlots = 4

// ErrMalformed is wrapped by every level validation failure.
var ErrMalformed = errors.New("maze: malformed level")

// Coord is an integer tile position.
type Coord struct {
	X, Y int
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// DistSq returns the squared euclidean distance between two tiles.
func (c Coord) DistSq(o Coord) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Level is a loaded maze. It is mutated only by eating pellets and is
// replaced wholesale on level transition.
type Level struct {
	Name   string
	Width  int // columns
	Height int // rows

	tiles []TileKind

	PelletCount  int
	PelletsEaten int

	Gate        Coord
	PlayerStart Coord
	GhostStarts [GhostSlots]Coord
}

// LastX returns the index of the last column.
func (l *Level) LastX() int {
	return l.Width - 1
}

// LastY returns the index of the last row.
func (l *Level) LastY() int {
	return l.Height - 1
}

// InBounds reports whether c addresses a cell of the grid.
func (l *Level) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.Width && c.Y >= 0 && c.Y < l.Height
}

// TileAt returns the tile at (x, y) or TileOutOfRange.
func (l *Level) TileAt(x, y int) TileKind {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileOutOfRange
	}
	return l.tiles[y*l.Width+x]
}

// SetTile overwrites the tile at (x, y). Returns false if out of range.
func (l *Level) SetTile(x, y int, k TileKind) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	l.tiles[y*l.Width+x] = k
	return true
}

// IsWall reports whether c blocks movement. Gates block unless
// gatePassable is set. Coordinates off the grid never block, so tunnels
// can be traversed while an entity is wrapping.
func (l *Level) IsWall(c Coord, gatePassable bool) bool {
	switch l.TileAt(c.X, c.Y) {
	case TileWall:
		return true
	case TileGate:
		return !gatePassable
	default:
		return false
	}
}

// Eat consumes a pellet or power pellet at c and returns what was eaten.
// Any other tile is left untouched and TileEmpty is returned.
func (l *Level) Eat(c Coord) TileKind {
	k := l.TileAt(c.X, c.Y)
	if k != TilePellet && k != TilePowerPellet {
		return TileEmpty
	}
	l.PelletsEaten++
	l.SetTile(c.X, c.Y, TileEmpty)
	return k
}

// EatenFraction returns pellets eaten divided by total pellets.
func (l *Level) EatenFraction() float64 {
	if l.PelletCount == 0 {
		return 1
	}
	return float64(l.PelletsEaten) / float64(l.PelletCount)
}

// Cleared reports whether every pellet has been eaten.
func (l *Level) Cleared() bool {
	return l.PelletsEaten == l.PelletCount
}

// WrapOverhang wraps c into [-1, last+1] on each axis. The extra cell on
// either side represents an entity halfway through a tunnel.
func (l *Level) WrapOverhang(c Coord) Coord {
	return Coord{
		X: wrapAxis(c.X, -1, l.LastX()+1),
		Y: wrapAxis(c.Y, -1, l.LastY()+1),
	}
}

// WrapStrict wraps c into [0, last] on each axis.
func (l *Level) WrapStrict(c Coord) Coord {
	return Coord{
		X: wrapAxis(c.X, 0, l.LastX()),
		Y: wrapAxis(c.Y, 0, l.LastY()),
	}
}

func wrapAxis(v, lo, hi int) int {
	switch {
	case v < lo:
		return hi
	case v > hi:
		return lo
	default:
		return v
	}
}
