package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// TileSize is the edge of one tile in pixels.
const TileSize = 32

// TileCoord is a tile position plus a continuous offset within the tile.
// Only the axis of movement carries a non-zero offset; the offset keeps the
// sign of the movement and stays inside (-1, 1).
type TileCoord struct {
	X, Y       int
	SubX, SubY float64
}

// At returns a TileCoord centered on c.
func At(c maze.Coord) TileCoord {
	return TileCoord{X: c.X, Y: c.Y}
}

// Tile returns the integer tile.
func (c TileCoord) Tile() maze.Coord {
	return maze.Coord{X: c.X, Y: c.Y}
}

// Pixel returns the top-left pixel position.
func (c TileCoord) Pixel() (int, int) {
	return TileSize*c.X + int(c.SubX*TileSize), TileSize*c.Y + int(c.SubY*TileSize)
}

// Rect returns the tile box scaled around its center. Scale 1 is the full
// tile.
func (c TileCoord) Rect(scale float64) core.Rect {
	x, y := c.Pixel()
	return core.NewRect(x, y, TileSize, TileSize).Scaled(scale)
}

// NearCenter reports whether both offsets are within eps of zero.
func (c TileCoord) NearCenter(eps float64) bool {
	return math.Abs(c.SubX) <= eps && math.Abs(c.SubY) <= eps
}

// maxSub returns the larger offset magnitude.
func (c TileCoord) maxSub() float64 {
	return math.Max(math.Abs(c.SubX), math.Abs(c.SubY))
}
