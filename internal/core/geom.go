// Package core provides the types shared by games and the platform: screen
// buffer, input frames, step results and integer geometry. It has no
// external dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in integer units (pixels or cells).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap. Touching edges do not.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scaled returns r shrunk or grown by scale around its center. Sizes and
// offsets are truncated toward zero.
func (r Rect) Scaled(scale float64) Rect {
	ox := int(0.5 * (1 - scale) * float64(r.W))
	oy := int(0.5 * (1 - scale) * float64(r.H))
	return Rect{
		X: r.X + ox,
		Y: r.Y + oy,
		W: int(float64(r.W) * scale),
		H: int(float64(r.H) * scale),
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
