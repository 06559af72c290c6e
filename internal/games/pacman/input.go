package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Input is the bitmask of logical buttons held during one tick.
type Input uint8

const (
	InputUp Input = 1 << iota
	InputLeft
	InputDown
	InputRight
	InputConfirm
	InputMenu
)

// InputFromFrame converts a platform input frame to a bitmask.
func InputFromFrame(f core.InputFrame) Input {
	var in Input
	if f.Has(core.ActionUp) {
		in |= InputUp
	}
	if f.Has(core.ActionLeft) {
		in |= InputLeft
	}
	if f.Has(core.ActionDown) {
		in |= InputDown
	}
	if f.Has(core.ActionRight) {
		in |= InputRight
	}
	if f.Has(core.ActionConfirm) {
		in |= InputConfirm
	}
	if f.Has(core.ActionMenu) {
		in |= InputMenu
	}
	return in
}

// Has reports whether any bit of b is set.
func (in Input) Has(b Input) bool {
	return in&b != 0
}
