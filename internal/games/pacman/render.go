package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ScreenRenderer draws onto a terminal cell buffer. One cell is GlyphWidth
// pixels wide and TileSize pixels tall, so a tile covers two cells.
type ScreenRenderer struct {
	screen    *core.Screen
	intensity float64
}

// NewScreenRenderer returns a renderer writing to s.
func NewScreenRenderer(s *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: s, intensity: 1}
}

// Glyph pairs, two cells per tile.
var (
	glyphWall        = [2]rune{'█', '█'}
	glyphGate        = [2]rune{'═', '═'}
	glyphPellet      = [2]rune{'·', ' '}
	glyphPowerPellet = [2]rune{'●', ' '}

	glyphPlayerClosed = [2]rune{'(', ')'}
	glyphPlayerOpen   = map[Transform][2]rune{
		TransformNone:      {'(', '<'},
		TransformFlipX:     {'>', ')'},
		TransformRotate90:  {'\\', '/'},
		TransformRotate270: {'/', '\\'},
	}

	glyphGhost      = [2][2]rune{{'m', 'm'}, {'M', 'M'}}
	glyphFrightened = [2][2]rune{{'w', 'w'}, {'W', 'W'}}
	glyphEaten      = [3][2]rune{{'o', 'o'}, {'°', '°'}, {'.', '.'}}
)

// dimThreshold is the intensity under which everything is drawn gray.
const dimThreshold = 0.5

// SetIntensity sets the brightness for subsequent draws.
func (r *ScreenRenderer) SetIntensity(v float64) {
	r.intensity = core.ClampF(v, 0, 1)
}

func (r *ScreenRenderer) color(c core.Color) core.Color {
	if r.intensity < dimThreshold {
		return core.ColorGray
	}
	return c
}

// cell converts a pixel position to a cell position.
func cell(x, y int) (int, int) {
	return floorDiv(x, GlyphWidth), floorDiv(y, TileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// DrawSprite draws s with its top-left corner at dst.
func (r *ScreenRenderer) DrawSprite(s Sprite, frame int, dst core.Rect, t Transform) {
	if s == SpriteMenuPanel {
		r.drawPanel(dst)
		return
	}

	glyph, color := spriteGlyph(s, frame, t)
	x, y := cell(dst.X, dst.Y)
	r.screen.SetColored(x, y, glyph[0], r.color(color))
	r.screen.SetColored(x+1, y, glyph[1], r.color(color))
}

func spriteGlyph(s Sprite, frame int, t Transform) ([2]rune, core.Color) {
	switch s {
	case SpriteWall:
		return glyphWall, core.ColorBlue
	case SpriteGate:
		return glyphGate, core.ColorPink
	case SpritePellet:
		return glyphPellet, core.ColorWhite
	case SpritePowerPellet:
		return glyphPowerPellet, core.ColorBrightWhite
	case SpritePlayer:
		if frame == 0 {
			return glyphPlayerClosed, core.ColorYellow
		}
		return glyphPlayerOpen[t], core.ColorYellow
	case SpriteLifeIcon:
		return glyphPlayerOpen[TransformNone], core.ColorYellow
	case SpriteFrightened:
		return glyphFrightened[frame%2], core.ColorBrightBlue
	case SpriteEaten:
		return glyphEaten[frame%3], core.ColorWhite
	case SpriteChaser, SpriteAmbusher, SpriteFlanker, SpriteErratic:
		return glyphGhost[frame%2], ghostProfiles[s-SpriteChaser].color
	default:
		return [2]rune{'?', '?'}, core.ColorDefault
	}
}

func (r *ScreenRenderer) drawPanel(dst core.Rect) {
	x, y := cell(dst.X, dst.Y)
	x2, y2 := cell(dst.Right(), dst.Bottom())
	box := core.NewRect(x, y, x2-x, y2-y)
	r.screen.DrawRect(box, ' ')
	r.screen.DrawBox(box, r.color(core.ColorWhite))
}

// DrawText writes text starting at the given pixel position.
func (r *ScreenRenderer) DrawText(x, y int, text string) {
	cx, cy := cell(x, y)
	r.screen.DrawTextColor(cx, cy, text, r.color(core.ColorBrightWhite))
}
