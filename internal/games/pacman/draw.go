package pacman

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Sprite identifies an image the renderer knows how to draw.
type Sprite uint8

const (
	SpriteWall Sprite = iota
	SpriteGate
	SpritePellet
	SpritePowerPellet
	SpritePlayer
	SpriteChaser
	SpriteAmbusher
	SpriteFlanker
	SpriteErratic
	SpriteFrightened
	SpriteEaten
	SpriteLifeIcon
	SpriteMenuPanel
)

// Transform is applied to a sprite when drawn.
type Transform uint8

const (
	TransformNone Transform = iota
	TransformFlipX
	TransformRotate90  // counter-clockwise, facing up
	TransformRotate270 // counter-clockwise, facing down
)

// GlyphWidth is the pixel width of one text character.
const GlyphWidth = TileSize / 2

// Renderer draws sprites and text at pixel positions relative to the
// viewport. Intensity in [0, 1] applies to everything drawn after it is set.
type Renderer interface {
	SetIntensity(v float64)
	DrawSprite(s Sprite, frame int, dst core.Rect, t Transform)
	DrawText(x, y int, text string)
}

var tileSprites = map[maze.TileKind]Sprite{
	maze.TileWall:        SpriteWall,
	maze.TileGate:        SpriteGate,
	maze.TilePellet:      SpritePellet,
	maze.TilePowerPellet: SpritePowerPellet,
}

// entityFrame alternates two frames as an entity crosses its tile.
func entityFrame(c TileCoord) int {
	sub := c.maxSub()
	if sub < 0.25 || sub >= 0.75 {
		return 0
	}
	return 1
}

// eatenFrame cycles three frames over the eaten animation.
func eatenFrame(t Timer) int {
	n := t.Progress()
	switch {
	case (n > 0.25 && n <= 0.5) || n > 0.75:
		return 1
	case n > 0.5 && n <= 0.75:
		return 2
	default:
		return 0
	}
}

func playerTransform(facing Direction) Transform {
	switch facing {
	case DirUp:
		return TransformRotate90
	case DirLeft:
		return TransformFlipX
	case DirDown:
		return TransformRotate270
	default:
		return TransformNone
	}
}

func (w *World) view(r core.Rect) core.Rect {
	return r.Translate(-w.camera.ScrollX, -w.camera.ScrollY)
}

// Draw renders the maze, the entities, the HUD and any overlay. The HUD
// line sits just below the viewport.
func (w *World) Draw(r Renderer) {
	intensity := 1.0
	if w.state == StateReady {
		intensity = w.readyTimer.Progress()
	}
	r.SetIntensity(intensity)

	for y := 0; y < w.Level.Height; y++ {
		for x := 0; x < w.Level.Width; x++ {
			s, ok := tileSprites[w.Level.TileAt(x, y)]
			if !ok {
				continue
			}
			r.DrawSprite(s, 0, w.view(At(maze.Coord{X: x, Y: y}).Rect(1)), TransformNone)
		}
	}

	for i := range w.Ghosts {
		w.drawGhost(r, &w.Ghosts[i])
	}

	p := &w.Player
	r.DrawSprite(SpritePlayer, entityFrame(p.Pos), w.view(p.Pos.Rect(1)), playerTransform(p.Facing))

	w.drawHUD(r)

	switch w.state {
	case StateReady:
		_, frac := math.Modf(w.readyTimer.Elapsed)
		if frac <= 0.5 {
			r.SetIntensity(1)
			w.drawCentered(r, w.camera.ViewH/2-TileSize/2, "GET READY")
		}
	case StateMenu:
		w.drawMenu(r)
	}
}

func (w *World) drawGhost(r Renderer, g *Ghost) {
	dst := w.view(g.Pos.Rect(1))
	switch {
	case g.Frightened:
		r.DrawSprite(SpriteFrightened, entityFrame(g.Pos), dst, ghostTransform(g))
	case g.State == GhostEaten:
		r.DrawSprite(SpriteEaten, eatenFrame(g.EatenAnim), dst, TransformNone)
	default:
		r.DrawSprite(SpriteChaser+Sprite(g.ID), entityFrame(g.Pos), dst, ghostTransform(g))
	}
}

func ghostTransform(g *Ghost) Transform {
	if g.Facing == DirLeft {
		return TransformFlipX
	}
	return TransformNone
}

func (w *World) drawHUD(r Renderer) {
	y := w.camera.ViewH
	r.SetIntensity(1)
	r.DrawText(GlyphWidth, y, fmt.Sprintf("Score %d", w.score))

	x := w.camera.ViewW - 3*TileSize
	r.DrawSprite(SpriteLifeIcon, 0, core.NewRect(x, y, TileSize, TileSize), TransformNone)
	r.DrawText(x+TileSize, y, fmt.Sprintf("X%d", w.lives))
}

func (w *World) drawCentered(r Renderer, y int, text string) {
	x := w.camera.ViewW/2 - len(text)*GlyphWidth/2
	r.DrawText(x, y, text)
}

// Menu panel size in glyphs and text rows.
const (
	menuGlyphs = 14
	menuRows   = 4
)

func (w *World) drawMenu(r Renderer) {
	width := menuGlyphs * GlyphWidth
	height := menuRows * TileSize
	panel := core.NewRect(w.camera.ViewW/2-width/2, w.camera.ViewH/2-height/2, width, height)

	r.SetIntensity(1)
	r.DrawSprite(SpriteMenuPanel, 0, panel, TransformNone)

	for i, label := range menuLabels {
		r.SetIntensity(0.35)
		if MenuItem(i) == w.menuSel {
			r.SetIntensity(1)
		}
		w.drawCentered(r, panel.Y+TileSize*(i+1), label)
	}
	r.SetIntensity(1)
}
