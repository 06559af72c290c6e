package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Player is the entity steered by input.
type Player struct {
	Entity
	InputQueue Timer // how long a released input keeps being applied
	PrevInput  Input
}

func (p *Player) reset(start maze.Coord, cfg config.PacmanConfig) {
	*p = Player{
		Entity: Entity{
			Pos:       At(start),
			Dir:       DirNone,
			Facing:    DirRight,
			BaseSpeed: cfg.Movement.BaseSpeed,
			Speed:     cfg.Movement.BaseSpeed,
		},
		InputQueue: Timer{Target: cfg.Timers.InputQueue},
	}
}

// pressed reports whether b is set in in but was not set last tick.
func (p *Player) pressed(in, b Input) bool {
	return in.Has(b) && !p.PrevInput.Has(b)
}

// buffer replaces an empty input with the last non-empty one until the
// input queue timer runs out.
func (p *Player) buffer(in Input, dt float64) Input {
	if in != 0 {
		p.PrevInput = in
		p.InputQueue.Restart()
		return in
	}

	// The menu button is never repeated.
	p.PrevInput &^= InputMenu
	if p.PrevInput != 0 && !p.InputQueue.Update(dt) {
		return p.PrevInput
	}
	p.PrevInput = 0
	return 0
}

// steer applies the input to the player's direction. Later bits win:
// Up, then Down, Left, Right. A quarter turn is only taken on an in-bounds
// tile, within eps of its center, toward a tile that is not a wall; a
// reversal is always allowed.
func (p *Player) steer(l *maze.Level, in Input, eps float64) {
	prev := p.Dir

	if in.Has(InputUp) {
		p.Dir = DirUp
	}
	if in.Has(InputDown) {
		p.Dir = DirDown
	}
	if in.Has(InputLeft) {
		p.Dir = DirLeft
	}
	if in.Has(InputRight) {
		p.Dir = DirRight
	}

	if prev == DirNone {
		return
	}

	switch {
	case !l.InBounds(p.Pos.Tile()):
		p.Dir = prev
	case Dot(prev, p.Dir) == 0:
		if !p.Pos.NearCenter(eps) {
			p.Dir = prev
			break
		}
		ahead := l.WrapOverhang(p.Dir.Step(p.Pos.Tile(), 1))
		if l.IsWall(ahead, false) {
			p.Dir = prev
		}
	}
	p.Facing = p.Dir
}

// move advances the player and snaps it back to its tile when it runs into
// a wall.
func (p *Player) move(l *maze.Level, dt float64) {
	next := Advance(l, &p.Entity, dt)
	if !l.IsWall(next, false) {
		return
	}
	if !p.Pos.Rect(1).Intersects(At(next).Rect(1)) {
		return
	}

	p.Pos = At(l.WrapOverhang(p.Pos.Tile()))
	p.PrevInput = 0
	p.InputQueue.Elapsed = 0
	p.Dir = DirNone
}

// updatePlayer runs input, movement and eating for one tick. It reports
// whether the level was cleared and replaced.
func (w *World) updatePlayer(in Input, dt float64) (bool, error) {
	p := &w.Player

	in = p.buffer(in, dt)
	p.steer(w.Level, in, w.cfg.Movement.CenterEpsilon)
	p.move(w.Level, dt)

	tile := p.Pos.Tile()
	if !w.Level.InBounds(tile) {
		return false, nil
	}

	switch w.Level.Eat(tile) {
	case maze.TilePellet:
		w.addScore(w.cfg.Scoring.Pellet)
		w.emit(core.EventPellet, w.cfg.Scoring.Pellet)
	case maze.TilePowerPellet:
		w.frightenedTimer.Restart()
		for i := range w.Ghosts {
			if w.Ghosts[i].State != GhostEaten {
				w.Ghosts[i].Frightened = true
			}
		}
		w.addScore(w.cfg.Scoring.PowerPellet)
		w.emit(core.EventPowerPellet, w.cfg.Scoring.PowerPellet)
	}

	if !w.Level.Cleared() {
		return false, nil
	}

	w.emit(core.EventLevelCleared, w.levelNum)
	if err := w.startLevel(false); err != nil {
		return false, err
	}
	return true, nil
}
