package pacman

import (
	"math"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// GhostID selects a ghost's behavior parameters.
type GhostID uint8

const (
	Chaser GhostID = iota
	Ambusher
	Flanker
	Erratic
)

// GhostState is the ghost's macro state. Frightened is a separate overlay.
type GhostState uint8

const (
	GhostScatter GhostState = iota
	GhostChase
	GhostEaten
)

// String returns the state name.
func (s GhostState) String() string {
	switch s {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

type chaseRule uint8

const (
	chaseDirect chaseRule = iota // the player's tile
	chaseAhead                   // four tiles ahead of the player
	chaseFlank                   // mirror of the chaser through a point ahead of the player
	chaseShy                     // the player while far, a fixed retreat point while close
)

// shyRadiusSq is the squared distance under which a shy ghost retreats.
const shyRadiusSq = 8

// shyRetreatX is the column of the shy ghost's retreat point, just below
// the bottom row.
const shyRetreatX = 8

type ghostProfile struct {
	name   string
	color  core.Color
	chase  chaseRule
	corner func(l *maze.Level) maze.Coord
}

var ghostProfiles = [maze.GhostSlots]ghostProfile{
	Chaser: {
		name:   "chaser",
		color:  core.ColorRed,
		chase:  chaseDirect,
		corner: func(l *maze.Level) maze.Coord { return maze.Coord{X: l.LastX() - 1, Y: 1} },
	},
	Ambusher: {
		name:   "ambusher",
		color:  core.ColorPink,
		chase:  chaseAhead,
		corner: func(l *maze.Level) maze.Coord { return maze.Coord{X: 1, Y: 1} },
	},
	Flanker: {
		name:   "flanker",
		color:  core.ColorCyan,
		chase:  chaseFlank,
		corner: func(l *maze.Level) maze.Coord { return maze.Coord{X: l.LastX() - 1, Y: l.LastY() - 1} },
	},
	Erratic: {
		name:   "erratic",
		color:  core.ColorOrange,
		chase:  chaseShy,
		corner: func(l *maze.Level) maze.Coord { return maze.Coord{X: 1, Y: l.LastY() - 1} },
	},
}

// String returns the ghost's name.
func (id GhostID) String() string {
	if int(id) < len(ghostProfiles) {
		return ghostProfiles[id].name
	}
	return "unknown"
}

// Ghost is one pursuer.
type Ghost struct {
	Entity
	ID           GhostID
	Target       maze.Coord
	State        GhostState
	Frightened   bool
	InGhostHouse bool
	GatePass     float64 // eaten pellet fraction needed to leave the house
	EatenAnim    Timer
}

// reset puts g at its start tile in its initial state.
func (g *Ghost) reset(id GhostID, start maze.Coord, cfg config.PacmanConfig) {
	params := cfg.Ghosts.ByIndex(int(id))
	*g = Ghost{
		Entity: Entity{
			Pos:       At(start),
			Dir:       DirUp,
			Facing:    DirRight,
			BaseSpeed: cfg.Movement.BaseSpeed + params.SpeedOffset,
		},
		ID:           id,
		State:        GhostScatter,
		InGhostHouse: true,
		GatePass:     params.GatePass,
		EatenAnim:    Timer{Target: cfg.Timers.EatenAnim},
	}
	g.Speed = g.BaseSpeed

	// The chaser starts outside the house, already moving.
	if id == Chaser {
		g.Dir = DirRight
		g.InGhostHouse = false
	}
}

// CanPassGate reports whether the gate tile is open to g.
func (g *Ghost) CanPassGate(l *maze.Level) bool {
	return g.State == GhostEaten || (g.InGhostHouse && g.GatePass <= l.EatenFraction())
}

// Corner returns the ghost's scatter corner on l.
func (g *Ghost) Corner(l *maze.Level) maze.Coord {
	return ghostProfiles[g.ID].corner(l)
}

// blocked is the ghost's wall test. When the gate is open to g it also
// retargets g to the gate; callers rely on that to route released and eaten
// ghosts through it.
func (g *Ghost) blocked(l *maze.Level, c maze.Coord) bool {
	if !l.InBounds(c) {
		return false
	}
	if g.CanPassGate(l) {
		g.Target = l.Gate
		return l.IsWall(c, true)
	}
	return l.IsWall(c, false)
}

// speedFor returns the ghost's speed for this tick.
func (g *Ghost) speedFor(mv config.PacmanMovement, base float64) float64 {
	switch {
	case g.State == GhostEaten:
		return mv.EatenSpeed
	case g.Frightened:
		return base * mv.FrightenedFactor
	default:
		return base
	}
}

// retarget recomputes g.Target. Frightened ghosts pick a random open
// neighbor; otherwise the target follows the ghost state.
func (w *World) retarget(g *Ghost) {
	if g.Frightened {
		w.frightenedTarget(g)
		return
	}

	switch g.State {
	case GhostChase:
		g.Target = w.chaseTarget(g)
	case GhostEaten:
		g.Target = w.Level.Gate
	default:
		g.Target = g.Corner(w.Level)
	}
}

// frightenedTarget draws from [0, n] over the n eligible neighbors; a draw
// of n also selects the last one, so the last direction is twice as likely.
func (w *World) frightenedTarget(g *Ghost) {
	here := g.Pos.Tile()

	var eligible [4]Direction
	n := 0
	for d := DirUp; d < DirNone; d++ {
		next := d.Step(here, 1)
		if !g.blocked(w.Level, next) && Dot(d, g.Dir) >= 0 {
			eligible[n] = d
			n++
		}
	}
	if n == 0 {
		return
	}

	i := w.rng.Intn(n + 1)
	if i == n {
		i = n - 1
	}
	g.Target = eligible[i].Step(here, 1)
}

// chaseTarget applies the ghost's chase rule.
func (w *World) chaseTarget(g *Ghost) maze.Coord {
	player := w.Player.Pos.Tile()
	facing := w.Player.Facing

	switch ghostProfiles[g.ID].chase {
	case chaseAhead:
		return facing.Step(player, 4)
	case chaseFlank:
		pivot := facing.Step(player, 2)
		chaser := w.Ghosts[Chaser].Pos.Tile()
		return maze.Coord{X: 2*pivot.X - chaser.X, Y: 2*pivot.Y - chaser.Y}
	case chaseShy:
		if player.DistSq(g.Pos.Tile()) >= shyRadiusSq {
			return player
		}
		return maze.Coord{X: shyRetreatX, Y: w.Level.Height}
	default:
		return player
	}
}

// steer points g at the open neighbor closest to its target. Reversal is
// never chosen; ties go to the earlier of Up, Left, Down, Right. With no
// open neighbor the direction is kept.
func (w *World) steer(g *Ghost) {
	here := g.Pos.Tile()
	best := DirNone
	bestDist := math.MaxInt

	for d := DirUp; d < DirNone; d++ {
		if Dot(g.Dir, d) < 0 {
			continue
		}
		next := d.Step(here, 1)
		if !w.Level.InBounds(next) || g.blocked(w.Level, next) {
			continue
		}
		if dist := next.DistSq(g.Target); dist < bestDist {
			bestDist = dist
			best = d
		}
	}

	if best == DirNone {
		return
	}
	g.Dir = best
	if best.Horizontal() {
		g.Facing = best
	}
}

// updateGhost moves g and, when it enters a new tile, handles the gate and
// picks its next direction.
func (w *World) updateGhost(g *Ghost, dt float64) {
	old := g.Pos.Tile()
	base := w.difficulty.Speed(g.BaseSpeed, config.Progress{Score: w.score, Ticks: w.ticks, Level: w.levelNum})
	g.Speed = g.speedFor(w.cfg.Movement, base)
	Advance(w.Level, &g.Entity, dt)

	here := g.Pos.Tile()
	if g.Dir == DirNone || here == old {
		return
	}

	if g.CanPassGate(w.Level) && w.Level.TileAt(here.X, here.Y) == maze.TileGate {
		g.InGhostHouse = g.State == GhostEaten
		if g.InGhostHouse {
			g.EatenAnim.Stop()
		}
		g.State = w.mode.ghostState()
	}

	w.retarget(g)
	w.steer(g)
}
