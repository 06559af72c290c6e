package pacman

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// LevelSource supplies levels to a World. Every call loads a fresh copy.
type LevelSource interface {
	First() (*maze.Level, error)
	Next() (*maze.Level, error)
}

// State is the top-level game state.
type State uint8

const (
	StateReady State = iota
	StateNormal
	StateMenu
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateNormal:
		return "normal"
	case StateMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Mode is the global ghost mode driven by the mode timer.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
)

func (m Mode) ghostState() GhostState {
	if m == ModeChase {
		return GhostChase
	}
	return GhostScatter
}

// String returns the mode name.
func (m Mode) String() string {
	return m.ghostState().String()
}

// MenuItem is an entry of the pause menu.
type MenuItem uint8

const (
	MenuContinue MenuItem = iota
	MenuExit
	menuItemCount
)

var menuLabels = [menuItemCount]string{"CONTINUE", "EXIT"}

// Camera is the scroll offset of the viewport in pixels.
type Camera struct {
	ScrollX, ScrollY int
	ViewW, ViewH     int
}

// World is one running game. It is not safe for concurrent use.
type World struct {
	cfg        config.PacmanConfig
	src        LevelSource
	rng        *rand.Rand
	logger     *log.Logger
	difficulty *config.DifficultyManager

	Level  *maze.Level
	Player Player
	Ghosts [maze.GhostSlots]Ghost

	state, prevState State
	mode             Mode
	readyTimer       Timer
	modeTimer        Timer
	frightenedTimer  Timer

	score    int
	lives    int
	levelNum int
	menuSel  MenuItem
	ticks    int

	camera Camera
	events []core.Event
}

// NewWorld creates a world and loads the first level from src.
func NewWorld(cfg config.PacmanConfig, src LevelSource, rng *rand.Rand, logger *log.Logger) (*World, error) {
	w := &World{
		cfg:        cfg,
		src:        src,
		rng:        rng,
		logger:     logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		camera:     Camera{ViewW: 28 * TileSize, ViewH: 31 * TileSize},
	}
	if err := w.resetRun(); err != nil {
		return nil, err
	}
	return w, nil
}

// Update advances the world by dt seconds. dt is clamped to the configured
// maximum step. It returns false when the player chose to exit.
func (w *World) Update(dt float64, in Input) (bool, error) {
	dt = core.ClampF(dt, 0, w.cfg.Movement.MaxStep)
	w.ticks++

	switch w.state {
	case StateReady:
		w.updateCamera()
		if !w.readyTimer.Update(dt) {
			return true, nil
		}
		w.setState(StateNormal)
	case StateNormal:
		if w.Player.pressed(in, InputMenu) {
			w.setState(StateMenu)
		}
	case StateMenu:
		if w.Player.pressed(in, InputMenu) {
			w.setState(w.prevState)
			break
		}
		running := w.updateMenu(in)
		w.Player.PrevInput = in
		return running, nil
	}

	w.updateModeTimers(dt)

	advanced, err := w.updatePlayer(in, dt)
	if err != nil {
		return false, err
	}
	if advanced {
		return true, nil
	}

	for i := range w.Ghosts {
		w.updateGhost(&w.Ghosts[i], dt)
	}

	if err := w.resolveCollisions(dt); err != nil {
		return false, err
	}
	w.updateCamera()
	return true, nil
}

// updateMenu handles menu navigation and reports whether the game continues.
func (w *World) updateMenu(in Input) bool {
	switch {
	case w.Player.pressed(in, InputUp):
		w.menuSel = (w.menuSel + menuItemCount - 1) % menuItemCount
	case w.Player.pressed(in, InputDown):
		w.menuSel = (w.menuSel + 1) % menuItemCount
	}

	if w.Player.pressed(in, InputConfirm) {
		switch w.menuSel {
		case MenuContinue:
			w.setState(w.prevState)
		case MenuExit:
			return false
		}
	}
	return true
}

// updateModeTimers flips scatter/chase and ends frightened mode.
func (w *World) updateModeTimers(dt float64) {
	if w.modeTimer.Update(dt) {
		old := w.mode
		if old == ModeScatter {
			w.mode = ModeChase
			w.modeTimer.Target = w.cfg.Timers.Chase
		} else {
			w.mode = ModeScatter
			w.modeTimer.Target = w.cfg.Timers.Scatter
		}
		w.modeTimer.Restart()

		for i := range w.Ghosts {
			if w.Ghosts[i].State == old.ghostState() {
				w.Ghosts[i].State = w.mode.ghostState()
			}
		}
	}

	if w.frightenedTimer.Update(dt) {
		for i := range w.Ghosts {
			w.Ghosts[i].Frightened = false
		}
	}
}

// resolveCollisions tests the player against every ghost. A frightened
// ghost is eaten; any other ghost that is not already eaten costs a life if
// the tighter boxes also overlap.
func (w *World) resolveCollisions(dt float64) error {
	const (
		touchScale = 0.75
		fatalScale = 0.35
	)

	for i := range w.Ghosts {
		g := &w.Ghosts[i]

		if g.EatenAnim.Update(dt) && g.State == GhostEaten {
			g.EatenAnim.Restart()
		}

		if !w.Player.Pos.Rect(touchScale).Intersects(g.Pos.Rect(touchScale)) {
			continue
		}

		if g.Frightened {
			g.Frightened = false
			g.State = GhostEaten
			g.EatenAnim.Running = true
			w.addScore(w.cfg.Scoring.Ghost)
			w.emit(core.EventGhostEaten, w.cfg.Scoring.Ghost)
			continue
		}

		if g.State == GhostEaten {
			continue
		}
		if !w.Player.Pos.Rect(fatalScale).Intersects(g.Pos.Rect(fatalScale)) {
			continue
		}

		w.lives--
		w.emit(core.EventLifeLost, w.lives)
		w.logger.Debug("life lost", "ghost", g.ID, "lives", w.lives, "score", w.score)
		if w.lives >= 0 {
			w.placeEntities()
			return nil
		}

		w.emit(core.EventRunEnded, w.score)
		w.logger.Debug("run ended", "score", w.score, "level", w.levelNum)
		return w.resetRun()
	}
	return nil
}

// addScore awards points. The score saturates at the maximum; crossing a
// multiple of the extra life threshold grants a life, also saturating.
func (w *World) addScore(points int) {
	every := w.cfg.Scoring.ExtraLifeEvery
	before := 0
	if every > 0 {
		before = w.score / every
	}

	w.score = min(w.score+points, w.cfg.Scoring.Max)

	if every > 0 && w.score/every > before {
		w.lives = min(w.lives+1, w.cfg.Lives.Max)
	}
}

// resetRun restores score and lives and reloads the first level.
func (w *World) resetRun() error {
	w.lives = w.cfg.Lives.Start
	w.score = 0
	return w.startLevel(true)
}

// startLevel loads the first or the next level and resets the ghost mode.
func (w *World) startLevel(first bool) error {
	w.mode = ModeScatter
	w.modeTimer = Timer{Running: true, Target: w.cfg.Timers.Scatter}
	w.frightenedTimer = Timer{Target: w.cfg.Timers.Frightened}

	var (
		lvl *maze.Level
		err error
	)
	if first {
		lvl, err = w.src.First()
	} else {
		lvl, err = w.src.Next()
	}
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	w.Level = lvl
	if first {
		w.levelNum = 1
	} else {
		w.levelNum++
	}
	w.logger.Debug("level start", "name", lvl.Name, "level", w.levelNum, "pellets", lvl.PelletCount)

	w.placeEntities()
	return nil
}

// placeEntities puts everyone on their start tiles and enters Ready.
func (w *World) placeEntities() {
	w.Player.reset(w.Level.PlayerStart, w.cfg)
	for i := range w.Ghosts {
		w.Ghosts[i].reset(GhostID(i), w.Level.GhostStarts[i], w.cfg)
	}

	w.camera.ScrollX, w.camera.ScrollY = 0, 0
	w.setState(StateReady)
}

func (w *World) setState(s State) {
	if s == StateReady {
		w.readyTimer = Timer{Running: true, Target: w.cfg.Timers.Ready}
	}
	w.prevState = w.state
	w.state = s
}

// SetViewport sets the visible area in pixels used by the camera.
func (w *World) SetViewport(width, height int) {
	w.camera.ViewW = width
	w.camera.ViewH = height
	w.updateCamera()
}

// updateCamera centers the view on the player within the maze bounds. A
// maze narrower than the view is centered instead.
func (w *World) updateCamera() {
	px, py := w.Player.Pos.Pixel()
	w.camera.ScrollX = scrollAxis(px+TileSize/2-w.camera.ViewW/2, w.Level.Width*TileSize, w.camera.ViewW)
	w.camera.ScrollY = scrollAxis(py+TileSize/2-w.camera.ViewH/2, w.Level.Height*TileSize, w.camera.ViewH)
}

func scrollAxis(scroll, world, view int) int {
	if world <= view {
		return -(view - world) / 2
	}
	return core.Clamp(scroll, 0, world-view)
}

func (w *World) emit(kind core.EventKind, value int) {
	w.events = append(w.events, core.Event{Kind: kind, Value: value})
}

// DrainEvents returns and clears the events recorded since the last call.
func (w *World) DrainEvents() []core.Event {
	ev := w.events
	w.events = nil
	return ev
}

// State returns the top-level state.
func (w *World) State() State { return w.state }

// Mode returns the global ghost mode.
func (w *World) Mode() Mode { return w.mode }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// LevelNum returns the 1-based number of the current level in this run.
func (w *World) LevelNum() int { return w.levelNum }

// MenuSelection returns the highlighted menu item.
func (w *World) MenuSelection() MenuItem { return w.menuSel }

// Camera returns the current camera.
func (w *World) Camera() Camera { return w.camera }
