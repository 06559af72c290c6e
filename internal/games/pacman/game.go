package pacman

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "pacman"

// Package settings applied on the next Reset, set from the CLI.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	catalog          *levels.Catalog
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetCatalog sets the level catalog. nil selects the built-in levels.
func SetCatalog(c *levels.Catalog) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	catalog = c
}

// SetLogger sets the logger used by new games. nil discards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func settings() (string, config.DifficultyPreset, *levels.Catalog, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	cat := catalog
	if cat == nil {
		cat = levels.Default()
	}
	return configPath, difficultyPreset, cat, logger
}

// Game adapts a World to the arcade platform.
type Game struct {
	runtime core.RuntimeConfig
	world   *World
	dt      float64
	quit    bool
	err     error
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset loads the configuration and the first level and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.quit = false
	g.err = nil

	path, preset, cat, lg := settings()

	cfg, err := config.LoadPacman(path)
	if err != nil {
		lg.Warn("using default config", "err", err)
		cfg = config.DefaultPacmanConfig()
	}
	if preset != "" {
		config.ApplyPacmanPreset(&cfg, preset)
	}

	rate := runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.dt = 1 / float64(rate)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.world, g.err = NewWorld(cfg, cat.Cursor(), rand.New(rand.NewSource(seed)), lg)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.quit {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	running, err := g.world.Update(g.dt, InputFromFrame(in))
	events := g.world.DrainEvents()
	if err != nil {
		g.err = err
	}
	if !running {
		g.quit = true
	}
	return core.StepResult{State: g.State(), Events: events, Err: g.err}
}

// Render draws the maze into dst, keeping the last row for the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		}
		return
	}
	g.world.SetViewport(dst.Width()*GlyphWidth, (dst.Height()-1)*TileSize)
	g.world.Draw(NewScreenRenderer(dst))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: true, Quit: g.quit}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.LevelNum(),
		Lives:    g.world.Lives(),
		GameOver: g.err != nil,
		Paused:   g.world.State() == StateMenu,
		Quit:     g.quit,
	}
}

// World returns the running world, nil if the first level failed to load.
func (g *Game) World() *World {
	return g.world
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
