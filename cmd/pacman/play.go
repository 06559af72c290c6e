package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/spectate"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagWatch    bool
	flagSpectate string
	flagPlayer   string
	flagNoHelp   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  Esc/P             - Menu (CONTINUE / EXIT)
  Enter/Space       - Select menu item
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Extra lives, long frightened time, slow ghosts
  normal - Default rules
  hard   - Fewer lives, short frightened time, ghosts speed up per level
  fixed  - No per-level speed progression

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --levels ./levels --watch
  pacman play --spectate :8080
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level list when files in --levels change")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream frames to websocket viewers on this address (e.g. :8080)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your scores")
	playCmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Hide the key help line")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.Context()); err != nil {
		fail("%v", err)
	}
}

// play runs one interactive session. Every resource it opens is released
// before it returns.
func play(ctx context.Context) error {
	// The TUI owns stdout, so logs are discarded unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "pacman")
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	if err := applyGameFlags(logger, cat); err != nil {
		return err
	}

	if flagWatch {
		if flagLevels == "" {
			return errors.New("--watch needs --levels")
		}
		w, err := levels.Watch(cat, logger)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var observer tui.Observer
	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		srv, err := spectate.Listen(flagSpectate, hub)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(ctx); err != nil {
				logger.Error("spectator server stopped", "err", err)
			}
		}()
		logger.Info("spectators", "addr", srv.Addr().String())
		observer = spectatorObserver(hub, logger)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(pacman.GameID)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
	}

	return tui.Run(game, cfg, tui.Options{
		Store:    store,
		Player:   flagPlayer,
		Logger:   logger,
		Observer: observer,
		NoHelp:   flagNoHelp,
	})
}

// spectatorEvent is the wire form of core.Event.
type spectatorEvent struct {
	Kind  string `json:"kind"`
	Value int    `json:"value"`
}

// spectatorTick is the payload of each "tick" frame.
type spectatorTick struct {
	Snapshot pacman.Snapshot  `json:"snapshot"`
	Events   []spectatorEvent `json:"events,omitempty"`
}

// spectatorObserver publishes a world snapshot after every tick.
func spectatorObserver(hub *spectate.Hub, logger *log.Logger) tui.Observer {
	return tui.ObserverFunc(func(g registry.Game, r core.StepResult) {
		pg, ok := g.(*pacman.Game)
		if !ok || pg.World() == nil {
			return
		}

		tick := spectatorTick{Snapshot: pg.Snapshot()}
		for _, e := range r.Events {
			tick.Events = append(tick.Events, spectatorEvent{Kind: e.Kind.String(), Value: e.Value})
		}
		if err := hub.Publish("tick", tick); err != nil {
			logger.Warn("cannot publish frame", "err", err)
		}
	})
}
