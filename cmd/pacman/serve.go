package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that runs a game for every connection.

Scores are stored per-server (all users share the same leaderboard) and
recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  pacman serve                           # Listen on :23234 with auto-generated key
  pacman serve --ssh :2222               # Listen on port 2222
  pacman serve --host-key ./my_host_key  # Use specific host key
  pacman serve --levels ./levels --watch # Pick up level edits live

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeWatch, "watch", false, "Reload the level list when files in --levels change")
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := serve(cmd.Context()); err != nil {
		fail("%v", err)
	}
}

// serve runs the SSH server until ctx is done or the server fails.
func serve(ctx context.Context) error {
	logger, closeLog, err := newLogger(os.Stderr, "pacman-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	// World logs stay off in server mode.
	if err := applyGameFlags(nil, cat); err != nil {
		return err
	}

	if flagServeWatch {
		if flagLevels == "" {
			return errors.New("--watch needs --levels")
		}
		w, err := levels.Watch(cat, logger)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = pacman.GameID
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting pacman SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
