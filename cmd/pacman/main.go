// pacman runs a maze-chase arcade game in the terminal.
//
// Usage:
//
//	pacman play              - Play in this terminal
//	pacman levels            - List the level files in load order
//	pacman scores            - Show high scores
//	pacman serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <name>   - Difficulty preset
//	--levels <dir>        - Level directory (default: built-in levels)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A maze-chase arcade game for the terminal. Eat every pellet, avoid
the four ghosts, and turn the tables with a power pellet.

Available commands:
  play     - Play in this terminal
  levels   - List the level files in load order
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --levels ./levels --watch
  pacman serve --ssh :2222
  pacman scores`,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevels, "levels", "", "Directory of .yaml/.csv level files (default: built-in levels)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger from the global flags. Logs go to
// --log-file when set, otherwise to fallback.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openCatalog returns the catalog selected by --levels.
func openCatalog() (*levels.Catalog, error) {
	if flagLevels == "" {
		return levels.Default(), nil
	}
	return levels.Open(flagLevels)
}

// applyGameFlags hands the game flags to the pacman package before any
// game is created.
func applyGameFlags(logger *log.Logger, cat *levels.Catalog) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)
	pacman.SetCatalog(cat)
	pacman.SetLogger(logger)
	return nil
}
