// Package levels locates and loads Pac-Man maze files. A Catalog lists the
// level files of a directory (or the embedded set) in name order; a Cursor
// walks that list for one running game.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels/formats"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

//go:embed data/*
var embeddedFS embed.FS

// ErrNoLevels is returned when a catalog holds no level files.
var ErrNoLevels = errors.New("levels: no level files")

// Catalog is the sorted list of level files available to a game.
// Safe for concurrent use; the file list may be refreshed while games run.
type Catalog struct {
	fsys fs.FS
	dir  string

	mu    sync.RWMutex
	names []string
}

// NewCatalog scans the top level of fsys for level files.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{fsys: fsys}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open creates a catalog over a directory on disk. A leading ~ is expanded.
func Open(dir string) (*Catalog, error) {
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("levels: failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}

	c, err := NewCatalog(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%w (dir %s)", err, dir)
	}
	c.dir = dir
	return c, nil
}

// Default returns a catalog over the built-in levels.
func Default() *Catalog {
	sub, err := fs.Sub(embeddedFS, "data")
	if err != nil {
		panic(err)
	}
	c, err := NewCatalog(sub)
	if err != nil {
		panic(err)
	}
	return c
}

// Dir returns the directory backing the catalog, or "" for the built-in set.
func (c *Catalog) Dir() string {
	return c.dir
}

// Refresh rescans the file list. On failure, or when no level files remain,
// the previous list is kept.
func (c *Catalog) Refresh() error {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return fmt.Errorf("levels: scan: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return ErrNoLevels
	}
	sort.Strings(names)

	c.mu.Lock()
	c.names = names
	c.mu.Unlock()
	return nil
}

// Names returns the level file names in load order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of level files.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// Load reads and parses one level file. Every call re-reads the file, so
// edits are picked up on the next load.
func (c *Catalog) Load(name string) (*maze.Level, error) {
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", name, err)
	}

	lvl, err := parseByExtension(name, data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
	}
	return lvl, nil
}

// nameAt returns the file at index i modulo the list length.
func (c *Catalog) nameAt(i int) (string, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.names) == 0 {
		return "", 0, ErrNoLevels
	}
	i %= len(c.names)
	return c.names[i], i, nil
}

// Cursor returns a new cursor positioned before the first level.
func (c *Catalog) Cursor() *Cursor {
	return &Cursor{cat: c}
}

// Cursor walks a catalog for one game. Next wraps to the first level after
// the last one. Not safe for concurrent use.
type Cursor struct {
	cat     *Catalog
	current int
	name    string
}

// First rewinds to the first level and loads it.
func (cu *Cursor) First() (*maze.Level, error) {
	return cu.loadAt(0)
}

// Next advances to the following level and loads it.
func (cu *Cursor) Next() (*maze.Level, error) {
	return cu.loadAt(cu.current + 1)
}

// Current returns the file name of the last loaded level.
func (cu *Cursor) Current() string {
	return cu.name
}

func (cu *Cursor) loadAt(i int) (*maze.Level, error) {
	name, idx, err := cu.cat.nameAt(i)
	if err != nil {
		return nil, err
	}
	lvl, err := cu.cat.Load(name)
	if err != nil {
		return nil, err
	}
	cu.current = idx
	cu.name = name
	return lvl, nil
}

// IsLevelFile reports whether a file name has a supported extension.
func IsLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(name string, data []byte) (*maze.Level, error) {
	ext := strings.ToLower(path.Ext(name))
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(base, data)
	case ".csv":
		return formats.ParseCSV(base, data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
