package maze

import (
	"fmt"
	"strings"
)

// Cell is a raw level cell as read from a level file, before start markers
// are extracted into the Level.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellGate
	CellPellet
	CellPowerPellet
	CellPlayerStart
	CellChaserStart
	CellAmbusherStart
	CellFlankerStart
	CellErraticStart
)

// ghostSlot maps a ghost start marker to its slot in Level.GhostStarts.
func (c Cell) ghostSlot() (int, bool) {
	switch c {
	case CellChaserStart:
		return 0, true
	case CellAmbusherStart:
		return 1, true
	case CellFlankerStart:
		return 2, true
	case CellErraticStart:
		return 3, true
	}
	return 0, false
}

// ASCII layout characters.
const (
	RuneWall        = '#'
	RuneGate        = '='
	RunePellet      = '.'
	RunePowerPellet = '*'
	RuneEmpty       = ' '
	RunePlayer      = 'P'
	RuneChaser      = 'r'
	RuneAmbusher    = 'p'
	RuneFlanker     = 'c'
	RuneErratic     = 'o'
)

// CellFromRune decodes an ASCII layout character.
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case RuneWall:
		return CellWall, true
	case RuneGate:
		return CellGate, true
	case RunePellet:
		return CellPellet, true
	case RunePowerPellet:
		return CellPowerPellet, true
	case RuneEmpty:
		return CellEmpty, true
	case RunePlayer:
		return CellPlayerStart, true
	case RuneChaser:
		return CellChaserStart, true
	case RuneAmbusher:
		return CellAmbusherStart, true
	case RuneFlanker:
		return CellFlankerStart, true
	case RuneErratic:
		return CellErraticStart, true
	}
	return CellEmpty, false
}

// ParseRows builds a level from ASCII rows. Trailing blank rows are ignored;
// shorter rows are padded with empty cells.
func ParseRows(name string, rows []string) (*Level, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, width)
		for x, r := range []rune(row) {
			c, ok := CellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown tile %q at (%d, %d)", ErrMalformed, name, r, x, y)
			}
			cells[y][x] = c
		}
	}

	return Build(name, cells)
}

// Build converts raw cells into a Level. Start markers are stripped to empty
// tiles and cached, the first gate in row-major order becomes the gate tile
// and pellets are counted.
func Build(name string, cells [][]Cell) (*Level, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: %s: empty grid", ErrMalformed, name)
	}

	width := len(cells[0])
	l := &Level{
		Name:   name,
		Width:  width,
		Height: len(cells),
		tiles:  make([]TileKind, width*len(cells)),
	}

	var (
		havePlayer bool
		haveGate   bool
		haveGhost  [GhostSlots]bool
	)

	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: %s: row %d has %d cells, want %d", ErrMalformed, name, y, len(row), width)
		}
		for x, c := range row {
			here := Coord{X: x, Y: y}
			kind := TileEmpty

			switch c {
			case CellWall:
				kind = TileWall
			case CellGate:
				kind = TileGate
				if !haveGate {
					l.Gate = here
					haveGate = true
				}
			case CellPellet:
				kind = TilePellet
				l.PelletCount++
			case CellPowerPellet:
				kind = TilePowerPellet
				l.PelletCount++
			case CellPlayerStart:
				if havePlayer {
					return nil, fmt.Errorf("%w: %s: duplicate player start at (%d, %d)", ErrMalformed, name, x, y)
				}
				l.PlayerStart = here
				havePlayer = true
			case CellEmpty:
			default:
				slot, ok := c.ghostSlot()
				if !ok {
					return nil, fmt.Errorf("%w: %s: unknown cell %d at (%d, %d)", ErrMalformed, name, c, x, y)
				}
				if haveGhost[slot] {
					return nil, fmt.Errorf("%w: %s: duplicate ghost start %d at (%d, %d)", ErrMalformed, name, slot, x, y)
				}
				l.GhostStarts[slot] = here
				haveGhost[slot] = true
			}

			l.tiles[y*width+x] = kind
		}
	}

	switch {
	case !havePlayer:
		return nil, fmt.Errorf("%w: %s: no player start", ErrMalformed, name)
	case !haveGate:
		return nil, fmt.Errorf("%w: %s: no ghost house gate", ErrMalformed, name)
	case l.PelletCount == 0:
		return nil, fmt.Errorf("%w: %s: no pellets", ErrMalformed, name)
	}
	for slot, ok := range haveGhost {
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing ghost start %d", ErrMalformed, name, slot)
		}
	}

	return l, nil
}
