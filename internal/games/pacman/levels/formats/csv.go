package formats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// Numeric tile codes of the CSV format.
const (
	codeEmpty = iota
	codeWall
	codePlayerStart
	codeGate
	codePellet
	codePowerPellet
	codeEatenPellet
	codeEatenPowerPellet
	codeChaserStart
	codeAmbusherStart
	codeErraticStart
	codeFlankerStart
)

var csvCells = map[int]maze.Cell{
	codeEmpty:            maze.CellEmpty,
	codeWall:             maze.CellWall,
	codePlayerStart:      maze.CellPlayerStart,
	codeGate:             maze.CellGate,
	codePellet:           maze.CellPellet,
	codePowerPellet:      maze.CellPowerPellet,
	codeEatenPellet:      maze.CellEmpty,
	codeEatenPowerPellet: maze.CellEmpty,
	codeChaserStart:      maze.CellChaserStart,
	codeAmbusherStart:    maze.CellAmbusherStart,
	codeErraticStart:     maze.CellErraticStart,
	codeFlankerStart:     maze.CellFlankerStart,
}

// ParseCSV parses a numeric tile grid, one row per record.
func ParseCSV(name string, data []byte) (*maze.Level, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read: %w", err)
	}

	cells := make([][]maze.Cell, 0, len(records))
	for y, rec := range records {
		row := make([]maze.Cell, 0, len(rec))
		for x, field := range rec {
			code, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: %s: bad tile code %q at (%d, %d)", maze.ErrMalformed, name, field, x, y)
			}
			c, ok := csvCells[code]
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown tile code %d at (%d, %d)", maze.ErrMalformed, name, code, x, y)
			}
			row = append(row, c)
		}
		cells = append(cells, row)
	}

	return maze.Build(name, cells)
}
