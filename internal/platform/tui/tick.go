// Package tui runs a registered game in a terminal with Bubble Tea: the
// fixed-rate tick loop, key mapping, colour rendering, the scoreboard and
// per-connection SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the time between ticks; non-positive rates fall
// back to 60 per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
