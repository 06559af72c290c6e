package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// KeyMap defines the in-game key bindings.
// It also feeds the help footer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Menu       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Menu, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys
// steer; enter or space confirms; esc or p toggles the menu.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap()}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.Keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.Keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.Keys.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, km.Keys.Menu):
		return core.ActionMenu, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
