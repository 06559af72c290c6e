package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu, false},
		{"p", runeKey('p'), core.ActionMenu, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameMerges(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Fatal("left should not quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionUp) {
		t.Errorf("frame = %v, expected left and up", frame.Actions)
	}
	if len(frame.Actions) != 2 {
		t.Errorf("unbound key should not set an action: %v", frame.Actions)
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	n := 0
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	if n != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", n)
	}
}
