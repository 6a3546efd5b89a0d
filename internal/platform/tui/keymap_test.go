package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shred/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{" ", core.ActionJump},
		{"j", core.ActionTrick1},
		{"k", core.ActionTrick2},
		{"l", core.ActionTrick3},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.action {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.key, action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v quit=%v, expected quit", key, action, isQuit)
		}
	}
}

func TestIsHoldable(t *testing.T) {
	km := NewKeyMapper()

	holdable := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}
	for _, a := range holdable {
		if !km.IsHoldable(a) {
			t.Errorf("%v should be holdable", a)
		}
	}

	edge := []core.Action{core.ActionJump, core.ActionTrick1, core.ActionPause, core.ActionRestart}
	for _, a := range edge {
		if km.IsHoldable(a) {
			t.Errorf("%v should be edge-triggered", a)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"w", MenuActionUp},
		{"k", MenuActionUp},
		{"up", MenuActionUp},
		{"s", MenuActionDown},
		{"j", MenuActionDown},
		{"down", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"b", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
