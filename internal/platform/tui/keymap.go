package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	if action := km.MapKey(msg); action != core.ActionNone {
		frame.Set(action)
	}
}
