package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meteors/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Unbound keys map to ActionAnyKey so the title screen can react to them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionRotateLeft, false
	case "d", "right":
		return core.ActionRotateRight, false
	case " ":
		return core.ActionBomb, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "tab":
		return core.ActionDebug, false
	case "r":
		return core.ActionToggleRandom, false
	case "+", "=":
		return core.ActionSpawnFaster, false
	case "-", "_":
		return core.ActionSpawnSlower, false
	case "ctrl+s":
		return core.ActionNone, false
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.WaveAction(int(key[0] - '0')), false
	}

	return core.ActionAnyKey, false
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
