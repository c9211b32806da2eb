package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the actions it triggers. A key may map
// to more than one action because the two games read different subsets of the
// action set. The second return reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) ([]core.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true

	case "a", "left":
		return []core.Action{core.ActionMoveLeft}, false
	case "d", "right":
		return []core.Action{core.ActionMoveRight}, false
	case "w", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "down":
		return []core.Action{core.ActionDown}, false

	case " ", "z":
		return []core.Action{core.ActionJump}, false
	case "x", "c":
		return []core.Action{core.ActionInhale}, false
	case "v":
		return []core.Action{core.ActionAbility}, false
	case "g":
		return []core.Action{core.ActionDrop}, false
	case "tab":
		return []core.Action{core.ActionCycle}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false

	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}
