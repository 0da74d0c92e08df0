package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-diver/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"w":      core.ActionUp,
		"up":     core.ActionUp,
		"s":      core.ActionDown,
		"down":   core.ActionDown,
		"d":      core.ActionBoost,
		"right":  core.ActionBoost,
		" ":      core.ActionBoost,
		"enter":  core.ActionConfirm,
		"b":      core.ActionBack,
		"esc":    core.ActionBack,
		"r":      core.ActionRestart,
		"p":      core.ActionPause,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey returns the action for a key (ActionNone when unbound) and whether
// it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}
