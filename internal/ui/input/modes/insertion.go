package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"tilde/internal/terminal"
	"tilde/internal/ui/input/types"
	"tilde/internal/ui/keys"
)

// InsertionMode will receive typed text once editing exists. For now it only
// leaves again: movement keys are swallowed.
type InsertionMode struct {
	keys *keys.KeyMap
}

func NewInsertionMode(km *keys.KeyMap) *InsertionMode {
	return &InsertionMode{keys: km}
}

func (m *InsertionMode) Name() string {
	return "insertion"
}

func (m *InsertionMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetCursorShapeAction{Shape: terminal.CursorBar}}
}

func (m *InsertionMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InsertionMode) HandleKey(k terminal.Key, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(k, m.keys.Escape):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNavigation}}, true
	}
	return nil, false
}
