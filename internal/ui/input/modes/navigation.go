package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"tilde/internal/domain"
	"tilde/internal/terminal"
	"tilde/internal/ui/input/types"
	"tilde/internal/ui/keys"
)

// NavigationMode moves the cursor and is the only mode that does so
type NavigationMode struct {
	keys *keys.KeyMap
}

func NewNavigationMode(km *keys.KeyMap) *NavigationMode {
	return &NavigationMode{keys: km}
}

func (m *NavigationMode) Name() string {
	return "navigation"
}

func (m *NavigationMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetCursorShapeAction{Shape: terminal.CursorBlock}}
}

func (m *NavigationMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NavigationMode) HandleKey(k terminal.Key, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(k, m.keys.Escape):
		// Re-entering restores the block cursor even if it was changed elsewhere
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNavigation}}, true

	case key.Matches(k, m.keys.Insert):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInsertion}}, true

	case key.Matches(k, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionLeft}}, true

	case key.Matches(k, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionDown}}, true

	case key.Matches(k, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionUp}}, true

	case key.Matches(k, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionRight}}, true
	}

	return nil, false
}
