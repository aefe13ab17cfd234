package types

import (
	"tilde/internal/domain"
	"tilde/internal/terminal"
)

// Navigation actions
type NavigateAction struct {
	Direction domain.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// SetCursorShapeAction asks for a different cursor glyph
type SetCursorShapeAction struct {
	Shape terminal.CursorShape
}

func (a SetCursorShapeAction) Type() string { return "set_cursor_shape" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
