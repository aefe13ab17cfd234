package types

import (
	"tilde/internal/domain"
	"tilde/internal/terminal"
)

// Mode represents an input mode
type Mode = domain.Mode

const (
	ModeNavigation = domain.ModeNavigation
	ModeInsertion  = domain.ModeInsertion
)

// Action represents a command the session should execute
type Action interface {
	Type() string
}

// Context provides read-only access to session state needed for input handling
type Context interface {
	CurrentMode() Mode
	CursorPosition() domain.Position
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key and returns actions and whether the key was consumed
	HandleKey(k terminal.Key, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
