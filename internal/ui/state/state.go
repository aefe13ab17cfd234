package state

import (
	"tilde/internal/domain"
)

// SessionState contains all the mutable editor state
type SessionState struct {
	// Quit is set once the user asked to leave; the loop stops after the
	// final render.
	Quit bool

	Mode   domain.Mode
	Cursor domain.Position // column/row on screen, origin top-left
}

// NewSessionState creates the state a session starts in
func NewSessionState() *SessionState {
	return &SessionState{
		Mode: domain.ModeNavigation,
	}
}

// CurrentMode returns the active input mode
func (s *SessionState) CurrentMode() domain.Mode {
	return s.Mode
}

// CursorPosition returns the current cursor position
func (s *SessionState) CursorPosition() domain.Position {
	return s.Cursor
}

// SetMode changes the mode and reports the previous one
func (s *SessionState) SetMode(mode domain.Mode) domain.Mode {
	prev := s.Mode
	s.Mode = mode
	return prev
}

// SetCursor moves the cursor and reports the previous position
func (s *SessionState) SetCursor(pos domain.Position) domain.Position {
	prev := s.Cursor
	s.Cursor = pos
	return prev
}

// RequestQuit marks the session as finished
func (s *SessionState) RequestQuit() {
	s.Quit = true
}
