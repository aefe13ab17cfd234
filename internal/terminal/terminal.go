package terminal

import (
	"errors"
	"fmt"

	"tilde/internal/domain"
)

// ErrClosed is returned once the terminal has been restored and can no
// longer be read from or drawn to.
var ErrClosed = errors.New("terminal closed")

// IOError reports a failure of the underlying terminal channel
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Role tags a piece of text with what it represents, so the backend can pick
// a style for it without the renderer knowing about colors.
type Role int

const (
	RoleText Role = iota
	RoleLineNumber
	RoleBanner
	RoleTilde
	RoleMessage
)

// Span is a run of text drawn with a single role
type Span struct {
	Text string
	Role Role
}

// CursorShape is the glyph used to draw the terminal cursor
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorBar
)

func (c CursorShape) String() string {
	if c == CursorBar {
		return "bar"
	}
	return "block"
}

// Terminal is the raw terminal surface an editing session draws on.
// Drawing calls are buffered until Flush.
type Terminal interface {
	// Size returns the current width and height in cells
	Size() (width, height int)
	// ReadKey blocks until the next key is available
	ReadKey() (Key, error)
	ClearScreen()
	ClearLine(row int)
	// Print draws spans left to right on row, starting at column 0
	Print(row int, spans ...Span)
	HideCursor()
	ShowCursor()
	MoveCursor(pos domain.Position)
	SetCursorShape(shape CursorShape)
	Flush() error
}
