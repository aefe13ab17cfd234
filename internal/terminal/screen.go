package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tilde/internal/domain"
)

// Theme maps render roles to tcell styles. Missing roles use the default style.
type Theme map[Role]tcell.Style

// Foreground returns the default style with the named color as foreground.
// Names follow tcell.GetColor: "teal", "purple", "#ff8800" and so on.
func Foreground(color string) tcell.Style {
	if color == "" {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.GetColor(color))
}

func (t Theme) style(role Role) tcell.Style {
	if s, ok := t[role]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Screen is a Terminal backed by a tcell screen
type Screen struct {
	screen tcell.Screen
	theme  Theme

	cursor        domain.Position
	cursorVisible bool

	closed    atomic.Bool
	closeOnce sync.Once
}

var _ Terminal = (*Screen)(nil)

// NewScreen puts the controlling terminal into raw mode and returns a Screen
// drawing on it. Close must be called to restore the terminal.
func NewScreen(theme Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	return NewScreenFrom(s, theme)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen, theme Theme) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, &IOError{Op: "init", Err: err}
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Screen{
		screen:        s,
		theme:         theme,
		cursorVisible: true,
	}, nil
}

// Size returns the current width and height in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// ReadKey blocks until a key is pressed. A resize wakes it up with KeyNone
// so the caller redraws at the new size.
func (s *Screen) ReadKey() (Key, error) {
	for {
		if s.closed.Load() {
			return KeyNone, ErrClosed
		}
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return KeyNone, ErrClosed
		case *tcell.EventKey:
			return KeyFromEvent(ev), nil
		case *tcell.EventResize:
			s.screen.Sync()
			return KeyNone, nil
		case *tcell.EventError:
			return KeyNone, &IOError{Op: "read", Err: ev}
		}
	}
}

// ClearScreen blanks every cell
func (s *Screen) ClearScreen() {
	s.screen.Clear()
}

// ClearLine blanks every cell of row
func (s *Screen) ClearLine(row int) {
	width, _ := s.screen.Size()
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

// Print draws spans on row from column 0. Text past the right edge is cut.
func (s *Screen) Print(row int, spans ...Span) {
	width, _ := s.screen.Size()
	x := 0
	for _, span := range spans {
		style := s.theme.style(span.Role)
		for _, r := range span.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > width {
				return
			}
			s.screen.SetContent(x, row, r, nil, style)
			x += w
		}
	}
}

// HideCursor hides the cursor glyph
func (s *Screen) HideCursor() {
	s.cursorVisible = false
	s.screen.HideCursor()
}

// ShowCursor shows the cursor glyph at the last position given to MoveCursor
func (s *Screen) ShowCursor() {
	s.cursorVisible = true
	s.screen.ShowCursor(s.cursor.X, s.cursor.Y)
}

// MoveCursor positions the cursor
func (s *Screen) MoveCursor(pos domain.Position) {
	s.cursor = pos
	if s.cursorVisible {
		s.screen.ShowCursor(pos.X, pos.Y)
	}
}

// SetCursorShape switches between the block and bar cursor glyphs
func (s *Screen) SetCursorShape(shape CursorShape) {
	switch shape {
	case CursorBar:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		s.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

// Flush writes all pending changes to the terminal
func (s *Screen) Flush() error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.screen.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once and from
// another goroutine.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.screen.SetCursorStyle(tcell.CursorStyleDefault)
		s.screen.Fini()
	})
}

// HexColor converts a color name understood by tcell into "#rrggbb" so the
// same theme can style text outside the screen. Unknown names return "".
func HexColor(name string) string {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return ""
	}
	hex := c.Hex()
	if hex < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", hex)
}
