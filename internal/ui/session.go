package ui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"tilde/internal/domain"
	"tilde/internal/eventbus"
	"tilde/internal/terminal"
	"tilde/internal/ui/input"
	inputtypes "tilde/internal/ui/input/types"
	"tilde/internal/ui/keys"
	"tilde/internal/ui/logic"
	"tilde/internal/ui/state"
	"tilde/internal/ui/views"
)

// Session is the editing loop. Each iteration draws the whole screen, waits
// for one key and applies it. It runs on a single goroutine.
type Session struct {
	term     terminal.Terminal
	doc      views.Document
	bus      eventbus.EventBus
	state    *state.SessionState
	renderer *views.Renderer
	input    *input.Handler
}

// NewSession creates a session editing doc on term. A nil bus disables
// event publishing.
func NewSession(term terminal.Terminal, doc views.Document, renderer *views.Renderer, km *keys.KeyMap, bus eventbus.EventBus) *Session {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Session{
		term:     term,
		doc:      doc,
		bus:      bus,
		state:    state.NewSessionState(),
		renderer: renderer,
		input:    input.New(km),
	}
}

// State returns a snapshot of the session state
func (s *Session) State() state.SessionState {
	return *s.state
}

// Run iterates until the user quits or the terminal fails. A terminal
// error ends the session and is returned wrapped.
func (s *Session) Run() error {
	s.applyActions(s.input.EnterActions(s.state.CurrentMode(), s.state))

	for {
		done, err := s.RunIteration()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// RunIteration renders once and, unless the session is quitting, reads and
// applies one key. It reports true once the final frame has been drawn.
func (s *Session) RunIteration() (bool, error) {
	if err := s.render(); err != nil {
		return true, s.fail(err)
	}
	if s.state.Quit {
		return true, nil
	}

	k, err := s.term.ReadKey()
	if err != nil {
		return true, s.fail(fmt.Errorf("failed to read key: %w", err))
	}

	s.applyActions(s.input.HandleKey(k, s.state))
	return false, nil
}

// fail leaves a blank screen behind before the error travels up
func (s *Session) fail(err error) error {
	log.Error("session aborted", "err", err)
	s.term.ClearScreen()
	_ = s.term.Flush()
	return err
}

// render draws one frame. The cursor is hidden while drawing and shown
// again before the flush.
func (s *Session) render() error {
	s.term.HideCursor()
	s.term.MoveCursor(domain.Position{})

	if s.state.Quit {
		s.term.ClearScreen()
		s.term.Print(0, terminal.Span{Text: views.QuitMessage, Role: terminal.RoleMessage})
		s.term.SetCursorShape(terminal.CursorBlock)
	} else {
		s.drawRows()
		s.term.MoveCursor(s.state.Cursor)
	}

	s.term.ShowCursor()
	if err := s.term.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}
	return nil
}

func (s *Session) drawRows() {
	width, height := s.term.Size()
	rows := s.renderer.Rows(s.doc, width, height)

	for y := 0; y < height-1; y++ {
		s.term.ClearLine(y)
		if y < len(rows) {
			s.term.Print(y, rows[y].Spans...)
		}
	}
	if height > 0 {
		s.term.ClearLine(height - 1)
	}
}

func (s *Session) applyActions(actions []inputtypes.Action) {
	for _, action := range actions {
		s.processAction(action)
	}
}

func (s *Session) processAction(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		s.state.RequestQuit()
		s.bus.Publish(eventbus.QuitRequestedEvent{})

	case inputtypes.ChangeModeAction:
		if prev := s.state.SetMode(a.Mode); prev != a.Mode {
			s.bus.Publish(eventbus.ModeChangedEvent{From: prev, To: a.Mode})
		}

	case inputtypes.NavigateAction:
		if s.state.Mode != domain.ModeNavigation {
			return
		}
		width, height := s.term.Size()
		next := logic.MoveCursor(s.state.Cursor, a.Direction, width, height)
		if next != s.state.Cursor {
			prev := s.state.SetCursor(next)
			s.bus.Publish(eventbus.CursorMovedEvent{From: prev, To: next})
		}

	case inputtypes.SetCursorShapeAction:
		s.term.SetCursorShape(a.Shape)

	default:
		log.Debug("ignoring action", "type", action.Type())
	}
}
