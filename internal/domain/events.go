package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventModeChanged   EventType = "ModeChanged"
	EventCursorMoved   EventType = "CursorMoved"
	EventQuitRequested EventType = "QuitRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ModeChangedEvent is emitted after the session switched to a different
// input mode
type ModeChangedEvent struct {
	From Mode
	To   Mode
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// CursorMovedEvent is emitted when a movement command changed the cursor
type CursorMovedEvent struct {
	From Position
	To   Position
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// QuitRequestedEvent is emitted when the quit command is received
type QuitRequestedEvent struct{}

func (e QuitRequestedEvent) Type() EventType { return EventQuitRequested }
