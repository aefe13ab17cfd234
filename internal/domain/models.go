package domain

// Position is a cursor location in screen cells. X is the column, Y the row.
type Position struct {
	X int
	Y int
}

// Mode represents the active input mode of an editing session
type Mode int

const (
	ModeNavigation Mode = iota
	ModeInsertion
)

func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "navigation"
	case ModeInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// Direction represents a cursor movement direction
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)
