package logic

import (
	"tilde/internal/domain"
)

// MoveCursor returns pos moved one cell in dir on a width x height screen.
// The bottom row is never entered and a step that would leave the allowed
// area is dropped, so the result is pos unchanged.
//
// TODO: clamp X to the width of the line under the cursor once the session
// tracks which document line each row shows.
func MoveCursor(pos domain.Position, dir domain.Direction, width, height int) domain.Position {
	switch dir {
	case domain.DirectionLeft:
		if pos.X > 0 {
			pos.X--
		}
	case domain.DirectionRight:
		if pos.X < width-1 {
			pos.X++
		}
	case domain.DirectionUp:
		if pos.Y > 0 {
			pos.Y--
		}
	case domain.DirectionDown:
		if pos.Y < height-2 {
			pos.Y++
		}
	}
	return pos
}
