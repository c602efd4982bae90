package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Segment is one cell of the snake. Direction is the way the segment moves
// on the next tick, which for body segments lags one tick behind the
// segment in front.
type Segment struct {
	Position  core.Position
	Direction core.Direction
}

// advance moves the segment one cell along its stored direction.
func (s *Segment) advance() {
	s.Position = s.Position.Move(s.Direction)
}
