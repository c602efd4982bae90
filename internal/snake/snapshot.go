package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the round for renderers and tests.
// Mutating it does not affect the State it came from.
type Snapshot struct {
	Tick     uint64
	Score    int
	Body     []core.Position // Head first
	Heading  core.Direction
	Apple    core.Position
	HasApple bool
	Board    core.Position
	Outcome  Outcome
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	body := make([]core.Position, len(s.segments))
	for i, seg := range s.segments {
		body[i] = seg.Position
	}

	return Snapshot{
		Tick:     s.ticks,
		Score:    s.score,
		Body:     body,
		Heading:  s.segments[0].Direction,
		Apple:    s.apple,
		HasApple: s.hasApple,
		Board:    s.settings.Board,
		Outcome:  s.outcome,
	}
}

// Len returns the snake length.
func (snap Snapshot) Len() int {
	return len(snap.Body)
}

// Head returns the head position.
func (snap Snapshot) Head() core.Position {
	if len(snap.Body) == 0 {
		return core.Position{}
	}
	return snap.Body[0]
}
