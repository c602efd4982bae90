package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// scriptedRand returns the queued values (mod n) and 0 once exhausted.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

// newTestState builds a state with an explicit body and apple.
func newTestState(t *testing.T, board core.Position, minLen int, segs []Segment, apple core.Position) *State {
	t.Helper()

	settings := Settings{Board: board, MinLength: minLen, AppleRetries: DefaultAppleRetries}
	if err := settings.Validate(); err != nil {
		t.Fatalf("invalid test settings: %v", err)
	}

	return &State{
		settings: settings,
		rng:      &scriptedRand{},
		segments: append([]Segment(nil), segs...),
		apple:    apple,
		hasApple: true,
	}
}

func seg(x, y int, d core.Direction) Segment {
	return Segment{Position: core.Pos(x, y), Direction: d}
}

// checkInvariants verifies the quiescent-state properties of a live round.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()

	seen := make(map[core.Position]bool, len(s.segments))
	for i, sg := range s.segments {
		if !sg.Position.In(s.settings.Board) {
			t.Fatalf("segment %d at %v is off the board", i, sg.Position)
		}
		if seen[sg.Position] {
			t.Fatalf("segment %d at %v overlaps another segment", i, sg.Position)
		}
		seen[sg.Position] = true

		if i > 0 {
			prev := s.segments[i-1].Position
			if sg.Position.Move(sg.Direction) != prev {
				t.Fatalf("segment %d at %v heading %v does not lead to %v", i, sg.Position, sg.Direction, prev)
			}
		}
	}

	if s.hasApple {
		if !s.apple.In(s.settings.Board) {
			t.Fatalf("apple %v is off the board", s.apple)
		}
		if seen[s.apple] {
			t.Fatalf("apple %v is on the snake", s.apple)
		}
	}
}
