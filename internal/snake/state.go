package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rand is the random source used for apple placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is one round of snake. It exclusively owns the body and the apple;
// all mutation goes through Tick.
type State struct {
	settings Settings
	rng      Rand

	segments []Segment // Head at index 0, tail last
	apple    core.Position
	hasApple bool
	score    int
	ticks    uint64
	outcome  Outcome
}

// New starts a round: a single segment in the middle of the board facing
// up, and an apple on a random free cell. The snake grows to
// settings.MinLength over the first ticks.
func New(settings Settings, rng Rand) (*State, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfiguration)
	}

	s := &State{
		settings: settings,
		rng:      rng,
		segments: make([]Segment, 1, settings.MinLength+1),
	}
	s.segments[0] = Segment{
		Position:  core.Pos((settings.Board.X+1)/2, (settings.Board.Y+1)/2),
		Direction: core.DirUp,
	}
	s.placeApple()
	return s, nil
}

// Tick advances the round by one cell. intent is the requested head
// direction, core.DirNone for none; a reversal of the current heading is
// ignored. Once a terminal outcome has been reported, Tick returns it again
// without changing anything.
func (s *State) Tick(intent core.Direction) Outcome {
	if s.outcome.IsTerminal() {
		return s.outcome
	}
	s.ticks++

	head := &s.segments[0]
	if intent.Valid() && intent != head.Direction.Opposite() {
		head.Direction = intent
	}
	head.advance()

	ate := s.hasApple && head.Position == s.apple
	if ate {
		s.score++
		s.hasApple = false
		s.grow()
	}
	if len(s.segments) < s.settings.MinLength {
		s.grow()
	}

	if !s.segments[0].Position.In(s.settings.Board) {
		return s.finish(LeftBoard)
	}

	s.propagate()

	if s.bodyContains(s.segments[0].Position) {
		return s.finish(SelfCollision)
	}

	// The apple is placed once the body has settled so it cannot land on
	// the cell the neck just moved into.
	if ate && !s.placeApple() {
		return s.finish(BoardFull)
	}

	if ate {
		s.outcome = AteApple
	} else {
		s.outcome = Continue
	}
	return s.outcome
}

// propagate moves every body segment along its stored direction and hands
// it the direction its predecessor held before this tick.
func (s *State) propagate() {
	carried := s.segments[0].Direction
	for i := 1; i < len(s.segments); i++ {
		seg := &s.segments[i]
		seg.advance()
		seg.Direction, carried = carried, seg.Direction
	}
}

// grow appends a copy of the tail moved one cell backwards. A lone head has
// no trailing history yet, so the first added segment is pushed back twice;
// after that tick's propagation it sits right behind the head.
func (s *State) grow() {
	tail := s.segments[len(s.segments)-1]
	back := tail.Direction.Opposite()

	tail.Position = tail.Position.Move(back)
	if len(s.segments) == 1 {
		tail.Position = tail.Position.Move(back)
	}
	s.segments = append(s.segments, tail)
}

func (s *State) finish(o Outcome) Outcome {
	s.outcome = o
	return o
}

// bodyContains reports whether any non-head segment occupies p.
func (s *State) bodyContains(p core.Position) bool {
	for _, seg := range s.segments[1:] {
		if seg.Position == p {
			return true
		}
	}
	return false
}

// occupied reports whether any segment, head included, occupies p.
func (s *State) occupied(p core.Position) bool {
	return s.segments[0].Position == p || s.bodyContains(p)
}

// Settings returns the settings the round was created with.
func (s *State) Settings() Settings {
	return s.settings
}

// Head returns the head position.
func (s *State) Head() core.Position {
	return s.segments[0].Position
}

// Heading returns the direction the head will move next.
func (s *State) Heading() core.Direction {
	return s.segments[0].Direction
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.segments)
}

// Score returns the number of apples eaten.
func (s *State) Score() int {
	return s.score
}

// Apple returns the apple position; ok is false once the board is full.
func (s *State) Apple() (pos core.Position, ok bool) {
	return s.apple, s.hasApple
}

// Ticks returns the number of ticks computed so far.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// Outcome returns the outcome of the last tick (Continue before the first).
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Over reports whether the round has ended.
func (s *State) Over() bool {
	return s.outcome.IsTerminal()
}
