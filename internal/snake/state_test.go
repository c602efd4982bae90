package snake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewGame(t *testing.T) {
	s, err := New(DefaultSettings(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if s.Head() != core.Pos(11, 9) {
		t.Errorf("expected head at (11, 9), got %v", s.Head())
	}
	if s.Heading() != core.DirUp {
		t.Errorf("expected initial heading Up, got %v", s.Heading())
	}
	if s.Len() != 1 {
		t.Errorf("expected initial length 1, got %d", s.Len())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if s.Outcome() != Continue || s.Over() {
		t.Errorf("new round should not be over, outcome %v", s.Outcome())
	}
	checkInvariants(t, s)
}

func TestNewGameRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"zero min length", Settings{Board: core.Pos(21, 17), MinLength: 0}},
		{"narrow board", Settings{Board: core.Pos(2, 17), MinLength: 3}},
		{"short board", Settings{Board: core.Pos(21, 2), MinLength: 3}},
		{"oversized board", Settings{Board: core.Pos(100000, 100000), MinLength: 3}},
		{"board one past the limit", Settings{Board: core.Pos(21, MaxBoardSide+1), MinLength: 3}},
		{"negative retries", Settings{Board: core.Pos(21, 17), MinLength: 3, AppleRetries: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.settings, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}

	if _, err := New(DefaultSettings(), nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("nil rng: expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestStartupRamp(t *testing.T) {
	// Apple parked in the top-left corner, far from the snake's column
	s, err := New(DefaultSettings(), &scriptedRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if apple, _ := s.Apple(); apple != core.Pos(1, 1) {
		t.Fatalf("expected apple at (1, 1), got %v", apple)
	}

	if got := s.Tick(core.DirNone); got != Continue {
		t.Fatalf("tick 1: expected Continue, got %v", got)
	}
	if s.Len() != 2 {
		t.Fatalf("tick 1: expected length 2, got %d", s.Len())
	}
	expected := []core.Position{core.Pos(11, 8), core.Pos(11, 9)}
	if body := s.Snapshot().Body; !slices.Equal(body, expected) {
		t.Errorf("tick 1: body = %v, expected %v", body, expected)
	}
	checkInvariants(t, s)

	s.Tick(core.DirNone)
	if s.Len() != 3 {
		t.Fatalf("tick 2: expected length 3, got %d", s.Len())
	}
	expected = []core.Position{core.Pos(11, 7), core.Pos(11, 8), core.Pos(11, 9)}
	if body := s.Snapshot().Body; !slices.Equal(body, expected) {
		t.Errorf("tick 2: body = %v, expected %v", body, expected)
	}
	checkInvariants(t, s)

	// Minimum reached, no further growth without apples
	s.Tick(core.DirNone)
	if s.Len() != 3 {
		t.Errorf("tick 3: expected length 3, got %d", s.Len())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
}

func TestStartupRampWithRandomApple(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s, err := New(DefaultSettings(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		got := s.Tick(core.DirNone)
		if got != Continue && got != AteApple {
			t.Fatalf("seed %d: tick 1 outcome %v", seed, got)
		}
		if s.Len() < 2 {
			t.Fatalf("seed %d: expected length >= 2 after tick 1, got %d", seed, s.Len())
		}
		s.Tick(core.DirNone)
		if s.Len() < MinSnakeLen {
			t.Fatalf("seed %d: expected length >= %d after tick 2, got %d", seed, MinSnakeLen, s.Len())
		}
		checkInvariants(t, s)
	}
}

func TestEatingOnFirstTick(t *testing.T) {
	// Apple directly above the starting head at (11, 8)
	s, err := New(DefaultSettings(), &scriptedRand{vals: []int{10, 7}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if got := s.Tick(core.DirNone); got != AteApple {
		t.Fatalf("expected AteApple, got %v", got)
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	// One segment for the apple, one for the minimum-length top-up
	expected := []core.Position{core.Pos(11, 8), core.Pos(11, 9), core.Pos(11, 10)}
	if body := s.Snapshot().Body; !slices.Equal(body, expected) {
		t.Errorf("body = %v, expected %v", body, expected)
	}
	checkInvariants(t, s)
}

func TestReversalIsIgnored(t *testing.T) {
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(5, 7, core.DirUp),
	}, core.Pos(1, 1))

	if got := s.Tick(core.DirDown); got != Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	if s.Heading() != core.DirUp {
		t.Errorf("heading should stay Up, got %v", s.Heading())
	}
	if s.Head() != core.Pos(5, 4) {
		t.Errorf("head should keep moving up to (5, 4), got %v", s.Head())
	}
}

func TestUnknownIntentIsIgnored(t *testing.T) {
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(5, 7, core.DirUp),
	}, core.Pos(1, 1))

	if got := s.Tick(core.Direction(42)); got != Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	if s.Heading() != core.DirUp || s.Head() != core.Pos(5, 4) {
		t.Errorf("head = %v heading %v, expected (5, 4) heading Up", s.Head(), s.Heading())
	}
	checkInvariants(t, s)
}

func TestTurnFollowsPath(t *testing.T) {
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(5, 7, core.DirUp),
	}, core.Pos(1, 1))

	steps := []struct {
		intent   core.Direction
		expected []core.Position
	}{
		{core.DirRight, []core.Position{core.Pos(6, 5), core.Pos(5, 5), core.Pos(5, 6)}},
		{core.DirNone, []core.Position{core.Pos(7, 5), core.Pos(6, 5), core.Pos(5, 5)}},
		{core.DirDown, []core.Position{core.Pos(7, 6), core.Pos(7, 5), core.Pos(6, 5)}},
		{core.DirNone, []core.Position{core.Pos(7, 7), core.Pos(7, 6), core.Pos(7, 5)}},
	}

	for i, step := range steps {
		if got := s.Tick(step.intent); got != Continue {
			t.Fatalf("step %d: expected Continue, got %v", i, got)
		}
		if body := s.Snapshot().Body; !slices.Equal(body, step.expected) {
			t.Errorf("step %d: body = %v, expected %v", i, body, step.expected)
		}
		checkInvariants(t, s)
	}
}

func TestLeftBoard(t *testing.T) {
	board := core.Pos(21, 17)

	tests := []struct {
		name string
		dir  core.Direction
		head core.Position
	}{
		{"left edge", core.DirLeft, core.Pos(1, 5)},
		{"right edge", core.DirRight, core.Pos(21, 5)},
		{"top edge", core.DirUp, core.Pos(5, 1)},
		{"bottom edge", core.DirDown, core.Pos(5, 17)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			back := tc.dir.Opposite()
			neck := tc.head.Move(back)
			tail := neck.Move(back)
			s := newTestState(t, board, 3, []Segment{
				{Position: tc.head, Direction: tc.dir},
				{Position: neck, Direction: tc.dir},
				{Position: tail, Direction: tc.dir},
			}, core.Pos(11, 9))

			if got := s.Tick(core.DirNone); got != LeftBoard {
				t.Fatalf("expected LeftBoard, got %v", got)
			}
			if !s.Over() {
				t.Error("round should be over")
			}
			// Body is not propagated after leaving the board
			body := s.Snapshot().Body
			if body[1] != neck || body[2] != tail {
				t.Errorf("body moved after LeftBoard: %v", body)
			}
		})
	}
}

func TestLeftBoardScenario(t *testing.T) {
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(1, 5, core.DirLeft),
		seg(2, 5, core.DirLeft),
		seg(3, 5, core.DirLeft),
	}, core.Pos(11, 9))

	if got := s.Tick(core.DirNone); got != LeftBoard {
		t.Fatalf("expected LeftBoard, got %v", got)
	}
	if s.Head() != core.Pos(0, 5) {
		t.Errorf("expected head at (0, 5), got %v", s.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	// Hook shape: turning right puts the head where the last segment arrives
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(6, 6, core.DirLeft),
		seg(6, 5, core.DirDown),
		seg(6, 4, core.DirDown),
	}, core.Pos(1, 1))

	if got := s.Tick(core.DirRight); got != SelfCollision {
		t.Fatalf("expected SelfCollision, got %v", got)
	}
	if !s.Over() {
		t.Error("round should be over")
	}
}

func TestChasingTailIsAllowed(t *testing.T) {
	// 2x2 loop: the tail vacates the cell the head moves into
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(6, 6, core.DirLeft),
		seg(6, 5, core.DirDown),
	}, core.Pos(1, 1))

	if got := s.Tick(core.DirRight); got != Continue {
		t.Fatalf("expected Continue, got %v", got)
	}
	expected := []core.Position{core.Pos(6, 5), core.Pos(5, 5), core.Pos(5, 6), core.Pos(6, 6)}
	if body := s.Snapshot().Body; !slices.Equal(body, expected) {
		t.Errorf("body = %v, expected %v", body, expected)
	}
	checkInvariants(t, s)
}

func TestEatingGrowsByOne(t *testing.T) {
	for _, length := range []int{3, 4, 7} {
		segs := make([]Segment, length)
		for i := range segs {
			segs[i] = seg(5, 5+i, core.DirUp)
		}
		s := newTestState(t, core.Pos(21, 17), 3, segs, core.Pos(5, 4))

		if got := s.Tick(core.DirNone); got != AteApple {
			t.Fatalf("length %d: expected AteApple, got %v", length, got)
		}
		if s.Len() != length+1 {
			t.Errorf("length %d: expected length %d after eating, got %d", length, length+1, s.Len())
		}
		if s.Score() != 1 {
			t.Errorf("length %d: expected score 1, got %d", length, s.Score())
		}
		// New tail occupies the old tail cell
		if tail := s.Snapshot().Body[length]; tail != core.Pos(5, 5+length-1) {
			t.Errorf("length %d: tail at %v", length, tail)
		}
		checkInvariants(t, s)
	}
}

func TestAppleNotPlacedUnderNeck(t *testing.T) {
	// The replacement apple would land on the old head cell, which the neck
	// occupies once the body has moved. Placement must see the settled body.
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(5, 5, core.DirUp),
		seg(5, 6, core.DirUp),
		seg(5, 7, core.DirUp),
	}, core.Pos(5, 4))
	s.rng = &scriptedRand{vals: []int{4, 4, 0, 0}} // (5, 5) first, then (1, 1)

	if got := s.Tick(core.DirNone); got != AteApple {
		t.Fatalf("expected AteApple, got %v", got)
	}
	if apple, _ := s.Apple(); apple != core.Pos(1, 1) {
		t.Errorf("expected apple at (1, 1), got %v", apple)
	}
	checkInvariants(t, s)
}

func TestBoardFull(t *testing.T) {
	s := newTestState(t, core.Pos(3, 1), 1, []Segment{
		seg(2, 1, core.DirRight),
		seg(1, 1, core.DirRight),
	}, core.Pos(3, 1))

	if got := s.Tick(core.DirNone); got != BoardFull {
		t.Fatalf("expected BoardFull, got %v", got)
	}
	if s.Score() != 1 || s.Len() != 3 {
		t.Errorf("expected score 1 and length 3, got %d and %d", s.Score(), s.Len())
	}
	if _, ok := s.Apple(); ok {
		t.Error("full board should have no apple")
	}
	if !s.Over() {
		t.Error("round should be over")
	}
}

func TestTerminalOutcomeIsSticky(t *testing.T) {
	s := newTestState(t, core.Pos(21, 17), 3, []Segment{
		seg(1, 5, core.DirLeft),
		seg(2, 5, core.DirLeft),
		seg(3, 5, core.DirLeft),
	}, core.Pos(11, 9))

	s.Tick(core.DirNone)
	before := s.Snapshot()

	if got := s.Tick(core.DirUp); got != LeftBoard {
		t.Fatalf("expected LeftBoard again, got %v", got)
	}
	after := s.Snapshot()
	if after.Tick != before.Tick || !slices.Equal(after.Body, before.Body) {
		t.Error("state changed after terminal outcome")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	dirs := []core.Direction{core.DirNone, core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	for seed := int64(1); seed <= 30; seed++ {
		settings := Settings{Board: core.Pos(8, 6), MinLength: 3, AppleRetries: 4}
		s, err := New(settings, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		moves := rand.New(rand.NewSource(seed * 7919))

		for tick := 1; tick <= 500; tick++ {
			prevScore, prevLen := s.Score(), s.Len()
			out := s.Tick(dirs[moves.Intn(len(dirs))])
			if out.IsTerminal() {
				break
			}

			checkInvariants(t, s)
			if s.Len() < min(settings.MinLength, tick+1) {
				t.Fatalf("seed %d tick %d: length %d below ramp", seed, tick, s.Len())
			}
			switch out {
			case AteApple:
				if s.Score() != prevScore+1 {
					t.Fatalf("seed %d tick %d: score %d after eating, was %d", seed, tick, s.Score(), prevScore)
				}
			case Continue:
				if s.Score() != prevScore {
					t.Fatalf("seed %d tick %d: score changed without eating", seed, tick)
				}
				if prevLen >= settings.MinLength && s.Len() != prevLen {
					t.Fatalf("seed %d tick %d: length changed without eating", seed, tick)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	script := []core.Direction{core.DirNone, core.DirLeft, core.DirNone, core.DirDown, core.DirRight, core.DirNone, core.DirUp}

	run := func() Snapshot {
		s, err := New(DefaultSettings(), rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		for i := 0; i < 40; i++ {
			s.Tick(script[i%len(script)])
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Apple != b.Apple || a.Outcome != b.Outcome {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
	if !slices.Equal(a.Body, b.Body) {
		t.Errorf("bodies differ: %v vs %v", a.Body, b.Body)
	}
}
