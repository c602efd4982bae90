package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinSnakeLen is the length the snake ramps up to at the start of a round.
const MinSnakeLen = 3

// DefaultAppleRetries is how many random samples apple placement draws
// before falling back to scanning the board for free cells.
const DefaultAppleRetries = 64

// MaxBoardSide bounds each board axis so the free-cell scan stays small.
const MaxBoardSide = 1024

// Settings configure a round.
type Settings struct {
	Board        core.Position // Playable size; cells are [1, Board.X] x [1, Board.Y]
	MinLength    int           // Length enforced every tick
	AppleRetries int           // Random samples before the free-cell scan
}

// DefaultSettings returns the classic 21x17 board.
func DefaultSettings() Settings {
	return Settings{
		Board:        core.Pos(21, 17),
		MinLength:    MinSnakeLen,
		AppleRetries: DefaultAppleRetries,
	}
}

// Validate checks the settings. Errors wrap ErrInvalidConfiguration.
func (s Settings) Validate() error {
	if s.MinLength < 1 {
		return fmt.Errorf("%w: minimum length %d must be at least 1", ErrInvalidConfiguration, s.MinLength)
	}
	if s.Board.X < s.MinLength || s.Board.Y < s.MinLength {
		return fmt.Errorf("%w: board %dx%d is smaller than minimum length %d",
			ErrInvalidConfiguration, s.Board.X, s.Board.Y, s.MinLength)
	}
	if s.Board.X > MaxBoardSide || s.Board.Y > MaxBoardSide {
		return fmt.Errorf("%w: board %dx%d exceeds %d cells per side",
			ErrInvalidConfiguration, s.Board.X, s.Board.Y, MaxBoardSide)
	}
	if s.AppleRetries < 0 {
		return fmt.Errorf("%w: apple retries %d must not be negative", ErrInvalidConfiguration, s.AppleRetries)
	}
	return nil
}
