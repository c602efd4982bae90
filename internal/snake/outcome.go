package snake

// Outcome is the result of one tick.
type Outcome int

const (
	// Continue means the snake moved and the round goes on.
	Continue Outcome = iota
	// AteApple means the snake moved onto the apple and grew.
	AteApple
	// LeftBoard means the head stepped outside the playable range. Terminal.
	LeftBoard
	// SelfCollision means the head landed on a body segment. Terminal.
	SelfCollision
	// BoardFull means no free cell is left for the apple. Terminal.
	BoardFull
)

// IsTerminal reports whether the round is over.
func (o Outcome) IsTerminal() bool {
	return o == LeftBoard || o == SelfCollision || o == BoardFull
}

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case AteApple:
		return "ate_apple"
	case LeftBoard:
		return "left_board"
	case SelfCollision:
		return "self_collision"
	case BoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Reason returns a short human readable explanation for terminal outcomes.
func (o Outcome) Reason() string {
	switch o {
	case LeftBoard:
		return "Snake left the board"
	case SelfCollision:
		return "Snake collided with its body"
	case BoardFull:
		return "Board full"
	default:
		return ""
	}
}
