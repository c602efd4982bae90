package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// placeApple puts the apple on a uniformly random free cell. It samples up
// to AppleRetries random cells and then falls back to choosing among the
// enumerated free cells, so it terminates even on a crowded board.
// Returns false when the snake covers the whole board.
func (s *State) placeApple() bool {
	board := s.settings.Board

	for i := 0; i < s.settings.AppleRetries; i++ {
		p := core.Pos(s.rng.Intn(board.X)+1, s.rng.Intn(board.Y)+1)
		if !s.occupied(p) {
			s.apple = p
			s.hasApple = true
			return true
		}
	}

	free := s.freeCells()
	if len(free) == 0 {
		s.hasApple = false
		return false
	}
	s.apple = free[s.rng.Intn(len(free))]
	s.hasApple = true
	return true
}

// freeCells lists the unoccupied playable cells in row-major order.
func (s *State) freeCells() []core.Position {
	board := s.settings.Board

	taken := make(map[core.Position]struct{}, len(s.segments))
	for _, seg := range s.segments {
		taken[seg.Position] = struct{}{}
	}

	free := make([]core.Position, 0, max(board.X*board.Y-len(taken), 0))
	for y := 1; y <= board.Y; y++ {
		for x := 1; x <= board.X; x++ {
			p := core.Pos(x, y)
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
