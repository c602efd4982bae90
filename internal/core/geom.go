// Package core provides fundamental types shared by the simulation, the game
// layer and the terminal platform. It does not import Bubble Tea.
package core

// Direction is one of the four grid directions. The zero value DirNone means
// "no direction" and is used for an absent steering intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four grid directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps a script character to a direction, in either case.
// U/W is up, D/S is down, L/A is left and R is right. D always means down,
// so the WASD right key is not accepted. '.' and ' ' mean no intent.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u', 'W', 'w':
		return DirUp, true
	case 'D', 'd', 'S', 's':
		return DirDown, true
	case 'L', 'l', 'A', 'a':
		return DirLeft, true
	case 'R', 'r':
		return DirRight, true
	case '.', ' ':
		return DirNone, true
	default:
		return DirNone, false
	}
}

// Position is a cell on the board. Coordinates are signed so that stepping
// off the board produces 0 or size+1 instead of wrapping around.
type Position struct {
	X, Y int
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Move returns the position translated by one cell along d. No clamping.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies in the 1-indexed playable range [1, bounds].
func (p Position) In(bounds Position) bool {
	return p.X >= 1 && p.X <= bounds.X && p.Y >= 1 && p.Y <= bounds.Y
}

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
