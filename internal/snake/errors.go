package snake

import "errors"

// ErrInvalidConfiguration is returned when settings cannot produce a playable board.
var ErrInvalidConfiguration = errors.New("snake: invalid configuration")
