// Package snake implements the authoritative state of one round of snake:
// the body chain, the apple and the score, plus the per-tick rule that
// advances them.
//
// Each body segment stores the direction it will move on the next tick.
// Every tick the head's direction is relayed one segment further down the
// chain, like a shift register, so the body retraces the head's path
// without keeping a history of positions.
//
// The package performs no I/O and never blocks. Frame pacing, input
// polling and rendering belong to the caller.
package snake
