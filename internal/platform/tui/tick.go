// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameDelay returns how long to wait before the next tick so that ticks
// start interval apart. A tick that took longer than the interval is
// followed immediately.
func FrameDelay(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}
