// Package config provides YAML-based configuration loading, presets and
// validation for the snake game.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Config contains all configuration for a snake game.
type Config struct {
	Board          BoardConfig `yaml:"board"`
	MinSnakeLength int         `yaml:"min_snake_length"`
	TickInterval   float64     `yaml:"tick_interval"` // Seconds between moves
	AppleRetries   int         `yaml:"apple_retries"`
}

// BoardConfig defines the playable board size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// maxTickInterval is the bound, in seconds, past which a time.Duration overflows.
const maxTickInterval = float64(math.MaxInt64) / float64(time.Second)

// Interval returns the tick interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.TickInterval * float64(time.Second))
}

// Settings converts the config into simulation settings.
func (c Config) Settings() snake.Settings {
	return snake.Settings{
		Board:        core.Pos(c.Board.Width, c.Board.Height),
		MinLength:    c.MinSnakeLength,
		AppleRetries: c.AppleRetries,
	}
}

// Validate checks the config. Errors wrap snake.ErrInvalidConfiguration.
func (c Config) Validate() error {
	if !(c.TickInterval > 0) || math.IsInf(c.TickInterval, 0) {
		return fmt.Errorf("%w: tick interval %gs must be positive", snake.ErrInvalidConfiguration, c.TickInterval)
	}
	if c.TickInterval >= maxTickInterval {
		return fmt.Errorf("%w: tick interval %gs must be shorter than %gs",
			snake.ErrInvalidConfiguration, c.TickInterval, maxTickInterval)
	}
	return c.Settings().Validate()
}
