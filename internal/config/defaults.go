package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default configuration: the classic 21x17 board
// moving every 0.2 seconds.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  21,
			Height: 17,
		},
		MinSnakeLength: 3,
		TickInterval:   0.2,
		AppleRetries:   64,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
