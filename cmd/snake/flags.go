package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// configOverrides holds per-command flags that override the loaded config.
type configOverrides struct {
	board     string
	width     int
	height    int
	speed     string
	tick      float64
	minLength int
}

func (o *configOverrides) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.board, "board", "", "Board preset: small, classic, large")
	cmd.Flags().IntVar(&o.width, "width", 0, "Board width in cells")
	cmd.Flags().IntVar(&o.height, "height", 0, "Board height in cells")
	cmd.Flags().StringVar(&o.speed, "speed", "", "Speed preset: slow, normal, fast")
	cmd.Flags().Float64Var(&o.tick, "tick", 0, "Seconds between moves")
	cmd.Flags().IntVar(&o.minLength, "min-length", 0, "Length the snake grows to at the start")
}

// apply layers presets and explicit flags over cfg. Only flags the user
// set are applied; explicit sizes win over a board preset.
func (o *configOverrides) apply(cmd *cobra.Command, cfg *config.Config) error {
	if o.board != "" {
		if err := config.ApplyBoardPreset(cfg, o.board); err != nil {
			return err
		}
	}
	if o.speed != "" {
		if err := config.ApplySpeedPreset(cfg, o.speed); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = o.height
	}
	if flags.Changed("tick") {
		cfg.TickInterval = o.tick
	}
	if flags.Changed("min-length") {
		cfg.MinSnakeLength = o.minLength
	}
	return nil
}

// loadConfig loads the config file, applies overrides and validates the result.
func loadConfig(cmd *cobra.Command, o *configOverrides) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if o != nil {
		if err := o.apply(cmd, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
