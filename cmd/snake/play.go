package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playOverrides configOverrides

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of snake.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --board small
  snake play --width 30 --height 20 --speed fast
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playOverrides.register(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd, &playOverrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := play(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func play(cfg config.Config) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	logger.Debug("starting",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"interval", cfg.Interval(),
		"terminal", fmt.Sprintf("%dx%d", width, height),
	)

	return tui.Run(game.New(cfg), tui.Options{
		Interval: cfg.Interval(),
		Seed:     resolveSeed(flagSeed),
		Width:    width,
		Height:   height,
		Logger:   logger,
	})
}
