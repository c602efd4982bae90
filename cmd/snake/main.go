// snake is a terminal snake game.
//
// Usage:
//
//	snake play               - Play a round
//	snake menu               - Pick a board preset, then play
//	snake list               - List board and speed presets
//	snake sim --moves SCRIPT - Run a scripted round without a terminal
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - RNG seed for reproducible apples
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a grid based snake game for the terminal.

Steer the snake to the apple. Each apple adds one point and one segment.
The round ends when the snake leaves the board or runs into itself.

Available commands:
  play     - Play a round
  menu     - Pick a board preset, then play
  list     - Show board and speed presets
  sim      - Run a scripted round without a terminal
  config   - Print the effective configuration

Examples:
  snake play
  snake play --board large --speed fast
  snake menu
  snake sim --moves RRRRDDDD --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogger returns the logger for interactive commands. The terminal
// belongs to the game, so logs go to --log-file or nowhere.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard, flagDebug), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f, flagDebug), func() { f.Close() }, nil
}

// resolveSeed returns the seed to use, picking a time based one for 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
