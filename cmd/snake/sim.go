package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	simOverrides configOverrides
	flagMoves    string
	flagTicks    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted round without a terminal",
	Long: `Runs a round headless, one tick per character of --moves, and prints
the final board.

Move characters:
  U/W  - Up
  D/S  - Down
  L/A  - Left
  R    - Right
  .    - Keep going

With --ticks larger than the script, the snake keeps going straight for
the remaining ticks. The run stops early when the round ends.

Examples:
  snake sim --moves RRRRDDDD --seed 42
  snake sim --moves ..L --ticks 30 --board small --debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simOverrides.register(simCmd)
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script, one character per tick")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run (default: length of --moves)")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd, &simOverrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, flagDebug)
	if err := simulate(os.Stdout, logger, cfg, resolveSeed(flagSeed), flagMoves, flagTicks); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseMoves converts a move script into per-tick intents.
func parseMoves(script string) ([]core.Direction, error) {
	moves := make([]core.Direction, 0, len(script))
	for i, r := range script {
		d, ok := core.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// simulate runs a round from the move script and writes the final board
// and a summary to w.
func simulate(w io.Writer, logger *log.Logger, cfg config.Config, seed int64, script string, ticks int) error {
	moves, err := parseMoves(script)
	if err != nil {
		return err
	}
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", ticks)
	}
	if ticks == 0 {
		ticks = len(moves)
	}

	state, err := snake.New(cfg.Settings(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Debug("round started", "seed", seed, "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))

	for i := 0; i < ticks; i++ {
		intent := core.DirNone
		if i < len(moves) {
			intent = moves[i]
		}

		outcome := state.Tick(intent)
		logger.Debug("tick",
			"n", state.Ticks(),
			"intent", intent,
			"head", state.Head(),
			"len", state.Len(),
			"outcome", outcome,
		)
		if outcome == snake.AteApple {
			logger.Info("apple eaten", "score", state.Score())
		}
		if outcome.IsTerminal() {
			logger.Info("round over", "outcome", outcome.String(), "reason", outcome.Reason())
			break
		}
	}

	snap := state.Snapshot()
	fmt.Fprintln(w, renderBoard(snap))
	fmt.Fprintln(w)
	writeSummary(w, snap, seed)
	return nil
}

// renderBoard draws the board in plain characters: '#' border, '@' head,
// 'o' body and '*' apple.
func renderBoard(snap snake.Snapshot) string {
	screen := core.NewScreen(snap.Board.X+2, snap.Board.Y+2)
	screen.FillRect(core.NewRect(0, 0, screen.Width(), screen.Height()), '#')
	screen.FillRect(core.NewRect(1, 1, snap.Board.X, snap.Board.Y), '.')

	if snap.HasApple {
		screen.Set(snap.Apple.X, snap.Apple.Y, '*')
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if !p.In(snap.Board) {
			continue
		}
		if i == 0 {
			screen.Set(p.X, p.Y, '@')
		} else {
			screen.Set(p.X, p.Y, 'o')
		}
	}
	return screen.String()
}

func writeSummary(w io.Writer, snap snake.Snapshot, seed int64) {
	fmt.Fprintf(w, "outcome: %s\n", snap.Outcome)
	if snap.Outcome.IsTerminal() {
		fmt.Fprintf(w, "reason:  %s\n", snap.Outcome.Reason())
	}
	fmt.Fprintf(w, "score:   %d\n", snap.Score)
	fmt.Fprintf(w, "length:  %d\n", snap.Len())
	fmt.Fprintf(w, "ticks:   %d\n", snap.Tick)
	fmt.Fprintf(w, "head:    (%d, %d) %s\n", snap.Head().X, snap.Head().Y, snap.Heading)
	if snap.HasApple {
		fmt.Fprintf(w, "apple:   (%d, %d)\n", snap.Apple.X, snap.Apple.Y)
	}
	fmt.Fprintf(w, "seed:    %d\n", seed)
}
