// Package game drives a snake round for an interactive front end: it turns
// input frames into ticks, handles pause and restart, and draws the round
// into a core.Screen.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const hudHeight = 2 // HUD line plus separator

// Game implements the playable snake game on top of snake.State.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	state *snake.State
	err   error // Set when the round could not be created

	round     int
	bestScore int
	paused    bool

	screenW int
	screenH int
}

// New creates a game using the given configuration. Call Reset before Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name including the board size.
func (g *Game) Title() string {
	return fmt.Sprintf("Snake %dx%d", g.cfg.Board.Width, g.cfg.Board.Height)
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.round = 0
	g.newRound()
}

func (g *Game) newRound() {
	g.round++
	g.state, g.err = snake.New(g.cfg.Settings(), g.rng)
}

// Resize updates the screen dimensions without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Err returns the error that prevented the round from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.state.Over() {
		g.paused = false
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.state.Over() {
		g.paused = !g.paused
	}

	if g.paused || g.state.Over() {
		return core.StepResult{State: g.State()}
	}

	g.state.Tick(g.steer(input))
	if g.state.Score() > g.bestScore {
		g.bestScore = g.state.Score()
	}

	return core.StepResult{State: g.State(), Moved: true}
}

// steer picks the first queued direction that is not a reversal of the
// current heading. A rejected reversal does not use up the tick's turn.
func (g *Game) steer(input core.InputFrame) core.Direction {
	heading := g.state.Heading()
	for _, d := range input.Directions() {
		if d != heading.Opposite() {
			return d
		}
	}
	return core.DirNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.Over(),
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation snapshot of the current round.
func (g *Game) Snapshot() snake.Snapshot {
	if g.state == nil {
		return snake.Snapshot{}
	}
	return g.state.Snapshot()
}

// Outcome returns the outcome of the last tick.
func (g *Game) Outcome() snake.Outcome {
	if g.state == nil {
		return snake.Continue
	}
	return g.state.Outcome()
}

// Round returns the 1-based number of the current round.
func (g *Game) Round() int {
	return g.round
}

// BestScore returns the highest score of this session.
func (g *Game) BestScore() int {
	return g.bestScore
}
