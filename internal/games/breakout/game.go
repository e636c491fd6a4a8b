package breakout

import (
	"fmt"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// GameState constants
const (
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // Ball missed the paddle, waiting for acknowledgment
)

// RoundStats counts what happened since the last reset.
type RoundStats struct {
	Ticks           int
	BlocksDestroyed int
	PaddleBounces   int
}

// Game is one breakout screen: the simulation state plus its lifecycle.
type Game struct {
	cfg   config.BreakoutConfig
	sim   *State
	theme Theme

	state string
	round RoundStats
}

// New creates a game from a validated configuration.
func New(cfg config.BreakoutConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := NewTheme(cfg)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		sim:   NewState(NewLayout(cfg)),
		theme: theme,
	}
	g.Reset()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Reset restarts the round from the initial configuration.
func (g *Game) Reset() {
	g.sim.Reset()
	g.state = StatePlaying
	g.round = RoundStats{}
}

// Step advances the game by one frame. While the game is over the
// simulation is frozen until Acknowledge is called.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.state == StateGameOver {
		return StepResult{HitColumn: -1, HitRow: -1, GameOver: true}
	}

	res := Step(g.sim, in)
	g.round.Ticks++
	if res.BlockHit {
		g.round.BlocksDestroyed++
	}
	if res.PaddleBounce {
		g.round.PaddleBounces++
	}
	if res.GameOver {
		g.state = StateGameOver
	}
	return res
}

// Acknowledge confirms the game-over notice and restarts from scratch.
// It does nothing while the ball is in play.
func (g *Game) Acknowledge() bool {
	if g.state != StateGameOver {
		return false
	}
	g.Reset()
	return true
}

// Render draws the current frame to dst.
func (g *Game) Render(dst core.Canvas) {
	Render(g.sim, g.theme, dst)
}

// Tick runs one full frame: draw the current state, then simulate.
// Drivers call this once per displayed frame.
func (g *Game) Tick(in core.InputFrame, dst core.Canvas) StepResult {
	g.Render(dst)
	return g.Step(in)
}

// Round returns the statistics of the current round.
func (g *Game) Round() RoundStats {
	return g.round
}

// Sim exposes the simulation state, for drivers and tests.
func (g *Game) Sim() *State {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:       g.round.Ticks,
		BlocksLeft: g.sim.Grid.CountActive(),
		GameOver:   g.state == StateGameOver,
	}
}
