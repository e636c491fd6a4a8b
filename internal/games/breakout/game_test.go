package breakout

import (
	"testing"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.Width = 0
	if _, err := New(cfg); err == nil {
		t.Error("expected error for zero paddle width")
	}

	cfg = config.DefaultBreakoutConfig()
	cfg.Colors.BallInner = "not-a-color"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.Sim()

	if s.Paddle.X != ToFixed(350) {
		t.Errorf("paddle X = %v, expected 350", s.Paddle.X.Float())
	}
	if s.Ball.X != ToFixed(400) || s.Ball.Y != ToFixed(570) {
		t.Errorf("ball at (%v, %v), expected (400, 570)", s.Ball.X.Float(), s.Ball.Y.Float())
	}
	if s.Ball.VX != ToFixed(4) || s.Ball.VY != ToFixed(-4) {
		t.Errorf("ball velocity (%v, %v), expected (4, -4)", s.Ball.VX.Float(), s.Ball.VY.Float())
	}

	st := g.State()
	if st.BlocksLeft != 40 || st.GameOver || st.Tick != 0 {
		t.Errorf("unexpected initial state: %+v", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%7 < 3:
			inputs[i] = input(core.ActionRight)
		case i%7 < 5:
			inputs[i] = input(core.ActionLeft)
		default:
			inputs[i] = input()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.State != snap2.State {
		t.Errorf("determinism failed: tick %d/%d state %s/%s", snap1.Tick, snap2.Tick, snap1.State, snap2.State)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	fresh := g.Snapshot()

	for range 50 {
		g.Step(input(core.ActionRight))
	}
	g.Sim().Grid[3][2].Destroy()

	g.Reset()
	once := g.Snapshot()
	g.Reset()
	twice := g.Snapshot()

	if once.Hash() != twice.Hash() {
		t.Error("reset twice should equal reset once")
	}
	if once.Hash() != fresh.Hash() {
		t.Error("reset should restore the initial state")
	}
	if g.Round() != (RoundStats{}) {
		t.Errorf("round stats not cleared: %+v", g.Round())
	}
}

func TestGameOverFreezesUntilAcknowledged(t *testing.T) {
	g := newTestGame(t)
	s := g.Sim()
	s.Paddle.X = ToFixed(350)
	s.Ball = Ball{X: ToFixed(100), Y: ToFixed(588), VX: 0, VY: ToFixed(4)}
	s.Grid[0][0].Destroy()

	if g.Acknowledge() {
		t.Error("Acknowledge should do nothing while playing")
	}

	res := g.Step(input())
	if !res.GameOver || !g.State().GameOver {
		t.Fatal("expected game over")
	}

	frozen := g.Snapshot()
	for range 10 {
		g.Step(input(core.ActionLeft))
	}
	if after := g.Snapshot(); after.Hash() != frozen.Hash() {
		t.Error("simulation must not advance after game over")
	}

	if !g.Acknowledge() {
		t.Fatal("Acknowledge should restart after game over")
	}
	if g.State().GameOver {
		t.Error("state should be playing after acknowledgment")
	}
	if s.Ball.X != ToFixed(400) || s.Ball.Y != ToFixed(570) {
		t.Errorf("ball not reset: (%v, %v)", s.Ball.X.Float(), s.Ball.Y.Float())
	}
	if s.Paddle.X != ToFixed(350) {
		t.Errorf("paddle not reset: %v", s.Paddle.X.Float())
	}
	if n := s.Grid.CountActive(); n != 40 {
		t.Errorf("all blocks should be active after reset, got %d", n)
	}
}

func TestRoundStats(t *testing.T) {
	g := newTestGame(t)
	s := g.Sim()

	s.Ball = Ball{X: ToFixed(240), Y: ToFixed(130), VX: 0, VY: ToFixed(-4)}
	g.Step(input())

	s.Paddle.X = ToFixed(350)
	s.Ball = Ball{X: ToFixed(400), Y: ToFixed(588), VX: 0, VY: ToFixed(4)}
	g.Step(input())

	got := g.Round()
	expected := RoundStats{Ticks: 2, BlocksDestroyed: 1, PaddleBounces: 1}
	if got != expected {
		t.Errorf("Round() = %+v, expected %+v", got, expected)
	}
	if g.State().BlocksLeft != 39 {
		t.Errorf("BlocksLeft = %d, expected 39", g.State().BlocksLeft)
	}
}

func TestTickRendersBeforeStepping(t *testing.T) {
	g := newTestGame(t)
	rec := &recorder{}

	before := g.Sim().Ball
	g.Tick(input(), rec)

	if len(rec.circles) != 1 {
		t.Fatalf("expected one ball drawn, got %d", len(rec.circles))
	}
	c := rec.circles[0]
	if c.cx != before.X.Float() || c.cy != before.Y.Float() {
		t.Errorf("ball drawn at (%v, %v), expected pre-step (%v, %v)", c.cx, c.cy, before.X.Float(), before.Y.Float())
	}
	if g.Round().Ticks != 1 {
		t.Error("Tick should also step the simulation")
	}
}

func TestApplySnapshot(t *testing.T) {
	g := newTestGame(t)
	for range 120 {
		g.Step(input(core.ActionLeft))
	}
	g.Sim().Grid[4][1].Destroy()
	snap := g.Snapshot()

	other := newTestGame(t)
	other.ApplySnapshot(snap)

	restored := other.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Error("snapshot round-trip changed the state")
	}
	if other.Sim().Grid[4][1].Active() {
		t.Error("destroyed block should be restored as destroyed")
	}

	// Block data of the wrong size leaves the grid untouched.
	bad := snap
	bad.Blocks = bad.Blocks[:3]
	fresh := newTestGame(t)
	fresh.ApplySnapshot(bad)
	if fresh.Sim().Grid.CountActive() != 40 {
		t.Error("mismatched block data should be ignored")
	}
}

func TestGameMetadata(t *testing.T) {
	g := newTestGame(t)
	if g.ID() != "breakout" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() should not be empty")
	}
	if g.Config().Blocks.Columns != 8 {
		t.Error("Config() should return the config the game was built from")
	}
}
