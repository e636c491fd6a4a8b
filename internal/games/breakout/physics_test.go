package breakout

import (
	"testing"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

func newTestState() *State {
	return NewState(NewLayout(config.DefaultBreakoutConfig()))
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestStepMovesBallBeforeBoundChecks(t *testing.T) {
	s := newTestState()
	s.Ball = Ball{X: ToFixed(400), Y: ToFixed(300), VX: ToFixed(4), VY: ToFixed(-4)}

	res := Step(s, input())

	if s.Ball.X != ToFixed(404) || s.Ball.Y != ToFixed(296) {
		t.Errorf("ball at (%v, %v), expected (404, 296)", s.Ball.X.Float(), s.Ball.Y.Float())
	}
	if s.Ball.VX != ToFixed(4) || s.Ball.VY != ToFixed(-4) {
		t.Errorf("velocity changed to (%v, %v)", s.Ball.VX.Float(), s.Ball.VY.Float())
	}
	if res.BlockHit || res.WallBounce || res.CeilingBounce || res.PaddleBounce || res.GameOver {
		t.Errorf("unexpected events: %+v", res)
	}
}

func TestBlockHitSingle(t *testing.T) {
	s := newTestState()

	// Center of block (2, 3): x 205..280, y 120..140
	s.Ball = Ball{X: ToFixed(240), Y: ToFixed(130), VX: ToFixed(4), VY: ToFixed(-4)}

	res := Step(s, input())

	if !res.BlockHit || res.HitColumn != 2 || res.HitRow != 3 {
		t.Fatalf("expected hit on (2, 3), got %+v", res)
	}
	if s.Ball.VY != ToFixed(4) {
		t.Errorf("VY = %v, expected sign flip to 4", s.Ball.VY.Float())
	}
	if s.Grid[2][3].Status != BlockDestroyed {
		t.Error("block (2, 3) should be destroyed")
	}

	for c := range s.Grid {
		for r := range s.Grid[c] {
			if (c != 2 || r != 3) && !s.Grid[c][r].Active() {
				t.Errorf("block (%d, %d) should still be active", c, r)
			}
		}
	}
	if n := s.Grid.CountActive(); n != 39 {
		t.Errorf("CountActive() = %d, expected 39", n)
	}
}

func TestBlockHitUsesCenterPointOnly(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		// Block (2, 4) spans x 205..280, y 150..170; ball radius 10
		{"radius overlaps bottom edge", 240, 175},
		{"center on left edge", 205, 160},
		{"center on top edge", 240, 150},
		{"radius overlaps right edge", 285, 160},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			s.Ball = Ball{X: ToFixed(tc.x), Y: ToFixed(tc.y), VX: 0, VY: ToFixed(4)}

			res := Step(s, input())

			if res.BlockHit {
				t.Errorf("unexpected hit on (%d, %d)", res.HitColumn, res.HitRow)
			}
			if s.Grid.CountActive() != 40 {
				t.Error("no block should be destroyed")
			}
		})
	}
}

func TestBlockHitScanOrder(t *testing.T) {
	// Negative padding makes neighbours overlap so the center is inside several blocks.
	layout := NewLayout(config.DefaultBreakoutConfig())
	layout.BlockPadding = ToFixed(-40)
	s := NewState(layout)

	// Columns 0 and 1 span x 35..110 and 70..145; row 0 spans y 30..50.
	s.Ball = Ball{X: ToFixed(90), Y: ToFixed(40), VX: 0, VY: ToFixed(-4)}

	if _, _, ok := findBlockHit(s); !ok {
		t.Fatal("expected an overlapping hit")
	}

	res := Step(s, input())

	if res.HitColumn != 0 || res.HitRow != 0 {
		t.Errorf("expected first match (0, 0), got (%d, %d)", res.HitColumn, res.HitRow)
	}
	if n := s.Grid.CountActive(); n != len(s.Grid)*len(s.Grid[0])-1 {
		t.Errorf("only one block may resolve per frame, %d active", n)
	}
	if s.Ball.VY != ToFixed(4) {
		t.Errorf("VY should flip exactly once, got %v", s.Ball.VY.Float())
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name       string
		x, vx      int
		expectedVX int
	}{
		{"right wall", 795, 4, -4},
		{"left wall", 12, -4, 4},
		{"inside", 400, 4, 4},
		{"still overlapping right wall flips again", 795, -4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			s.Ball = Ball{X: ToFixed(tc.x), Y: ToFixed(300), VX: ToFixed(tc.vx), VY: ToFixed(-4)}

			res := Step(s, input())

			if s.Ball.VX != ToFixed(tc.expectedVX) {
				t.Errorf("VX = %v, expected %d", s.Ball.VX.Float(), tc.expectedVX)
			}
			if res.WallBounce != (tc.vx != tc.expectedVX) {
				t.Errorf("WallBounce = %v", res.WallBounce)
			}
			if s.Ball.VX.Abs() != ToFixed(4) {
				t.Error("reflection must preserve magnitude")
			}
		})
	}
}

func TestCeilingBounce(t *testing.T) {
	s := newTestState()
	s.Ball = Ball{X: ToFixed(790), Y: ToFixed(12), VX: 0, VY: ToFixed(-4)}

	res := Step(s, input())

	if !res.CeilingBounce || s.Ball.VY != ToFixed(4) {
		t.Errorf("expected ceiling bounce, VY=%v res=%+v", s.Ball.VY.Float(), res)
	}
}

func TestPaddleBounce(t *testing.T) {
	s := newTestState()
	s.Paddle.X = ToFixed(350) // spans 350..450
	s.Ball = Ball{X: ToFixed(400), Y: ToFixed(588), VX: 0, VY: ToFixed(4)}

	res := Step(s, input())

	if !res.PaddleBounce || res.GameOver {
		t.Fatalf("expected paddle bounce, got %+v", res)
	}
	if s.Ball.VY != ToFixed(-4) {
		t.Errorf("VY = %v, expected -4", s.Ball.VY.Float())
	}
}

func TestPaddleSpanIsExclusive(t *testing.T) {
	s := newTestState()
	s.Paddle.X = ToFixed(350)
	s.Ball = Ball{X: ToFixed(450), Y: ToFixed(588), VX: 0, VY: ToFixed(4)}

	if res := Step(s, input()); !res.GameOver {
		t.Error("ball center exactly on the paddle edge should miss")
	}
}

func TestGameOverOutsidePaddle(t *testing.T) {
	s := newTestState()
	s.Paddle.X = ToFixed(350)
	s.Ball = Ball{X: ToFixed(100), Y: ToFixed(588), VX: 0, VY: ToFixed(4)}

	res := Step(s, input(core.ActionRight))

	if !res.GameOver {
		t.Fatal("expected game over")
	}
	if s.Paddle.X != ToFixed(350) {
		t.Error("paddle should not move on the losing frame")
	}
}

func TestPaddleMovement(t *testing.T) {
	s := newTestState()
	s.Ball = Ball{X: ToFixed(400), Y: ToFixed(300)} // parked

	Step(s, input(core.ActionRight))
	if s.Paddle.X != ToFixed(357) {
		t.Errorf("paddle X = %v after right, expected 357", s.Paddle.X.Float())
	}

	Step(s, input(core.ActionLeft))
	if s.Paddle.X != ToFixed(350) {
		t.Errorf("paddle X = %v after left, expected 350", s.Paddle.X.Float())
	}

	res := Step(s, input(core.ActionLeft, core.ActionRight))
	if s.Paddle.X != ToFixed(357) || res.PaddleDirection != DirRight {
		t.Errorf("both held should move right, X = %v", s.Paddle.X.Float())
	}
}

func TestPaddleStaysClamped(t *testing.T) {
	for _, step := range []int{7, 9, 13} {
		layout := NewLayout(config.DefaultBreakoutConfig())
		layout.PaddleStep = ToFixed(step)
		s := NewState(layout)
		s.Ball = Ball{X: ToFixed(400), Y: ToFixed(300)}

		for range 500 {
			Step(s, input(core.ActionRight))
			if s.Paddle.X < 0 || s.Paddle.X > layout.PaddleMaxX() {
				t.Fatalf("step %d: paddle X = %v out of bounds", step, s.Paddle.X.Float())
			}
		}
		if s.Paddle.X != layout.PaddleMaxX() {
			t.Errorf("step %d: paddle should rest at the right edge, got %v", step, s.Paddle.X.Float())
		}

		for range 500 {
			Step(s, input(core.ActionLeft))
			if s.Paddle.X < 0 || s.Paddle.X > layout.PaddleMaxX() {
				t.Fatalf("step %d: paddle X = %v out of bounds", step, s.Paddle.X.Float())
			}
		}
		if s.Paddle.X != 0 {
			t.Errorf("step %d: paddle should rest at the left edge, got %v", step, s.Paddle.X.Float())
		}
	}
}

func TestBlocksNeverRespawn(t *testing.T) {
	s := newTestState()
	prev := make([]BlockStatus, 0, 40)

	for tick := range 20000 {
		// Track the ball so the round lasts
		target := s.Ball.X - s.Layout.PaddleW/2
		s.Paddle.X = core.Clamp(target, 0, s.Layout.PaddleMaxX())

		res := Step(s, input())
		if res.GameOver {
			t.Fatalf("tracking paddle missed the ball at tick %d", tick)
		}

		i := 0
		for c := range s.Grid {
			for r := range s.Grid[c] {
				status := s.Grid[c][r].Status
				if len(prev) < 40 {
					prev = append(prev, status)
				} else {
					if prev[i] == BlockDestroyed && status == BlockActive {
						t.Fatalf("block (%d, %d) respawned at tick %d", c, r, tick)
					}
					prev[i] = status
				}
				i++
			}
		}
	}

	if s.Grid.CountActive() == 40 {
		t.Error("expected some blocks to be destroyed over a long run")
	}
}

func TestBlockDestroyIsOneWay(t *testing.T) {
	b := Block{Status: BlockActive}
	if !b.Destroy() {
		t.Error("first Destroy should report a change")
	}
	if b.Destroy() {
		t.Error("second Destroy should report no change")
	}
	if b.Active() {
		t.Error("destroyed block must not be active")
	}
}
