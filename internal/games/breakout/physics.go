package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// StepResult reports what happened during one simulated frame.
type StepResult struct {
	BlockHit        bool
	HitColumn       int
	HitRow          int
	WallBounce      bool // Left or right wall
	CeilingBounce   bool
	PaddleBounce    bool
	GameOver        bool // Ball left through the bottom outside the paddle
	PaddleDirection Direction
}

// Step advances the simulation by exactly one frame.
//
// Order matters and is fixed: block collision on the current position,
// then the ball moves, then walls/ceiling/paddle are tested against the new
// position, then the paddle moves.
func Step(s *State, in core.InputFrame) StepResult {
	res := StepResult{HitColumn: -1, HitRow: -1}

	if c, r, ok := findBlockHit(s); ok {
		s.Ball.VY = -s.Ball.VY
		s.Grid[c][r].Destroy()
		res.BlockHit = true
		res.HitColumn = c
		res.HitRow = r
	}

	s.Ball.X += s.Ball.VX
	s.Ball.Y += s.Ball.VY

	res.WallBounce = bounceWalls(s)

	switch resolveVertical(s) {
	case verticalCeiling:
		res.CeilingBounce = true
	case verticalPaddle:
		res.PaddleBounce = true
	case verticalMiss:
		res.GameOver = true
		return res
	}

	res.PaddleDirection = movePaddle(s, in)
	return res
}

// findBlockHit scans column-major (column 0 first, row 0 first) and returns the
// first active block that strictly contains the ball's center point. Only the
// center is tested, not the ball's full radius, and at most one block
// resolves per frame.
func findBlockHit(s *State) (column, row int, ok bool) {
	bx, by := s.Ball.X, s.Ball.Y
	for c := range s.Grid {
		for r := range s.Grid[c] {
			if !s.Grid[c][r].Active() {
				continue
			}
			x, y, w, h := s.Layout.BlockRect(c, r)
			if bx > x && bx < x+w && by > y && by < y+h {
				return c, r, true
			}
		}
	}
	return -1, -1, false
}

// bounceWalls inverts horizontal velocity when the ball crosses a side wall.
func bounceWalls(s *State) bool {
	r := s.Layout.BallRadius
	if s.Ball.X+r > s.Layout.SurfaceW || s.Ball.X-r < 0 {
		s.Ball.VX = -s.Ball.VX
		return true
	}
	return false
}

type verticalOutcome int

const (
	verticalNone verticalOutcome = iota
	verticalCeiling
	verticalPaddle
	verticalMiss
)

// resolveVertical handles the ceiling and the bottom edge. At the bottom the
// ball bounces only if its center is strictly within the paddle's span.
func resolveVertical(s *State) verticalOutcome {
	r := s.Layout.BallRadius

	if s.Ball.Y-r < 0 {
		s.Ball.VY = -s.Ball.VY
		return verticalCeiling
	}

	if s.Ball.Y+r > s.Layout.SurfaceH {
		left := s.Paddle.X
		right := s.Paddle.X + s.Layout.PaddleW
		if s.Ball.X > left && s.Ball.X < right {
			s.Ball.VY = -s.Ball.VY
			return verticalPaddle
		}
		return verticalMiss
	}

	return verticalNone
}

// movePaddle moves the paddle one step. Right is checked first, so holding
// both directions moves right. The result is clamped to the surface.
func movePaddle(s *State, in core.InputFrame) Direction {
	l := s.Layout
	dir := DirNone

	if in.Has(core.ActionRight) && s.Paddle.X < l.PaddleMaxX() {
		s.Paddle.X += l.PaddleStep
		dir = DirRight
	} else if in.Has(core.ActionLeft) && s.Paddle.X > 0 {
		s.Paddle.X -= l.PaddleStep
		dir = DirLeft
	}

	s.Paddle.X = core.Clamp(s.Paddle.X, 0, l.PaddleMaxX())
	return dir
}
