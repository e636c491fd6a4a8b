package breakout

import (
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Layout holds the immutable geometry of the screen, in fixed-point surface units.
type Layout struct {
	SurfaceW, SurfaceH Fixed

	PaddleW, PaddleH Fixed
	PaddleStep       Fixed

	BallRadius      Fixed
	BallStartOffset Fixed // Ball starts this far above the bottom edge
	BallVX, BallVY  Fixed

	Columns, Rows   int
	BlockW, BlockH  Fixed
	BlockPadding    Fixed
	BlockOffsetTop  Fixed
	BlockOffsetLeft Fixed
}

// NewLayout converts a config into fixed-point geometry.
func NewLayout(cfg config.BreakoutConfig) Layout {
	return Layout{
		SurfaceW:        FromFloat(cfg.Surface.Width),
		SurfaceH:        FromFloat(cfg.Surface.Height),
		PaddleW:         FromFloat(cfg.Paddle.Width),
		PaddleH:         FromFloat(cfg.Paddle.Height),
		PaddleStep:      FromFloat(cfg.Paddle.Step),
		BallRadius:      FromFloat(cfg.Ball.Radius),
		BallStartOffset: FromFloat(cfg.Ball.StartOffset),
		BallVX:          FromFloat(cfg.Ball.VX),
		BallVY:          FromFloat(cfg.Ball.VY),
		Columns:         cfg.Blocks.Columns,
		Rows:            cfg.Blocks.Rows,
		BlockW:          FromFloat(cfg.Blocks.Width),
		BlockH:          FromFloat(cfg.Blocks.Height),
		BlockPadding:    FromFloat(cfg.Blocks.Padding),
		BlockOffsetTop:  FromFloat(cfg.Blocks.OffsetTop),
		BlockOffsetLeft: FromFloat(cfg.Blocks.OffsetLeft),
	}
}

// BlockRect returns the pixel rectangle of the block at (column, row).
// Positions are derived from the grid position on every call, never stored.
func (l Layout) BlockRect(column, row int) (x, y, w, h Fixed) {
	x = Fixed(column)*(l.BlockW+l.BlockPadding) + l.BlockOffsetLeft
	y = Fixed(row)*(l.BlockH+l.BlockPadding) + l.BlockOffsetTop
	return x, y, l.BlockW, l.BlockH
}

// PaddleY returns the fixed vertical position of the paddle's top edge.
func (l Layout) PaddleY() Fixed {
	return l.SurfaceH - l.PaddleH
}

// PaddleMaxX returns the largest allowed paddle left edge.
func (l Layout) PaddleMaxX() Fixed {
	return l.SurfaceW - l.PaddleW
}

// Paddle is the player's paddle. Only the left edge moves.
type Paddle struct {
	X Fixed
}

// Ball is the ball's center and per-frame velocity.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed
}

// BlockStatus is the one-way lifecycle of a block.
type BlockStatus uint8

const (
	BlockActive BlockStatus = iota
	BlockDestroyed
)

// String returns the status name.
func (s BlockStatus) String() string {
	if s == BlockDestroyed {
		return "destroyed"
	}
	return "active"
}

// Block is one cell of the grid.
type Block struct {
	Column, Row int
	Status      BlockStatus
}

// Active reports whether the block is still in play.
func (b *Block) Active() bool {
	return b.Status == BlockActive
}

// Destroy marks the block destroyed. Returns false if it already was.
func (b *Block) Destroy() bool {
	if b.Status == BlockDestroyed {
		return false
	}
	b.Status = BlockDestroyed
	return true
}

// Grid is the block container, indexed [column][row].
type Grid [][]Block

// NewGrid allocates a grid of active blocks.
func NewGrid(columns, rows int) Grid {
	g := make(Grid, columns)
	for c := range g {
		g[c] = make([]Block, rows)
		for r := range g[c] {
			g[c][r] = Block{Column: c, Row: r, Status: BlockActive}
		}
	}
	return g
}

// CountActive returns the number of active blocks.
func (g Grid) CountActive() int {
	n := 0
	for c := range g {
		for r := range g[c] {
			if g[c][r].Active() {
				n++
			}
		}
	}
	return n
}

// State is the complete simulation state of one game screen.
// It is owned by a single frame driver; nothing in it is shared.
type State struct {
	Layout Layout
	Paddle Paddle
	Ball   Ball
	Grid   Grid
}

// NewState creates a state in its initial configuration.
func NewState(layout Layout) *State {
	s := &State{
		Layout: layout,
		Grid:   NewGrid(layout.Columns, layout.Rows),
	}
	s.Reset()
	return s
}

// Reset restores every field to its initial value: paddle centered, ball
// centered near the bottom with the launch velocity, every block active.
func (s *State) Reset() {
	l := s.Layout

	s.Paddle = Paddle{X: (l.SurfaceW - l.PaddleW) / 2}
	s.Ball = Ball{
		X:  l.SurfaceW / 2,
		Y:  l.SurfaceH - l.BallStartOffset,
		VX: l.BallVX,
		VY: l.BallVY,
	}

	if len(s.Grid) != l.Columns || (l.Columns > 0 && len(s.Grid[0]) != l.Rows) {
		s.Grid = NewGrid(l.Columns, l.Rows)
		return
	}
	for c := range s.Grid {
		for r := range s.Grid[c] {
			s.Grid[c][r].Status = BlockActive
		}
	}
}

// PaddleRect returns the paddle rectangle in surface units.
func (s *State) PaddleRect() core.Rect {
	l := s.Layout
	return core.NewRect(s.Paddle.X.Float(), l.PaddleY().Float(), l.PaddleW.Float(), l.PaddleH.Float())
}
