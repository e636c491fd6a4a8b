package breakout

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  int
	State string

	PaddleX int64

	BallX  int64
	BallY  int64
	BallVX int64
	BallVY int64

	// Block statuses, flattened column-major: column*rows + row
	Blocks []uint8
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sim
	blocks := make([]uint8, 0, s.Layout.Columns*s.Layout.Rows)
	for c := range s.Grid {
		for r := range s.Grid[c] {
			blocks = append(blocks, uint8(s.Grid[c][r].Status))
		}
	}

	return Snapshot{
		Tick:    g.round.Ticks,
		State:   g.state,
		PaddleX: int64(s.Paddle.X),
		BallX:   int64(s.Ball.X),
		BallY:   int64(s.Ball.Y),
		BallVX:  int64(s.Ball.VX),
		BallVY:  int64(s.Ball.VY),
		Blocks:  blocks,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Block data of the wrong size is ignored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	s := g.sim
	g.round.Ticks = snap.Tick
	g.state = snap.State

	s.Paddle.X = Fixed(snap.PaddleX)
	s.Ball = Ball{
		X:  Fixed(snap.BallX),
		Y:  Fixed(snap.BallY),
		VX: Fixed(snap.BallVX),
		VY: Fixed(snap.BallVY),
	}

	if len(snap.Blocks) != s.Layout.Columns*s.Layout.Rows {
		return
	}
	for c := range s.Grid {
		for r := range s.Grid[c] {
			s.Grid[c][r].Status = BlockStatus(snap.Blocks[c*s.Layout.Rows+r])
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for i := range len(snap.State) {
		h = h*31 + uint64(snap.State[i])
	}
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)  //#nosec G115 -- hash computation

	for _, v := range snap.Blocks {
		h = h*31 + uint64(v)
	}

	return h
}
