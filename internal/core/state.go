package core

// GameState is the status a game reports to its driver after each frame.
type GameState struct {
	Tick       int  // Frames simulated in the current round
	BlocksLeft int  // Active blocks remaining
	GameOver   bool // Round ended, waiting for acknowledgment
}
