//go:build !ebiten

package window

import "github.com/vovakirdan/blockbreak/internal/games/breakout"

// Run always reports that the window build tag is missing.
func Run(*breakout.Game, Options) error {
	return ErrUnavailable
}
