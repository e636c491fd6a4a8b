package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a native window and play there. The game advances once per
displayed frame, so --fps does not apply.

Controls:
  Left/Right  - Move paddle (held)
  Enter       - Restart after game over
  Q/Esc       - Quit

The window driver is only compiled with the ebiten build tag:
  go build -tags ebiten ./cmd/blockbreak

Examples:
  blockbreak window
  blockbreak window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the surface")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "blockbreak")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := breakout.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := window.Run(game, window.Options{
		Store:  store,
		Logger: logger,
		Scale:  flagScale,
	})
	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, window.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, "The window driver requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/blockbreak window` or build with `-tags ebiten`.")
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
