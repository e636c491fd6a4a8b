package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H/A     - Move paddle left
  Right/L/D    - Move paddle right
  Enter        - Restart after game over
  Ctrl+S       - Save a PNG screenshot
  Q/Esc        - Quit

The game is drawn with half-block characters and needs a truecolor terminal
for the best picture. Logs go to ~/.blockbreak/blockbreak.log.

Examples:
  blockbreak play
  blockbreak play --preset hard
  blockbreak play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger("blockbreak")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := breakout.New(cfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame has the right shape
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)

	logger.Info("game started", "preset", flagPreset, "fps", flagFPS)
	runErr := tui.Run(game, tui.Options{
		Store:    store,
		Logger:   logger,
		Session:  tui.LocalSession,
		TickRate: flagFPS,
		Hold:     time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Width:    width,
		Height:   height,
	})
	logger.Info("game closed")

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
