// blockbreak is a single-screen breakout game for the terminal, SSH, or a
// native window.
//
// Usage:
//
//	blockbreak play          - Play in this terminal
//	blockbreak serve         - Start SSH server for remote play
//	blockbreak window        - Play in a native window (needs -tags ebiten)
//	blockbreak history       - Browse the round journal
//	blockbreak config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--preset <name>       - Difficulty preset: easy, normal, hard
//	--db <path>           - Set database path (default: ~/.blockbreak/rounds.db)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreak",
	Short: "Blockbreak - break blocks in your terminal",
	Long: `Blockbreak is a single-screen breakout game: move the paddle, keep the
ball in play, and knock out the grid of blocks.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  window   - Play in a native window
  history  - Browse finished rounds
  config   - Print the effective configuration

Examples:
  blockbreak play
  blockbreak play --preset easy
  blockbreak serve --ssh :2222
  blockbreak history`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.ConfigDirName+"/rounds.db", "Path to round journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config file and applies the preset flag.
func loadGameConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.blockbreak/blockbreak.log for appending. The terminal
// belongs to the game while it runs, so interactive commands log there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, config.ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "blockbreak.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// fileLogger returns a logger writing to the log file, falling back to a
// discarding logger. The returned close function is never nil.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	f, err := openLogFile()
	if err != nil {
		logger, lerr := newLogger(io.Discard, prefix)
		return logger, func() {}, lerr
	}
	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the journal. Failures are reported as warnings and the
// game runs without a journal.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round journal: %v\n", err)
		if logger != nil {
			logger.Warn("could not open round journal", "error", err)
		}
		return nil
	}
	return store
}
