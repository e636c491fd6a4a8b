package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreak/internal/platform/tui"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished rounds",
	Long: `Browse the round journal: one row per round that ended with a game over,
with its length in frames, blocks destroyed, and paddle bounces.

Examples:
  blockbreak history
  blockbreak history --plain --limit 20`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Rounds to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if flagHistoryPlain || !interactive {
		if err := printHistory(store, flagHistoryLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.RunHistory(store, tui.LocalSession, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store, limit int) error {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blockbreak play' and let the ball past the paddle to record one.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %s\n", "Ended", "Ticks", "Blocks", "Bounces", "Session")
	fmt.Printf("  %-16s  %-8s  %-6s  %-7s  %s\n", "-----", "-----", "------", "-------", "-------")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-8d  %-6d  %-7d  %s\n",
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Ticks, r.BlocksDestroyed, r.PaddleBounces, r.Session)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Blocks: %d  Most in a round: %d  Longest: %d ticks\n",
		stats.Rounds, stats.TotalBlocks, stats.MostBlocks, stats.LongestRound)
	return nil
}
