package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/langton/internal/platform/tui"
	"github.com/vovakirdan/langton/internal/storage"
)

var (
	flagHistoryTUI   bool
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs",
	Long: `Display recent runs and aggregate statistics.

Examples:
  langton history
  langton history --limit 50
  langton history --tui
  langton history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Open the interactive history view")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Start one with 'langton run'.")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-17s  %-10s  %-10s  %-10s  %s\n", "When", "Grid", "Steps", "End", "Time")
	fmt.Printf("  %-17s  %-10s  %-10s  %-10s  %s\n", "----", "----", "-----", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-17s  %-10s  %-10d  %-10s  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Steps,
			r.EndReason,
			r.Duration,
		)
	}

	stats, err := store.Stats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Longest: %d steps  Average: %.0f steps\n",
			stats.RunsCount, stats.MaxSteps, stats.AvgSteps)
	}
}
