// langton is a terminal simulator for Langton's Ant.
//
// Usage:
//
//	langton                  - Run the simulation in the current terminal
//	langton run              - Same as above
//	langton history          - Show past runs
//	langton serve            - Start SSH server for remote viewing
//
// Run flags:
//
//	-p, --path          - Show the ant's trail
//	-d, --delay <ms>    - Delay between steps (default: 20)
//	-c, --no-counter    - Hide the step counter
//	    --width/--height - Grid size (default: terminal size)
//
// Global flags:
//
//	--db <path>  - Run database path (default: ~/.langton/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "langton",
	Short: "Langton's Ant in your terminal",
	Long: `langton simulates Langton's Ant, the classic two-color cellular
automaton: a single ant walks a grid, turning left on light cells and
right on dark ones, flipping each cell it lands on. Out of that trivial
rule an intricate highway eventually emerges.

Running langton with no subcommand starts a simulation sized to the
current terminal. The run ends when the ant walks off the grid or you
press q.

Examples:
  langton
  langton --path --delay 5
  langton run --width 120 --height 40
  langton history --tui
  langton serve --ssh :2222`,
	Run: runSim,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.langton/runs.db", "Path to run database")

	// The root command doubles as `run`
	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
