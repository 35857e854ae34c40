package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/platform/tui"
	"github.com/vovakirdan/langton/internal/storage"
)

var (
	flagShowPath  bool
	flagDelay     int
	flagNoCounter bool
	flagConfig    string
	flagWidth     int
	flagHeight    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Long: `Start a simulation sized to the current terminal.

Controls:
  Q/Ctrl+C   - Quit
  P/Esc      - Pause
  R          - Restart with a fresh grid
  +/-        - Speed up / slow down
  T          - Toggle the trail marker
  C          - Show/hide the step counter
  Ctrl+S     - Save a screenshot to ~/.langton/screenshots

Examples:
  langton run
  langton run --path
  langton run --delay 5 --no-counter
  langton run --width 120 --height 40
  langton run --config ./my-langton.yaml`,
	Run: runSim,
}

func init() {
	addRunFlags(runCmd)
}

// addRunFlags registers the simulation flags on a command. The root
// command shares them so plain `langton` behaves like `langton run`.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagShowPath, "path", "p", false, "Show the ant's trail")
	cmd.Flags().IntVarP(&flagDelay, "delay", "d", 0, "Delay between steps in milliseconds (default from config: 20)")
	cmd.Flags().BoolVarP(&flagNoCounter, "no-counter", "c", false, "Hide the step counter")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (default: terminal width)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (default: terminal height)")
}

func runSim(cmd *cobra.Command, args []string) {
	simCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size as the default grid size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	fixedGrid := false
	if flagWidth > 0 {
		width = flagWidth
		fixedGrid = true
	}
	if flagHeight > 0 {
		height = flagHeight
		fixedGrid = true
	}

	// CLI flags override file values
	rt := core.RuntimeConfig{
		GridW:       width,
		GridH:       height,
		FixedGrid:   fixedGrid,
		DelayMS:     simCfg.Timing.DelayMS,
		ShowPath:    simCfg.Display.ShowPath,
		ShowCounter: simCfg.Display.ShowCounter,
	}
	if cmd.Flags().Changed("delay") {
		rt.DelayMS = flagDelay
	}
	if flagShowPath {
		rt.ShowPath = true
	}
	if flagNoCounter {
		rt.ShowCounter = false
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	runErr := tui.Run(rt, simCfg, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
