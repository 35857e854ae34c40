// Package tui provides the Bubble Tea integration for the simulator.
// It handles the terminal UI loop, input mapping and rendering; the
// automaton itself never sees keyboards, screens or wall-clock time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after
// the configured delay.
func tickCmd(delayMS int) tea.Cmd {
	if delayMS < 1 {
		delayMS = 1
	}
	return tea.Tick(time.Duration(delayMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
