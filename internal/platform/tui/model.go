package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/langton/internal/ant"
	"github.com/vovakirdan/langton/internal/config"
	"github.com/vovakirdan/langton/internal/core"
	"github.com/vovakirdan/langton/internal/storage"
)

// Model is the Bubble Tea model driving the automaton: it steps the
// simulation once per tick, paints the returned cell and handles input.
type Model struct {
	sim        *ant.Automaton
	screen     *core.Screen
	store      *storage.Store
	simCfg     config.SimConfig
	runtime    core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	delayMS     int
	showCounter bool
	startedAt   time.Time

	paused   bool
	finished bool
	runSaved bool
	quitting bool
}

// NewModel creates a model with a fresh automaton sized to the runtime config.
func NewModel(rt core.RuntimeConfig, simCfg config.SimConfig, store *storage.Store) (Model, error) {
	antCfg := ant.DefaultStart(rt.GridW, rt.GridH)
	antCfg.ShowPath = rt.ShowPath

	sim, err := ant.New(antCfg)
	if err != nil {
		return Model{}, err
	}

	return Model{
		sim:         sim,
		screen:      core.NewScreen(rt.GridW, rt.GridH),
		store:       store,
		simCfg:      simCfg,
		runtime:     rt,
		keyMapper:   NewKeyMapper(),
		inputFrame:  core.NewInputFrame(),
		delayMS:     rt.DelayMS,
		showCounter: rt.ShowCounter,
		startedAt:   time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delayMS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers input actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot saves the current screen buffer to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".langton", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("langton_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the run continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// handleResize starts a fresh run at the new size. The grid cannot be
// resized mid-run, so the current run ends unrecorded. An explicitly
// configured grid size keeps its dimensions; Bubble Tea reports the
// terminal size in an initial WindowSizeMsg, which must not override
// the width and height flags.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.runtime.FixedGrid {
		return m, nil
	}
	if msg.Width == m.runtime.GridW && msg.Height == m.runtime.GridH {
		return m, nil
	}
	m.runtime.GridW = msg.Width
	m.runtime.GridH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m.restart()
}

// handleTick applies buffered input, then advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.inputFrame.Clear()
		return m.restart()
	}
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.inputFrame.Has(core.ActionSpeedUp) {
		m.delayMS = core.Clamp(m.delayMS-5, m.simCfg.Timing.MinDelayMS, m.simCfg.Timing.MaxDelayMS)
	}
	if m.inputFrame.Has(core.ActionSlowDown) {
		m.delayMS = core.Clamp(m.delayMS+5, m.simCfg.Timing.MinDelayMS, m.simCfg.Timing.MaxDelayMS)
	}
	if m.inputFrame.Has(core.ActionTogglePath) {
		m.sim.SetShowPath(!m.sim.ShowPath())
	}
	if m.inputFrame.Has(core.ActionToggleCounter) {
		m.showCounter = !m.showCounter
		m.repaintRow(0)
	}
	m.inputFrame.Clear()

	if !m.paused && !m.finished {
		outcome := m.sim.Step()
		if outcome.Left {
			m.finished = true
			m.saveRun(storage.EndLeftGrid)
			m.drawFinalOverlay()
		} else {
			m.paintOutcome(outcome)
		}
	}

	return m, tickCmd(m.delayMS)
}

// paintOutcome draws the mark returned by the step at the painted cell.
func (m *Model) paintOutcome(out ant.StepOutcome) {
	var cell core.ScreenCell
	switch out.Mark {
	case ant.MarkFilled:
		cell = core.ScreenCell{Rune: m.simCfg.Display.Symbols.FilledRune(), Color: core.ColorDefault}
	case ant.MarkPath:
		cell = core.ScreenCell{Rune: m.simCfg.Display.Symbols.PathRune(), Color: core.ColorGray}
	default:
		cell = core.ScreenCell{Rune: ' ', Color: core.ColorDefault}
	}
	m.screen.SetCell(out.X, out.Y, cell)
}

// repaintRow redraws one screen row from the stored grid state.
// Used after hiding the counter, which overdraws grid cells.
// Transient path marks cannot be reconstructed and repaint as blanks.
func (m *Model) repaintRow(y int) {
	for x := 0; x < m.screen.Width(); x++ {
		r := ' '
		if c, err := m.sim.CellAt(x, y); err == nil && c == ant.Light {
			r = m.simCfg.Display.Symbols.FilledRune()
		}
		m.screen.Set(x, y, r)
	}
}

// drawFinalOverlay draws the end-of-run box once the ant leaves the grid.
func (m *Model) drawFinalOverlay() {
	line1 := "The ant left the grid"
	line2 := fmt.Sprintf("%d steps", m.sim.Steps())
	line3 := "r restart · q quit"

	boxW := core.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line3)) + 4
	boxH := 7
	box := core.NewRect((m.screen.Width()-boxW)/2, (m.screen.Height()-boxH)/2, boxW, boxH)

	m.screen.FillRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
	m.screen.DrawTextCentered(box.Y+5, line3)
}

// restart discards the current run and starts a fresh automaton.
func (m Model) restart() (tea.Model, tea.Cmd) {
	antCfg := ant.DefaultStart(m.runtime.GridW, m.runtime.GridH)
	antCfg.ShowPath = m.sim.ShowPath()

	sim, err := ant.New(antCfg)
	if err != nil {
		// Terminal shrunk to nothing; keep the old automaton frozen
		m.paused = true
		return m, tickCmd(m.delayMS)
	}

	m.sim = sim
	m.screen.Clear()
	m.paused = false
	m.finished = false
	m.runSaved = false
	m.startedAt = time.Now()
	return m, tickCmd(m.delayMS)
}

// saveRun records the run once, best-effort.
func (m *Model) saveRun(reason string) {
	if m.store == nil || m.runSaved || m.sim.Steps() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the run ends regardless
	m.store.SaveRun(storage.RunEntry{
		Width:     m.sim.Width(),
		Height:    m.sim.Height(),
		Steps:     int64(m.sim.Steps()),
		EndReason: reason,
		Duration:  int(time.Since(m.startedAt).Seconds()),
	})
	m.runSaved = true
}

// View renders the screen buffer with the counter on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showCounter && !m.finished {
		counter := fmt.Sprintf("%d", m.sim.Steps())
		if m.paused {
			counter += " ⏸"
		} else {
			// Pad over a stale pause glyph after unpausing
			counter += "  "
		}
		m.screen.DrawText(0, 0, counter)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single simulation session.
func Run(rt core.RuntimeConfig, simCfg config.SimConfig, store *storage.Store) error {
	model, err := NewModel(rt, simCfg, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
