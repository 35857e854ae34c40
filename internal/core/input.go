package core

// Action represents a semantic control action, abstracted from physical key
// presses. The driver works with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionPause                // P - pause/resume the simulation
	ActionRestart              // R - restart with a fresh grid
	ActionQuit                 // Q, Ctrl+C - exit
	ActionSpeedUp              // + - shorten the delay between steps
	ActionSlowDown             // - - lengthen the delay between steps
	ActionTogglePath           // T - toggle the visited-path marker
	ActionToggleCounter        // C - show/hide the step counter
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSlowDown:
		return "SlowDown"
	case ActionTogglePath:
		return "TogglePath"
	case ActionToggleCounter:
		return "ToggleCounter"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered since the last simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
