package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - request upward movement
	ActionDown           // S, Down arrow - request downward movement
	ActionLeft           // A, Left arrow - request leftward movement
	ActionRight          // D, Right arrow - request rightward movement
	ActionConfirm        // Enter, Space - start from title, restart after game over
	ActionBack           // Esc - cancel/quit during play
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state gathered during one rendered frame.
// It contains all actions that were triggered since the previous frame, plus
// any pointer (mouse) press with its screen-cell position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer press state for this frame. PointerX/PointerY are screen
	// cell coordinates, valid only when PointerPressed is true.
	PointerPressed bool
	PointerX       int
	PointerY       int
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

// SetPointer records a pointer press at the given screen cell.
func (f *InputFrame) SetPointer(x, y int) {
	f.PointerPressed = true
	f.PointerX = x
	f.PointerY = y
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and pointer state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerPressed = false
	f.PointerX = 0
	f.PointerY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerPressed = f.PointerPressed
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	return clone
}
