package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // A, Left arrow - rotate the starfield west
	ActionRotateRight        // D, Right arrow - rotate the starfield east
	ActionRotateUp           // W, Up arrow - tilt the starfield north
	ActionRotateDown         // S, Down arrow - tilt the starfield south
	ActionZoomIn             // +, = - zoom in on the starfield
	ActionZoomOut            // - - zoom out
	ActionBoost              // B - fire the ultra boost (area attack)
	ActionLeap               // L - leap to the next galaxy
	ActionAutoAim            // T - toggle auto-aim fire
	ActionCycleColor         // C - cycle the laser color (cosmetic)
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // Escape - go back to menu
	ActionRestart            // R key - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionRotateUp:
		return "RotateUp"
	case ActionRotateDown:
		return "RotateDown"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionBoost:
		return "Boost"
	case ActionLeap:
		return "Leap"
	case ActionAutoAim:
		return "AutoAim"
	case ActionCycleColor:
		return "CycleColor"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Besides discrete actions it carries pointer input: a click targets an
// entity on screen, a drag rotates the projection.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicked reports a primary-button click this frame at (ClickX, ClickY)
	// in screen cell coordinates.
	Clicked bool
	ClickX  int
	ClickY  int

	// DragDX/DragDY carry pointer drag deltas (cells) accumulated this frame.
	DragDX int
	DragDY int
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a click at the given screen cell.
func (f *InputFrame) SetClick(x, y int) {
	f.Clicked = true
	f.ClickX = x
	f.ClickY = y
}

// AddDrag accumulates a pointer drag delta.
func (f *InputFrame) AddDrag(dx, dy int) {
	f.DragDX += dx
	f.DragDY += dy
}

// Clear resets all actions and pointer state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicked = false
	f.ClickX = 0
	f.ClickY = 0
	f.DragDX = 0
	f.DragDY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicked = f.Clicked
	clone.ClickX = f.ClickX
	clone.ClickY = f.ClickY
	clone.DragDX = f.DragDX
	clone.DragDY = f.DragDY
	return clone
}
