package core

import "math"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - move up / forward
	ActionDown                 // S, Down arrow - move down / back
	ActionLeft                 // A, Left arrow - move or turn left
	ActionRight                // D, Right arrow - move or turn right
	ActionThrow                // Space, J - throw sushi (one per press)
	ActionSwing                // K, X - swing the pole (one per press)
	ActionConfirm              // Enter - start from the menu
	ActionBack                 // B - return to the menu after a run
	ActionRestart              // R key - restart after game over / victory
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionPause                // P, Escape - pause/unpause game
	ActionToggleControl        // C - switch between direction and spin controls
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
	case ActionThrow:
		return "Throw"
	case ActionSwing:
		return "Swing"
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
	case ActionToggleControl:
		return "ToggleControl"
	default:
		return "Unknown"
	}
}

// InputFrame is the read-only intent snapshot for one simulation tick.
// Discrete actions are edges (set once per key press); movement actions
// are levels held by the platform for as long as the key is considered down.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Joystick is an analog movement direction in radians. Only meaningful
	// when JoystickActive is set; it overrides the keyboard composite.
	JoystickActive bool
	Joystick       float64

	// Aim is the aim-stick direction in radians, used for throws while held.
	AimActive bool
	Aim       float64

	// Touch marks a touch-primary device, which gives the aim stick
	// precedence over facing when throwing.
	Touch bool
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

// Clear resets all actions and analog sticks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.JoystickActive = false
	f.AimActive = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Movement returns the normalized movement intent and whether any is present.
// The joystick, when active, overrides the keyboard composite.
func (f InputFrame) Movement() (Vec2, bool) {
	if f.JoystickActive {
		return FromAngle(f.Joystick, 1), true
	}

	var v Vec2
	if f.Has(ActionLeft) {
		v.X--
	}
	if f.Has(ActionRight) {
		v.X++
	}
	if f.Has(ActionUp) {
		v.Y--
	}
	if f.Has(ActionDown) {
		v.Y++
	}
	if v.X == 0 && v.Y == 0 {
		return Vec2{}, false
	}
	l := math.Hypot(v.X, v.Y)
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}
