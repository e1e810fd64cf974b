package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// Terminals report key presses but not releases, so movement keys are
// latched: a fresh press holds the direction long enough to bridge the
// terminal's initial key-repeat delay, and each repeat extends it briefly.
const (
	holdFirst  = 30 // frames held after the first press
	holdRepeat = 6  // frames held after an auto-repeat
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "j":
		return core.ActionThrow, false
	case "k", "x":
		return core.ActionSwing, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	case "c":
		return core.ActionToggleControl, false
	}

	return core.ActionNone, false
}

// IsMovement reports whether an action is a held direction rather than an edge.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// InputLatch accumulates key presses between ticks and produces one
// InputFrame per tick. Edge actions fire once; movement stays held.
type InputLatch struct {
	held    map[core.Action]int
	pending core.InputFrame
}

// NewInputLatch creates an empty latch.
func NewInputLatch() *InputLatch {
	return &InputLatch{
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records an action for the next frame.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !IsMovement(a) {
		l.pending.Set(a)
		return
	}

	delete(l.held, opposite(a))
	if l.held[a] > 0 {
		l.held[a] = max(l.held[a], holdRepeat)
	} else {
		l.held[a] = holdFirst
	}
}

// Next returns the frame for this tick and advances the hold timers.
func (l *InputLatch) Next() core.InputFrame {
	frame := l.pending.Clone()
	for a, n := range l.held {
		if n > 0 {
			frame.Set(a)
		}
		if n <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = n - 1
		}
	}
	l.pending.Clear()
	return frame
}

// Release drops every held direction (e.g. on pause or focus loss).
func (l *InputLatch) Release() {
	clear(l.held)
}
