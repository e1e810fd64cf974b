package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionThrow, false},
		{"j", runeKey('j'), core.ActionThrow, false},
		{"k", runeKey('k'), core.ActionSwing, false},
		{"x", runeKey('x'), core.ActionSwing, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"c", runeKey('c'), core.ActionToggleControl, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestInputLatchEdgesFireOnce(t *testing.T) {
	l := NewInputLatch()
	l.Press(core.ActionThrow)
	l.Press(core.ActionNone)

	f := l.Next()
	if !f.Has(core.ActionThrow) {
		t.Fatal("throw should be in the first frame")
	}
	if f.Has(core.ActionNone) {
		t.Error("ActionNone must never be set")
	}
	if l.Next().Has(core.ActionThrow) {
		t.Error("throw should not repeat")
	}
}

func TestInputLatchHoldsMovement(t *testing.T) {
	l := NewInputLatch()
	l.Press(core.ActionUp)

	for i := 0; i < holdFirst; i++ {
		if !l.Next().Has(core.ActionUp) {
			t.Fatalf("up released early at frame %d", i)
		}
	}
	if l.Next().Has(core.ActionUp) {
		t.Error("up should release after the hold window")
	}
}

func TestInputLatchRepeatExtends(t *testing.T) {
	l := NewInputLatch()
	l.Press(core.ActionLeft)
	for i := 0; i < holdFirst-2; i++ {
		l.Next()
	}
	// Two frames left; a repeat keeps it for at least holdRepeat more.
	l.Press(core.ActionLeft)
	for i := 0; i < holdRepeat; i++ {
		if !l.Next().Has(core.ActionLeft) {
			t.Fatalf("left released early at frame %d", i)
		}
	}
	if l.Next().Has(core.ActionLeft) {
		t.Error("left should release after the repeat window")
	}
}

func TestInputLatchOppositeCancels(t *testing.T) {
	l := NewInputLatch()
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	f := l.Next()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("left=%v right=%v; want only right", f.Has(core.ActionLeft), f.Has(core.ActionRight))
	}
}

func TestInputLatchRelease(t *testing.T) {
	l := NewInputLatch()
	l.Press(core.ActionUp)
	l.Press(core.ActionRight)
	l.Release()

	f := l.Next()
	if f.Has(core.ActionUp) || f.Has(core.ActionRight) {
		t.Error("release should drop held directions")
	}
}
