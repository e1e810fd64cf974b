package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{5000, "5,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.in); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardFilterCycles(t *testing.T) {
	store := openStore(t)
	store.SaveScore("sushi", 1500, 0)
	store.SaveScore("sushi", 7200, 1)
	store.SaveScore("sushi", 9100, 1)

	levels := []string{"Sushi Beach", "Crab Cove", "Jungle River"}
	m := NewScoreboardModel(store, "sushi", "Sushi Bros", levels, 100, 30)
	if len(m.visible()) != 3 {
		t.Fatalf("all-levels view = %d rows", len(m.visible()))
	}

	want := []int{1, 2, 0, 3} // level 0, level 1, level 2, back to all
	for i, n := range want {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
		if got := len(m.visible()); got != n {
			t.Errorf("step %d (filter %d): %d rows, want %d", i, m.filter, got, n)
		}
	}

	view := m.View()
	for _, s := range []string{"HIGH SCORES - Sushi Bros", "9,100", "Crab Cove", "Runs:"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestScoreboardEmptyAndNarrow(t *testing.T) {
	m := NewScoreboardModel(nil, "sushi", "Sushi Bros", nil, 60, 20)
	if m.showStats {
		t.Error("stats panel should hide on narrow terminals")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty message missing")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(ScoreboardModel).quitting || cmd == nil {
		t.Error("q should quit")
	}
}
