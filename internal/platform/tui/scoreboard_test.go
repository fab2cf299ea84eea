package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardLoadsScores(t *testing.T) {
	store := testStore(t)
	store.SaveScore("paintdrop", 30, 3)
	store.SaveScore("paintdrop", 75, 5)
	store.SaveScore("other", 500, 9)

	m := NewScoreboardModel(store, "paintdrop", "Paint Drop", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "75" || rows[0][2] != "5" {
		t.Errorf("first row = %v, expected best score with its round", rows[0])
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Paint Drop") {
		t.Error("View() should name the game")
	}
}

func TestScoreboardStatsPanel(t *testing.T) {
	store := testStore(t)
	store.SaveScore("paintdrop", 10, 2)
	store.SaveScore("paintdrop", 30, 4)

	tests := []struct {
		name          string
		width, height int
	}{
		{"wide", 100, 30},
		{"narrow", 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(store, "paintdrop", "Paint Drop", tt.width, tt.height)

			if m.stats == nil || m.stats.GamesCount != 2 || m.stats.BestLevel != 4 {
				t.Fatalf("stats = %+v", m.stats)
			}
			view := m.View()
			for _, want := range []string{"Games      2", "Best       30", "Best round 4", "Average    20.0"} {
				if !strings.Contains(view, want) {
					t.Errorf("View() missing %q", want)
				}
			}
		})
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(testStore(t), "paintdrop", "Paint Drop", 60, 20)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
	if !strings.Contains(view, "no games yet") {
		t.Error("empty stats panel should say so")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "paintdrop", "Paint Drop", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := next.(ScoreboardModel)
	if !sb.IsGoingBack() || sb.IsQuitting() || cmd == nil {
		t.Error("esc should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	sb = next.(ScoreboardModel)
	if !sb.IsQuitting() {
		t.Error("q should quit")
	}
}
