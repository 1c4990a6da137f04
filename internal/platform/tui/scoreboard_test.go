package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

func TestScoreboardToggle(t *testing.T) {
	store := openTestStore(t)
	for _, rec := range []storage.ScoreRecord{
		{GameID: memory.ID, Profile: "alice", Score: 20, Rows: 2, Cols: 4, Moves: 5},
		{GameID: memory.ID, Profile: "bob", Score: 40, Rows: 4, Cols: 4, Moves: 11},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "alice", 100, 30)
	if len(m.Scores()) != 2 || m.Scores()[0].Profile != "bob" {
		t.Fatalf("all scores = %+v", m.Scores())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Scores()) != 1 || m.Scores()[0].Profile != "alice" {
		t.Errorf("own scores = %+v", m.Scores())
	}
	if !strings.Contains(m.View(), "alice") {
		t.Error("title should name the profile")
	}
}

func TestScoreboardBackAndEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("view without store:\n%s", m.View())
	}

	next, cmd := m.Update(runeKey('b'))
	sb := next.(ScoreboardModel)
	if !sb.IsGoingBack() || sb.IsQuitting() || cmd == nil {
		t.Error("b should go back")
	}

	empty := NewScoreboardModel(openTestStore(t), "", 100, 30)
	if !strings.Contains(empty.View(), "No scores") {
		t.Error("empty store should say so")
	}
}

func TestScoreboardHighlightsLastRun(t *testing.T) {
	store := openTestStore(t)
	var runs []string
	for _, score := range []int{40, 30, 20} {
		id, err := store.SaveScore(storage.ScoreRecord{GameID: memory.ID, Profile: "alice", Score: score, Rows: 2, Cols: 4, Moves: 6})
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, id)
	}

	m := NewScoreboardModel(store, "alice", 100, 30).WithLastRun(runs[2])
	if m.LastRun() == nil || m.LastRun().Score != 20 {
		t.Fatalf("last run = %+v", m.LastRun())
	}
	if m.SelectedRow() != 2 {
		t.Errorf("selected row = %d, want 2", m.SelectedRow())
	}
	if view := m.View(); !strings.Contains(view, "Your last board: 20 points") || !strings.Contains(view, "rank #3") {
		t.Errorf("view should summarize the last run:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if sb := next.(ScoreboardModel); sb.SelectedRow() != 2 {
		t.Errorf("toggle lost the highlight, row = %d", sb.SelectedRow())
	}

	unknown := NewScoreboardModel(store, "alice", 100, 30).WithLastRun("no-such-run")
	if unknown.LastRun() != nil || unknown.SelectedRow() != 0 {
		t.Error("unknown run should not be highlighted")
	}
	if strings.Contains(unknown.View(), "Your last board") {
		t.Error("no summary without a last run")
	}
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(store, testRuntime("carol"), nil)
	if m.SessionID() == "" {
		t.Fatal("session id should be set")
	}

	// First entry is the easy preset.
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeGame || m.gameModel == nil {
		t.Fatalf("mode = %v, want game", m.mode)
	}

	m = sessionStep(t, m, runeKey('b'))
	if m.mode != modeMenu || m.quitting {
		t.Fatalf("back should return to the menu, mode = %v", m.mode)
	}

	// High scores sits after the presets.
	for range 3 {
		m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeScores {
		t.Fatalf("mode = %v, want scores", m.mode)
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Fatalf("esc should return to the menu, mode = %v", m.mode)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
