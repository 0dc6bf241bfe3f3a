package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func newTestSessionModel(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	m := NewSessionModel(cfg, log.New(io.Discard))
	t.Cleanup(func() { m.Close() })
	return m
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

// startGame picks the highlighted menu entry and returns the game's journal.
func startGame(t *testing.T, m SessionModel) (SessionModel, *storage.Journal) {
	t.Helper()
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("selecting a menu entry should start a game")
	}
	j := m.gameModel.Journal()
	if j == nil {
		t.Fatal("started game has no journal")
	}
	if _, err := j.Summary(); err != nil {
		t.Fatalf("journal of a running game: %v", err)
	}
	return m, j
}

func journalClosed(j *storage.Journal) bool {
	_, err := j.Summary()
	return err != nil
}

func TestSessionModelFlow(t *testing.T) {
	pause := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	quit := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

	tests := []struct {
		name         string
		msgs         []tea.Msg
		wantInGame   bool
		wantQuitting bool
	}{
		{"esc while running stays in game", []tea.Msg{TickMsg{}, esc}, true, false},
		{"pause then esc returns to menu", []tea.Msg{pause, TickMsg{}, esc}, false, false},
		{"quit ends the session", []tea.Msg{quit}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, j := startGame(t, newTestSessionModel(t))
			for _, msg := range tt.msgs {
				m = updateSession(t, m, msg)
			}

			if inGame := m.gameModel != nil; inGame != tt.wantInGame {
				t.Errorf("in game = %v, want %v", inGame, tt.wantInGame)
			}
			if m.quitting != tt.wantQuitting {
				t.Errorf("quitting = %v, want %v", m.quitting, tt.wantQuitting)
			}
			if closed := journalClosed(j); closed == tt.wantInGame {
				t.Errorf("journal closed = %v, want %v", closed, !tt.wantInGame)
			}
			if !tt.wantInGame && !tt.wantQuitting && m.View() == "" {
				t.Error("menu view should not be empty after returning")
			}
		})
	}
}

func TestSessionModelReplaysAfterMenu(t *testing.T) {
	m, first := startGame(t, newTestSessionModel(t))
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updateSession(t, m, TickMsg{})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	_, second := startGame(t, m)
	if first == second {
		t.Fatal("a new game should get a new journal")
	}
	if !journalClosed(first) {
		t.Error("journal of the finished game should be closed")
	}
	if journalClosed(second) {
		t.Error("journal of the running game should be open")
	}
}

func TestSessionModelCloseReleasesRunningGame(t *testing.T) {
	m, j := startGame(t, newTestSessionModel(t))
	m = updateSession(t, m, TickMsg{})

	// The connection goes away while the game is still running.
	if err := m.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if !journalClosed(j) {
		t.Error("Close should release the running game's journal")
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestSessionModelGameAfterCloseIsReleased(t *testing.T) {
	m := newTestSessionModel(t)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	// A key already queued in the program may still start a game.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil || m.gameModel.Journal() == nil {
		t.Fatal("selecting a menu entry should start a game with a journal")
	}
	if !journalClosed(m.gameModel.Journal()) {
		t.Error("a game started after Close should have its journal closed")
	}
}
