package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fishgrab/internal/storage"
)

type fakeLister struct {
	all    []storage.Run
	mine   []storage.Run
	err    error
	player string
}

func (f *fakeLister) TopRuns(limit int) ([]storage.Run, error) {
	return f.all, f.err
}

func (f *fakeLister) PlayerRuns(player string, limit int) ([]storage.Run, error) {
	f.player = player
	return f.mine, f.err
}

func TestRunRows(t *testing.T) {
	when := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
	rows := runRows([]storage.Run{
		{Player: "alice", Score: 15, Moves: 88, Duration: 75*time.Second + 250*time.Millisecond, CreatedAt: when},
		{Score: 15, Moves: 90, Duration: 5 * time.Second, CreatedAt: when},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "alice", "15", "88", "1:15.3", "Mar 04 15:30"}
	for i, col := range want {
		if rows[0][i] != col {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "-" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{59*time.Second + 960*time.Millisecond, "1:00.0"},
		{10*time.Minute + 3*time.Second, "10:03.0"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeLister{}, "", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say no runs")
	}

	nilStore := NewScoreboardModel(nil, "", 80, 24)
	if !strings.Contains(nilStore.View(), "No runs recorded yet") {
		t.Error("scoreboard without a store should say no runs")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(&fakeLister{err: errors.New("locked")}, "", 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	lister := &fakeLister{all: []storage.Run{{Player: "bob", Score: 15, Moves: 61}}}
	m := NewScoreboardModel(lister, "", 100, 30)

	view := m.View()
	if !strings.Contains(view, "bob") || !strings.Contains(view, "61") {
		t.Errorf("view does not list the run:\n%s", view)
	}
}

func TestScoreboardFilter(t *testing.T) {
	lister := &fakeLister{
		all:  []storage.Run{{Player: "bob", Score: 15, Moves: 61}},
		mine: []storage.Run{{Player: "carol", Score: 15, Moves: 70}},
	}
	m := NewScoreboardModel(lister, "carol", 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if lister.player != "carol" {
		t.Errorf("PlayerRuns called for %q, want carol", lister.player)
	}
	if !strings.Contains(m.View(), "RUNS BY carol") {
		t.Error("title should name the filtered player")
	}

	// Without a player the filter key does nothing.
	anon := NewScoreboardModel(lister, "", 100, 30)
	next, _ = anon.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).mineOnly {
		t.Error("filter enabled without a player")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeLister{}, "", 80, 24)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
