package fishgrab

import (
	"testing"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/maze"
)

func TestResolve(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"#.f.#",
		"#.#.#",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	start := State{Agent: core.P(1, 1), Status: StatusPlaying}

	tests := []struct {
		name      string
		dx, dy    int
		outcome   Outcome
		to        core.Point
		score     int
		collected int
	}{
		{"into wall above", 0, -1, OutcomeBlocked, core.P(1, 1), 0, 0},
		{"into wall left", -1, 0, OutcomeBlocked, core.P(1, 1), 0, 0},
		{"onto floor below", 0, 1, OutcomeMoved, core.P(1, 2), 0, 0},
		{"onto fish", 1, 0, OutcomeCollected, core.P(2, 1), ItemValue, 1},
		{"stay in place", 0, 0, OutcomeMoved, core.P(1, 1), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mv := Resolve(m, start, tc.dx, tc.dy)

			if mv.Outcome != tc.outcome {
				t.Errorf("Outcome = %v, expected %v", mv.Outcome, tc.outcome)
			}
			if mv.To != tc.to || mv.After.Agent != tc.to {
				t.Errorf("To = %v, After.Agent = %v, expected %v", mv.To, mv.After.Agent, tc.to)
			}
			if mv.After.Score != tc.score || mv.After.Collected != tc.collected {
				t.Errorf("score/collected = %d/%d, expected %d/%d",
					mv.After.Score, mv.After.Collected, tc.score, tc.collected)
			}
			if mv.Before != start || mv.From != start.Agent {
				t.Errorf("Before/From should describe the starting state")
			}
		})
	}

	// Resolve never writes to the maze
	if c, _ := m.CellAt(2, 1); c != maze.Item {
		t.Errorf("Resolve mutated the maze: (2,1) = %v", c)
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	// Open grid: (0,1) is floor on the left edge.
	m, _ := maze.Parse([]string{
		"...",
		"...",
		"...",
	})
	s := State{Agent: core.P(0, 1), Status: StatusPlaying}

	mv := Resolve(m, s, -1, 0)
	if !mv.Blocked() {
		t.Fatalf("move to (-1,1) should be blocked, got %v", mv.Outcome)
	}
	if mv.After != s {
		t.Errorf("blocked move changed state: %+v", mv.After)
	}
	if mv.To != s.Agent {
		t.Errorf("blocked move should stay at %v, got %v", s.Agent, mv.To)
	}
}

func TestResolveLastFishWins(t *testing.T) {
	m, _ := maze.Parse([]string{
		".f",
	})
	s := State{
		Agent:     core.P(0, 0),
		Score:     (ItemMax - 1) * ItemValue,
		Collected: ItemMax - 1,
		Status:    StatusPlaying,
	}

	mv := Resolve(m, s, 1, 0)
	if mv.Outcome != OutcomeWon {
		t.Fatalf("Outcome = %v, expected won", mv.Outcome)
	}
	if !mv.After.Won() || mv.After.Collected != ItemMax || mv.After.Score != ItemMax*ItemValue {
		t.Errorf("After = %+v, expected a won state with %d fish", mv.After, ItemMax)
	}
}

func TestResolveAfterWinOnlyMoves(t *testing.T) {
	m, _ := maze.Parse([]string{
		"..f",
	})
	won := State{
		Agent:     core.P(1, 0),
		Score:     ItemMax,
		Collected: ItemMax,
		Moves:     40,
		Status:    StatusWon,
	}

	mv := Resolve(m, won, 1, 0)
	if mv.Outcome != OutcomeMoved {
		t.Fatalf("Outcome = %v, expected moved", mv.Outcome)
	}
	expected := won
	expected.Agent = core.P(2, 0)
	if mv.After != expected {
		t.Errorf("After = %+v, expected only the position to change: %+v", mv.After, expected)
	}
}

func TestOutcomeString(t *testing.T) {
	names := map[Outcome]string{
		OutcomeBlocked:   "blocked",
		OutcomeMoved:     "moved",
		OutcomeCollected: "collected",
		OutcomeWon:       "won",
		Outcome(42):      "unknown",
	}
	for o, expected := range names {
		if o.String() != expected {
			t.Errorf("Outcome(%d).String() = %q, expected %q", int(o), o.String(), expected)
		}
	}
}
