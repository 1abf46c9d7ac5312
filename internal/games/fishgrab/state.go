package fishgrab

import (
	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/maze"
)

// Status is the phase of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// State is everything a move can change besides the maze itself.
type State struct {
	Agent     core.Point
	Score     int
	Collected int
	Moves     int // Successful moves made before the win
	Status    Status
}

// Won reports whether every fish has been collected.
func (s State) Won() bool {
	return s.Status == StatusWon
}

// Outcome classifies a resolved move.
type Outcome int

const (
	OutcomeBlocked   Outcome = iota // Off the grid or into a wall; nothing changes
	OutcomeMoved                    // Onto a free cell
	OutcomeCollected                // Onto a fish
	OutcomeWon                      // Onto the last fish
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeCollected:
		return "collected"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Move is the result of resolving one directional input.
type Move struct {
	Outcome Outcome
	From    core.Point
	To      core.Point // Equal to From when blocked
	Before  State
	After   State
}

// Blocked reports whether the move was rejected.
func (mv Move) Blocked() bool {
	return mv.Outcome == OutcomeBlocked
}

// Resolve computes the effect of moving the agent by (dx, dy) without
// touching the maze. Moves off the grid or into a wall come back as
// OutcomeBlocked with After equal to Before.
func Resolve(m *maze.Maze, s State, dx, dy int) Move {
	mv := Move{
		Outcome: OutcomeBlocked,
		From:    s.Agent,
		To:      s.Agent,
		Before:  s,
		After:   s,
	}

	to := s.Agent.Add(dx, dy)
	code, err := m.CellAt(to.X, to.Y)
	if err != nil || code == maze.Wall {
		return mv
	}

	next := s
	next.Agent = to
	mv.Outcome = OutcomeMoved

	if s.Status == StatusPlaying {
		next.Moves++
		if code == maze.Item {
			next.Score += ItemValue
			next.Collected++
			mv.Outcome = OutcomeCollected
			if next.Collected >= ItemMax {
				next.Status = StatusWon
				mv.Outcome = OutcomeWon
			}
		}
	}

	mv.To = to
	mv.After = next
	return mv
}
