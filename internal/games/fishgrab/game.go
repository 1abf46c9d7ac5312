// Package fishgrab implements the fish grabbing maze game: a grabber walks a
// fixed maze and wins once it has collected every fish.
//
// The package is host-agnostic. Game drives a Host for drawing, sound and
// randomness; Resolve and Move.Effects are pure and need no host at all.
package fishgrab

import (
	"fmt"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/maze"
)

// Game rules.
const (
	ItemMax   = 15 // Fish placed on the board
	ItemValue = 1  // Points per fish
)

// Presentation constants.
const (
	GlyphFish    = '⤕'
	GlyphGrabber = 'ᗢ'

	ColorFloor   = core.ColorIndigo
	ColorWall    = core.ColorBlack
	ColorFish    = core.ColorLightGray
	ColorGrabber = core.ColorAmber

	SoundCollect = "fx_coin7"
	SoundWin     = "fx_tada"

	StatusIntro       = "Use arrows/WASD to grab fish"
	StatusScoreFormat = "Score = %d"
	StatusWinFormat   = "You win with %d fish!"
)

// RenderPort draws the board. Coordinates are maze cells.
type RenderPort interface {
	SetCellColor(x, y int, c core.Color)
	SetGlyph(x, y int, glyph rune) // 0 clears the glyph
	SetGlyphColor(x, y int, c core.Color)
	SetStatusText(text string)
}

// AudioPort plays named sound cues.
type AudioPort interface {
	PlaySound(name string)
}

// RandomSource returns uniform integers in [0, n).
type RandomSource interface {
	RandomInt(n int) int
}

// Host is everything the game needs from its environment.
type Host interface {
	RenderPort
	AudioPort
	RandomSource
}

// hostRand adapts a RandomSource to maze.Rand.
type hostRand struct {
	src RandomSource
}

func (r hostRand) Intn(n int) int {
	return r.src.RandomInt(n)
}

// Game owns one maze and the grabber's state. Games share nothing, so any
// number of them can run side by side.
type Game struct {
	host   Host
	layout []string
	maze   *maze.Maze
	state  State
}

// New creates a game on the default maze. Call Initialize before moving.
func New(host Host) *Game {
	return NewWithLayout(host, maze.DefaultLayout)
}

// NewWithLayout creates a game on a custom layout.
func NewWithLayout(host Host, layout []string) *Game {
	return &Game{
		host:   host,
		layout: layout,
	}
}

// Initialize builds the maze, places the fish and then the grabber, and
// paints the whole board.
func (g *Game) Initialize() error {
	m, err := maze.Parse(g.layout)
	if err != nil {
		return fmt.Errorf("fishgrab: %w", err)
	}

	rng := hostRand{src: g.host}
	for i := range ItemMax {
		if _, err := m.PlaceRandom(rng, maze.Item); err != nil {
			return fmt.Errorf("fishgrab: place fish %d: %w", i+1, err)
		}
	}
	agent, err := m.PlaceRandom(rng, maze.Agent)
	if err != nil {
		return fmt.Errorf("fishgrab: place grabber: %w", err)
	}

	g.maze = m
	g.state = State{
		Agent:  agent,
		Status: StatusPlaying,
	}

	apply(g.host, g.host, boardEffects(m, agent))
	return nil
}

// Restart starts a new game on a fresh copy of the layout.
func (g *Game) Restart() error {
	return g.Initialize()
}

// HandleDirection is the entry point for directional input.
func (g *Game) HandleDirection(dx, dy int) Move {
	return g.AttemptMove(dx, dy)
}

// AttemptMove moves the grabber by (dx, dy) if the target is free, collects
// a fish there and presents the result through the host. Blocked moves
// change nothing and produce no host calls.
func (g *Game) AttemptMove(dx, dy int) Move {
	if g.maze == nil {
		return Move{Outcome: OutcomeBlocked}
	}

	mv := Resolve(g.maze, g.state, dx, dy)
	if mv.Blocked() {
		return mv
	}

	g.commit(mv)
	apply(g.host, g.host, mv.Effects())
	return mv
}

// commit writes a resolved move into the maze and the state.
func (g *Game) commit(mv Move) {
	// Resolve only lets the grabber onto in-bounds non-wall cells, so these
	// cannot fail.
	if err := g.maze.SetCell(mv.From.X, mv.From.Y, maze.Floor); err != nil {
		panic(fmt.Sprintf("fishgrab: leave %v: %v", mv.From, err))
	}
	if err := g.maze.SetCell(mv.To.X, mv.To.Y, maze.Agent); err != nil {
		panic(fmt.Sprintf("fishgrab: enter %v: %v", mv.To, err))
	}
	g.state = mv.After
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Maze returns a copy of the current maze, or nil before Initialize.
func (g *Game) Maze() *maze.Maze {
	if g.maze == nil {
		return nil
	}
	return g.maze.Clone()
}

// ItemsLeft returns the number of fish still on the board.
func (g *Game) ItemsLeft() int {
	if g.maze == nil {
		return 0
	}
	return g.maze.Count(maze.Item)
}
