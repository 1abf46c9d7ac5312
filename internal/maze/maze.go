// Package maze models the fixed maze the grabber walks through: a rectangular
// grid of cell codes with bounds-checked access and randomized placement on
// free floor cells.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/fishgrab/internal/core"
)

// Code is the content of a single maze cell.
type Code uint8

// Cell codes. The numeric values are the map encoding: 0 wall, 1 floor,
// 2 item, 3 agent.
const (
	Wall Code = iota
	Floor
	Item
	Agent
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Item:
		return "item"
	case Agent:
		return "agent"
	default:
		return fmt.Sprintf("code(%d)", uint8(c))
	}
}

// Rune returns the layout character for the code.
func (c Code) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Floor:
		return '.'
	case Item:
		return 'f'
	case Agent:
		return '@'
	default:
		return '?'
	}
}

func (c Code) valid() bool {
	return c <= Agent
}

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")

	// ErrTopology is returned when a mutation would add or remove a wall.
	ErrTopology = errors.New("maze: walls cannot be added or removed")

	// ErrNoFloor is returned when no floor cell is left for a placement.
	ErrNoFloor = errors.New("maze: no floor cell available")

	// ErrLayout is returned for malformed layouts.
	ErrLayout = errors.New("maze: invalid layout")
)

// Maze is a W×H grid of cell codes stored in row-major order: index = y*W + x.
// Walls are fixed for the lifetime of a maze; the other codes change as items
// are collected and the agent moves.
type Maze struct {
	w, h  int
	cells []Code
}

// New creates a maze from a row-major slice of codes. The slice is copied.
func New(w, h int, cells []Code) (*Maze, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrLayout, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrLayout, len(cells), w, h)
	}
	for i, c := range cells {
		if !c.valid() {
			return nil, fmt.Errorf("%w: unknown code %d at (%d,%d)", ErrLayout, c, i%w, i/w)
		}
	}

	m := &Maze{w: w, h: h, cells: make([]Code, len(cells))}
	copy(m.cells, cells)
	return m, nil
}

// Parse builds a maze from text rows using '#' wall, '.' floor, 'f' item and
// '@' agent. All rows must have the same length.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayout)
	}

	w := len([]rune(rows[0]))
	cells := make([]Code, 0, w*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrLayout, y, len(runes), w)
		}
		for x, r := range runes {
			c, ok := codeFor(r)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrLayout, r, x, y)
			}
			cells = append(cells, c)
		}
	}

	return New(w, len(rows), cells)
}

func codeFor(r rune) (Code, bool) {
	switch r {
	case '#':
		return Wall, true
	case '.':
		return Floor, true
	case 'f':
		return Item, true
	case '@':
		return Agent, true
	default:
		return 0, false
	}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.h
}

// InBounds returns true if (x, y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

func (m *Maze) index(x, y int) int {
	return y*m.w + x
}

// CellAt returns the code at (x, y).
func (m *Maze) CellAt(x, y int) (Code, error) {
	if !m.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, m.w, m.h)
	}
	return m.cells[m.index(x, y)], nil
}

// SetCell stores code at (x, y). Walls are immutable: turning a wall into
// anything else, or anything else into a wall, fails with ErrTopology.
func (m *Maze) SetCell(x, y int, code Code) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, m.w, m.h)
	}
	if !code.valid() {
		return fmt.Errorf("%w: unknown code %d", ErrLayout, code)
	}
	i := m.index(x, y)
	if (m.cells[i] == Wall) != (code == Wall) {
		return fmt.Errorf("%w: (%d,%d) %s -> %s", ErrTopology, x, y, m.cells[i], code)
	}
	m.cells[i] = code
	return nil
}

// Count returns the number of cells holding code.
func (m *Maze) Count(code Code) int {
	n := 0
	for _, c := range m.cells {
		if c == code {
			n++
		}
	}
	return n
}

// Cells returns the coordinates of all cells holding code, row by row.
func (m *Maze) Cells(code Code) []core.Point {
	var pts []core.Point
	for i, c := range m.cells {
		if c == code {
			pts = append(pts, core.P(i%m.w, i/m.w))
		}
	}
	return pts
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	cells := make([]Code, len(m.cells))
	copy(cells, m.cells)
	return &Maze{w: m.w, h: m.h, cells: cells}
}

// Rows returns the maze as text rows in the Parse alphabet.
func (m *Maze) Rows() []string {
	rows := make([]string, m.h)
	for y := 0; y < m.h; y++ {
		var sb strings.Builder
		for x := 0; x < m.w; x++ {
			sb.WriteRune(m.cells[m.index(x, y)].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the rows joined with newlines.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n")
}
