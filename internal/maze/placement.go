package maze

import (
	"fmt"

	"github.com/vovakirdan/fishgrab/internal/core"
)

// MaxPlacementAttempts bounds the rejection sampling in PlaceRandom before it
// falls back to scanning the whole grid.
const MaxPlacementAttempts = 1024

// Rand is a uniform random source. Intn returns a value in [0, n).
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceRandom picks a uniformly random Floor cell, stores code there and
// returns its coordinate.
//
// Cells are sampled at random until a floor cell turns up. After
// MaxPlacementAttempts misses the remaining floor cells are collected and one
// of them is chosen uniformly; if none is left ErrNoFloor is returned and the
// maze is unchanged.
func (m *Maze) PlaceRandom(rng Rand, code Code) (core.Point, error) {
	if code == Wall {
		return core.Point{}, fmt.Errorf("%w: cannot place a wall", ErrTopology)
	}

	for range MaxPlacementAttempts {
		x := rng.Intn(m.w)
		y := rng.Intn(m.h)
		if m.cells[m.index(x, y)] != Floor {
			continue
		}
		if err := m.SetCell(x, y, code); err != nil {
			return core.Point{}, err
		}
		return core.P(x, y), nil
	}

	free := m.Cells(Floor)
	if len(free) == 0 {
		return core.Point{}, ErrNoFloor
	}
	p := free[rng.Intn(len(free))]
	if err := m.SetCell(p.X, p.Y, code); err != nil {
		return core.Point{}, err
	}
	return p, nil
}
