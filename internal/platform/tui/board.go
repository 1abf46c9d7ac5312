// Package tui provides the Bubble Tea host for Fish Grab.
// It implements the game's render, audio and random ports on a bead board,
// maps keys to moves, and serves the same UI over SSH.
package tui

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/games/fishgrab"
)

// Bead is one board cell as the host sees it.
type Bead struct {
	Color      core.Color
	Glyph      rune // 0 means no glyph
	GlyphColor core.Color
}

// BoardOptions controls how the board is drawn and how sound cues are played.
type BoardOptions struct {
	BeadWidth   int       // Terminal columns per bead
	ASCIIGlyphs bool      // Replace the fish and grabber runes with > and @
	Bell        io.Writer // Receives BEL for sound cues; nil mutes
}

// Board is a grid of beads that implements fishgrab.Host.
// It is owned by a single session and is not safe for concurrent use.
type Board struct {
	width  int
	height int
	beads  []Bead
	status string
	rng    *rand.Rand
	opts   BoardOptions
	logger *log.Logger

	lastSound string
	sounds    int
}

var _ fishgrab.Host = (*Board)(nil)

// NewBoard creates a width x height board drawing from a seeded random source.
func NewBoard(width, height int, seed int64, opts BoardOptions, logger *log.Logger) *Board {
	if opts.BeadWidth < 1 {
		opts.BeadWidth = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		width:  width,
		height: height,
		beads:  make([]Bead, width*height),
		rng:    rand.New(rand.NewSource(seed)),
		opts:   opts,
		logger: logger,
	}
}

func (b *Board) bead(x, y int) *Bead {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.beads[y*b.width+x]
}

// SetCellColor implements fishgrab.RenderPort.
func (b *Board) SetCellColor(x, y int, c core.Color) {
	if bd := b.bead(x, y); bd != nil {
		bd.Color = c
	}
}

// SetGlyph implements fishgrab.RenderPort.
func (b *Board) SetGlyph(x, y int, glyph rune) {
	if bd := b.bead(x, y); bd != nil {
		bd.Glyph = glyph
	}
}

// SetGlyphColor implements fishgrab.RenderPort.
func (b *Board) SetGlyphColor(x, y int, c core.Color) {
	if bd := b.bead(x, y); bd != nil {
		bd.GlyphColor = c
	}
}

// SetStatusText implements fishgrab.RenderPort.
func (b *Board) SetStatusText(text string) {
	b.status = text
}

// PlaySound rings the terminal bell and logs the cue.
func (b *Board) PlaySound(name string) {
	b.lastSound = name
	b.sounds++
	b.logger.Debug("sound", "cue", name)
	if b.opts.Bell != nil {
		if _, err := io.WriteString(b.opts.Bell, "\a"); err != nil {
			b.logger.Debug("bell failed", "error", err)
		}
	}
}

// RandomInt implements fishgrab.RandomSource.
func (b *Board) RandomInt(n int) int {
	return b.rng.Intn(n)
}

// Width returns the board width in beads.
func (b *Board) Width() int { return b.width }

// Height returns the board height in beads.
func (b *Board) Height() int { return b.height }

// Bead returns the bead at (x, y). Out of range returns the zero bead.
func (b *Board) Bead(x, y int) Bead {
	if bd := b.bead(x, y); bd != nil {
		return *bd
	}
	return Bead{}
}

// Status returns the current status line.
func (b *Board) Status() string { return b.status }

// LastSound returns the most recent sound cue and how many cues have played.
func (b *Board) LastSound() (string, int) { return b.lastSound, b.sounds }

// DrawWidth returns the number of terminal columns the board occupies.
func (b *Board) DrawWidth() int { return b.width * b.opts.BeadWidth }

// displayGlyph maps a board glyph to what the terminal shows.
func (b *Board) displayGlyph(g rune) rune {
	if !b.opts.ASCIIGlyphs {
		return g
	}
	switch g {
	case fishgrab.GlyphFish:
		return '>'
	case fishgrab.GlyphGrabber:
		return '@'
	}
	return g
}

// Draw paints the board onto the screen with its top-left corner at (x0, y0).
// Each bead spans BeadWidth columns; the glyph sits in the first column.
func (b *Board) Draw(s *core.Screen, x0, y0 int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			bd := b.beads[y*b.width+x]
			for i := 0; i < b.opts.BeadWidth; i++ {
				cell := core.Cell{Rune: ' ', Fg: bd.GlyphColor, Bg: bd.Color}
				if i == 0 && bd.Glyph != 0 {
					cell.Rune = b.displayGlyph(bd.Glyph)
				}
				s.SetCell(x0+x*b.opts.BeadWidth+i, y0+y, cell)
			}
		}
	}
}
