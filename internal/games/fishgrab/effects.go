package fishgrab

import (
	"fmt"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/maze"
)

// EffectKind selects which host call an Effect stands for.
type EffectKind int

const (
	EffectCellColor EffectKind = iota
	EffectGlyph
	EffectGlyphColor
	EffectStatus
	EffectSound
)

// Effect is a single call on the host ports, kept as data so that moves can
// be checked without a rendering host.
type Effect struct {
	Kind  EffectKind
	X, Y  int
	Color core.Color
	Glyph rune
	Text  string // Status text or sound name
}

// String returns a compact description, handy in test failures.
func (e Effect) String() string {
	switch e.Kind {
	case EffectCellColor:
		return fmt.Sprintf("color(%d,%d,%s)", e.X, e.Y, e.Color)
	case EffectGlyph:
		return fmt.Sprintf("glyph(%d,%d,%q)", e.X, e.Y, e.Glyph)
	case EffectGlyphColor:
		return fmt.Sprintf("glyphColor(%d,%d,%s)", e.X, e.Y, e.Color)
	case EffectStatus:
		return fmt.Sprintf("status(%q)", e.Text)
	case EffectSound:
		return fmt.Sprintf("sound(%q)", e.Text)
	default:
		return "effect(?)"
	}
}

func cellColor(p core.Point, c core.Color) Effect {
	return Effect{Kind: EffectCellColor, X: p.X, Y: p.Y, Color: c}
}

func glyph(p core.Point, g rune) Effect {
	return Effect{Kind: EffectGlyph, X: p.X, Y: p.Y, Glyph: g}
}

func glyphColor(p core.Point, c core.Color) Effect {
	return Effect{Kind: EffectGlyphColor, X: p.X, Y: p.Y, Color: c}
}

func status(text string) Effect {
	return Effect{Kind: EffectStatus, Text: text}
}

func sound(name string) Effect {
	return Effect{Kind: EffectSound, Text: name}
}

// Effects returns the host calls that present the move, in order.
// A blocked move has none.
func (mv Move) Effects() []Effect {
	var fx []Effect

	switch mv.Outcome {
	case OutcomeBlocked:
		return nil
	case OutcomeCollected:
		fx = append(fx,
			status(fmt.Sprintf(StatusScoreFormat, mv.After.Score)),
			sound(SoundCollect),
		)
	case OutcomeWon:
		fx = append(fx,
			status(fmt.Sprintf(StatusWinFormat, mv.After.Score)),
			sound(SoundWin),
		)
	}

	return append(fx,
		cellColor(mv.From, ColorFloor),
		glyph(mv.From, 0),
		glyph(mv.To, GlyphGrabber),
		glyphColor(mv.To, ColorGrabber),
	)
}

// boardEffects paints a freshly set up board: floor everywhere with no
// glyphs, walls, fish glyphs, the grabber and the intro text. Clearing every
// glyph lets a restart reuse the host board.
func boardEffects(m *maze.Maze, agent core.Point) []Effect {
	fx := make([]Effect, 0, 2*m.Width()*m.Height()+64)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			fx = append(fx, cellColor(core.P(x, y), ColorFloor), glyph(core.P(x, y), 0))
		}
	}
	for _, p := range m.Cells(maze.Wall) {
		fx = append(fx, cellColor(p, ColorWall))
	}
	for _, p := range m.Cells(maze.Item) {
		fx = append(fx, glyph(p, GlyphFish), glyphColor(p, ColorFish))
	}

	return append(fx,
		glyph(agent, GlyphGrabber),
		glyphColor(agent, ColorGrabber),
		status(StatusIntro),
	)
}

// apply replays effects on the host ports.
func apply(r RenderPort, a AudioPort, fx []Effect) {
	for _, e := range fx {
		switch e.Kind {
		case EffectCellColor:
			r.SetCellColor(e.X, e.Y, e.Color)
		case EffectGlyph:
			r.SetGlyph(e.X, e.Y, e.Glyph)
		case EffectGlyphColor:
			r.SetGlyphColor(e.X, e.Y, e.Color)
		case EffectStatus:
			r.SetStatusText(e.Text)
		case EffectSound:
			a.PlaySound(e.Text)
		}
	}
}
