package fishgrab

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fishgrab/internal/core"
	"github.com/vovakirdan/fishgrab/internal/maze"
)

// recordingHost records every port call as an Effect.
type recordingHost struct {
	rng   *rand.Rand
	calls []Effect
}

func newRecordingHost(seed int64) *recordingHost {
	return &recordingHost{rng: rand.New(rand.NewSource(seed))}
}

func (h *recordingHost) SetCellColor(x, y int, c core.Color) {
	h.calls = append(h.calls, Effect{Kind: EffectCellColor, X: x, Y: y, Color: c})
}

func (h *recordingHost) SetGlyph(x, y int, g rune) {
	h.calls = append(h.calls, Effect{Kind: EffectGlyph, X: x, Y: y, Glyph: g})
}

func (h *recordingHost) SetGlyphColor(x, y int, c core.Color) {
	h.calls = append(h.calls, Effect{Kind: EffectGlyphColor, X: x, Y: y, Color: c})
}

func (h *recordingHost) SetStatusText(text string) {
	h.calls = append(h.calls, Effect{Kind: EffectStatus, Text: text})
}

func (h *recordingHost) PlaySound(name string) {
	h.calls = append(h.calls, Effect{Kind: EffectSound, Text: name})
}

func (h *recordingHost) RandomInt(n int) int {
	return h.rng.Intn(n)
}

func (h *recordingHost) reset() {
	h.calls = nil
}

func (h *recordingHost) of(kind EffectKind) []Effect {
	var out []Effect
	for _, c := range h.calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// newTestGame builds a game on rows with the grabber already at agent.
func newTestGame(t *testing.T, h *recordingHost, rows []string, agent core.Point) *Game {
	t.Helper()

	m, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := m.SetCell(agent.X, agent.Y, maze.Agent); err != nil {
		t.Fatalf("SetCell(agent) failed: %v", err)
	}

	return &Game{
		host:   h,
		layout: rows,
		maze:   m,
		state:  State{Agent: agent, Status: StatusPlaying},
	}
}
