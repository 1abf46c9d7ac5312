package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fishgrab/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color untouched.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightWhite: "15",
	core.ColorBlack:       "16",
	core.ColorTeal:        "30",
	core.ColorIndigo:      "54",
	core.ColorSky:         "117",
	core.ColorAmber:       "214",
	core.ColorGray:        "245",
	core.ColorLightGray:   "252",
}

// colorCount is the number of defined core colors.
const colorCount = int(core.ColorSky) + 1

// styles holds one style per foreground/background pair. It is filled once
// at init and only read afterwards, so SSH sessions can render concurrently.
var styles [colorCount][colorCount]lipgloss.Style

func init() {
	for fg := range colorCount {
		for bg := range colorCount {
			st := lipgloss.NewStyle()
			if c, ok := palette[core.Color(fg)]; ok {
				st = st.Foreground(c)
			}
			if c, ok := palette[core.Color(bg)]; ok {
				st = st.Background(c)
			}
			styles[fg][bg] = st
		}
	}
}

func cellStyle(fg, bg core.Color) lipgloss.Style {
	if int(fg) >= colorCount {
		fg = core.ColorDefault
	}
	if int(bg) >= colorCount {
		bg = core.ColorDefault
	}
	return styles[fg][bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
