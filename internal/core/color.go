package core

// Color represents a color for a screen cell or a board bead.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorLightGray
	ColorBlack
	ColorIndigo
	ColorTeal
	ColorAmber
	ColorSky
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright-white"
	case ColorGray:
		return "gray"
	case ColorLightGray:
		return "light-gray"
	case ColorBlack:
		return "black"
	case ColorIndigo:
		return "indigo"
	case ColorTeal:
		return "teal"
	case ColorAmber:
		return "amber"
	case ColorSky:
		return "sky"
	default:
		return "unknown"
	}
}
