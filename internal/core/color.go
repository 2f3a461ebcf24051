package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. Meteors use the warm range, stars yellow, bombs cyan.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Dim returns the darker variant used for fading debris.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed, ColorOrange:
		return ColorRed
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite, ColorWhite:
		return ColorGray
	}
	return ColorGray
}
