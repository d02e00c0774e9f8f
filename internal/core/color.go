package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette for the neon arcade look.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorWhite
	ColorGray
	ColorDim
	ColorBrightCyan
	ColorBrightMagenta
	ColorRed
)
