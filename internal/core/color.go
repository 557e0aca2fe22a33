package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorGray
	ColorYellow
	ColorBrightWhite
)
