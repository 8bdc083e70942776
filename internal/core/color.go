package core

// Color is a foreground colour for a screen cell.
// The platform layer maps each value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorWhite
	ColorGray
)
