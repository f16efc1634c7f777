package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
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

// LaserPalette lists the selectable player laser colors, in cycle order.
var LaserPalette = []Color{
	ColorBrightCyan,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorBrightYellow,
	ColorBrightRed,
}

// StarPalette lists the cosmetic star colors the generator draws from.
var StarPalette = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightCyan,
}
