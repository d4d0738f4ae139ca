package core

// Color represents a foreground color for a screen cell.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPurple
)

// colorNames maps config-friendly names to colors.
var colorNames = map[string]Color{
	"default":     ColorDefault,
	"red":         ColorRed,
	"green":       ColorGreen,
	"yellow":      ColorYellow,
	"blue":        ColorBlue,
	"magenta":     ColorMagenta,
	"cyan":        ColorCyan,
	"white":       ColorWhite,
	"orange":      ColorOrange,
	"gray":        ColorGray,
	"brown":       ColorBrown,
	"saddlebrown": ColorBrown,
	"purple":      ColorPurple,
}

// ColorByName looks up a color by its lower-case name.
// Unknown names return ColorDefault and false.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
