package color

// ANSI palette using xterm default RGB values
var (
	Black   = Create(0, 0, 0)
	Red     = Create(205, 0, 0)
	Green   = Create(0, 205, 0)
	Yellow  = Create(205, 205, 0)
	Blue    = Create(0, 0, 238)
	Magenta = Create(205, 0, 205)
	Cyan    = Create(0, 205, 205)
	White   = Create(229, 229, 229)

	BrightBlack   = Create(127, 127, 127)
	BrightRed     = Create(255, 0, 0)
	BrightGreen   = Create(0, 255, 0)
	BrightYellow  = Create(255, 255, 0)
	BrightBlue    = Create(92, 92, 255)
	BrightMagenta = Create(255, 0, 255)
	BrightCyan    = Create(0, 255, 255)
	BrightWhite   = Create(255, 255, 255)
)

// ansiByName maps lower case palette names to colors, used by config parsing
var ansiByName = map[string]TileColor{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright_black":   BrightBlack,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,
	"bright_white":   BrightWhite,
}

// ANSIByName returns a palette color by name
func ANSIByName(name string) (TileColor, bool) {
	c, ok := ansiByName[name]
	return c, ok
}
