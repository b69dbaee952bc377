// Package ansi provides ANSI SGR sequences and palette presets for the
// styled emission sink.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Default       = "\x1b[39m"
	Black         = "\x1b[30m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	Faint         = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"
)

// Palette assigns a color to each token class the renderer styles. The
// zero Palette disables styling entirely.
type Palette struct {
	// String colors a string's rendering, opening quote through closing
	// quote, minus escape sequences.
	String string
	// Escape colors escape sequences inside strings.
	Escape string
	// Value colors scalar tokens (numbers, true, false, null and the
	// non-finite float extensions).
	Value string
	// Reset is written after each styled span.
	Reset string
}

// PaletteDefault is the classic jsonpp scheme: red string bodies, cyan
// escape sequences, magenta scalars, resetting to the default foreground.
var PaletteDefault = Palette{
	String: Red,
	Escape: Cyan,
	Value:  Magenta,
	Reset:  Default,
}

// PaletteBright is PaletteDefault shifted to the bright SGR range for
// terminals with muted base colors.
var PaletteBright = Palette{
	String: BrightRed,
	Escape: BrightCyan,
	Value:  BrightMagenta,
	Reset:  Default,
}

// PaletteDoomDracula borrows doom-dracula's purple and cyan accents.
var PaletteDoomDracula = Palette{
	String: "\x1b[38;5;141m",
	Escape: "\x1b[38;5;81m",
	Value:  "\x1b[38;5;219m",
	Reset:  Reset,
}

// PaletteTokyoNight draws on Tokyo Night's neon blues and violets.
var PaletteTokyoNight = Palette{
	String: "\x1b[38;5;110m",
	Escape: "\x1b[38;5;117m",
	Value:  "\x1b[38;5;176m",
	Reset:  Reset,
}

// PaletteMonokaiVibrant mixes Monokai's minty greens and neon pinks.
var PaletteMonokaiVibrant = Palette{
	String: "\x1b[38;5;121m",
	Escape: "\x1b[38;5;229m",
	Value:  "\x1b[38;5;198m",
	Reset:  Reset,
}
