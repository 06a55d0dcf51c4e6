package preview

import (
	"fmt"

	"github.com/muesli/termenv"

	"emissor/internal/color"
	"emissor/internal/config"
)

// FormatColor prints c as "#rrggbb" or "rgb(r, g, b)".
func FormatColor(c color.Color, format string) string {
	if format == config.FormatRGB {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R(), c.G(), c.B())
	}
	return c.Hex()
}

// Nearest describes how c is emitted under profile: the hex value on true
// color terminals, otherwise the palette index the terminal falls back to.
func Nearest(c color.Color, profile termenv.Profile) string {
	switch v := profile.Color(c.Hex()).(type) {
	case termenv.RGBColor:
		return "truecolor " + string(v)
	case termenv.ANSI256Color:
		return fmt.Sprintf("ansi256 %d", int(v))
	case termenv.ANSIColor:
		return fmt.Sprintf("ansi %d", int(v))
	default:
		return "none"
	}
}

// ProfileName returns a short label for a terminal color profile.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
