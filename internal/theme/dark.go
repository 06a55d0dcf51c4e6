package theme

import "emissor/internal/color"

// Dark surface palette
// https://m2.material.io/design/color/dark-theme.html
var dark = struct {
	Surface   string
	Error     string
	Contrast  color.Color
	OnPrimary color.Color
	Primary   Swatch
	Secondary Swatch
}{
	Surface:   "#121212",
	Error:     "#CF6679",
	Contrast:  color.White,
	OnPrimary: color.Black,
	Primary:   Swatch200,
	Secondary: Swatch200,
}

// DarkTheme implements Theme with white overlays on a #121212 surface.
type DarkTheme struct {
	*definition
}

// NewDarkTheme builds the dark theme tables.
func NewDarkTheme() DarkTheme {
	surface := color.MustHex(dark.Surface)
	return DarkTheme{&definition{
		name:       "dark",
		surface:    surface,
		background: surface,
		errorColor: color.MustHex(dark.Error),

		elevation: NewElevationOverlay(surface, dark.Contrast),
		contrast:  interactionAlphas.apply(dark.Contrast),
		primary:   interactionAlphas.apply(paletteColor(violetPalette, dark.Primary)),
		secondary: interactionAlphas.apply(paletteColor(tealPalette, dark.Secondary)),

		primaryPalette:   violetPalette,
		secondaryPalette: tealPalette,

		outline:           tint(dark.Contrast, outlineAlpha),
		surfaceOverlay:    tint(dark.Contrast, outlineAlpha),
		emphasisSurface:   newEmphasisOverlays(dark.Contrast, 0.87, 0.74, 0.38),
		emphasisOnPrimary: newEmphasisOverlays(dark.OnPrimary, 1.00, 0.74, 0.38),
	}}
}

func init() {
	RegisterTheme("dark", NewDarkTheme())
}
