package theme

import "emissor/internal/color"

// Light surface palette
// https://m2.material.io/design/color/the-color-system.html
var light = struct {
	Surface   string
	Error     string
	Contrast  color.Color
	OnPrimary color.Color
	Primary   Swatch
	Secondary Swatch
}{
	Surface:   "#FFFFFF",
	Error:     "#CF6679",
	Contrast:  color.Black,
	OnPrimary: color.White,
	Primary:   Swatch500,
	Secondary: Swatch700,
}

// LightTheme implements Theme with black overlays on a white surface.
type LightTheme struct {
	*definition
}

// NewLightTheme builds the light theme tables.
func NewLightTheme() LightTheme {
	surface := color.MustHex(light.Surface)
	return LightTheme{&definition{
		name:       "light",
		surface:    surface,
		background: surface,
		errorColor: color.MustHex(light.Error),

		elevation: NewElevationOverlay(surface, light.Contrast),
		contrast:  interactionAlphas.apply(light.Contrast),
		primary:   interactionAlphas.apply(paletteColor(violetPalette, light.Primary)),
		secondary: interactionAlphas.apply(paletteColor(tealPalette, light.Secondary)),

		primaryPalette:   violetPalette,
		secondaryPalette: tealPalette,

		outline:           tint(light.Contrast, outlineAlpha),
		surfaceOverlay:    tint(light.Contrast, outlineAlpha),
		emphasisSurface:   newEmphasisOverlays(light.Contrast, 0.87, 0.60, 0.38),
		emphasisOnPrimary: newEmphasisOverlays(light.OnPrimary, 1.00, 0.74, 0.38),
	}}
}

func init() {
	RegisterTheme("light", NewLightTheme())
}
