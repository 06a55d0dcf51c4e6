package theme

import "emissor/internal/color"

// Violet and teal baseline palettes shared by the dark and light themes.
var (
	violetPalette = mustPalette(
		"#F2E7FE", "#DBB2FF", "#BB86FC", "#985EFF", "#7F39FB",
		"#6200EE", "#5600E8", "#3700B3", "#30009C", "#23036A",
	)
	tealPalette = mustPalette(
		"#C8FFF4", "#70EFDE", "#03DAC5", "#00C4B4", "#00B3A6",
		"#01A299", "#019592", "#018786", "#017374", "#005457",
	)
)

// interactionAlphas are the state overlay opacities used by both themes.
var interactionAlphas = stateAlphas{
	hover:    0.04,
	focus:    0.12,
	pressed:  0.10,
	dragged:  0.08,
	selected: 0.08,
}

const outlineAlpha = 0.12

// definition carries the data behind a concrete theme and implements every
// Theme method. Concrete themes embed it.
type definition struct {
	name       string
	surface    color.Color
	background color.Color
	errorColor color.Color

	elevation *ElevationOverlay
	contrast  States
	primary   States
	secondary States

	primaryPalette   Palette
	secondaryPalette Palette

	outline           color.Color
	surfaceOverlay    color.Color
	emphasisSurface   emphasisOverlays
	emphasisOnPrimary emphasisOverlays
}

func (d *definition) Name() string                        { return d.name }
func (d *definition) Surface() color.Color                { return d.surface }
func (d *definition) Background() color.Color             { return d.background }
func (d *definition) Error() color.Color                  { return d.errorColor }
func (d *definition) ElevationOverlay() *ElevationOverlay { return d.elevation }
func (d *definition) ContrastStateOverlay() States        { return d.contrast }
func (d *definition) PrimaryStateOverlay() States         { return d.primary }
func (d *definition) SecondaryStateOverlay() States       { return d.secondary }
func (d *definition) PrimaryPalette() Palette             { return d.primaryPalette }
func (d *definition) SecondaryPalette() Palette           { return d.secondaryPalette }

func (d *definition) Outline(c color.Color) color.Color {
	return d.outline.Blend(c)
}

func (d *definition) SurfaceOverlay(c color.Color) color.Color {
	return d.surfaceOverlay.Blend(c)
}

func (d *definition) EmphasisOnSurface(c color.Color, level EmphasisLevel) color.Color {
	return d.emphasisSurface.blend(c, level)
}

func (d *definition) EmphasisOnPrimary(c color.Color, level EmphasisLevel) color.Color {
	return d.emphasisOnPrimary.blend(c, level)
}

// paletteColor reads a swatch from one of the static palettes.
func paletteColor(p Palette, s Swatch) color.Color {
	c, err := p.Get(s)
	if err != nil {
		panic(err)
	}
	return c
}
