// Package preview renders colors and themes for terminal output: lipgloss
// styles derived from a theme, swatch rows, and markdown summaries.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"emissor/internal/color"
	"emissor/internal/theme"
)

// Styles bundles lipgloss styles derived from one theme. Every style already
// carries the theme surface as background so callers don't need to chain it.
type Styles struct {
	Surface      lipgloss.Style
	Text         lipgloss.Style
	TextMuted    lipgloss.Style
	TextDisabled lipgloss.Style
	Error        lipgloss.Style
	Border       lipgloss.Style
	Header       lipgloss.Style

	// Elevation holds one background style per canonical depth level.
	Elevation map[int]lipgloss.Style
}

// NewStyles derives the text, border and elevation styles from t.
func NewStyles(t theme.Theme) Styles {
	surface := t.Surface()
	bg := Lipgloss(surface)
	primary, _ := t.PrimaryPalette().Get(theme.Swatch500)

	elevation := make(map[int]lipgloss.Style, len(theme.ElevationLevels()))
	for level, c := range t.ElevationOverlay().AllMembers() {
		elevation[level] = lipgloss.NewStyle().
			Background(Lipgloss(c)).
			Foreground(Lipgloss(t.EmphasisOnSurface(c, theme.EmphasisHigh)))
	}

	return Styles{
		Surface:      lipgloss.NewStyle().Background(bg),
		Text:         lipgloss.NewStyle().Background(bg).Foreground(Lipgloss(t.EmphasisOnSurface(surface, theme.EmphasisHigh))),
		TextMuted:    lipgloss.NewStyle().Background(bg).Foreground(Lipgloss(t.EmphasisOnSurface(surface, theme.EmphasisMedium))),
		TextDisabled: lipgloss.NewStyle().Background(bg).Foreground(Lipgloss(t.EmphasisOnSurface(surface, theme.EmphasisDisabled))),
		Error:        lipgloss.NewStyle().Background(bg).Foreground(Lipgloss(t.Error())).Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Lipgloss(t.Outline(surface))).
			BorderBackground(bg),
		Header: lipgloss.NewStyle().
			Background(Lipgloss(primary)).
			Foreground(Lipgloss(t.EmphasisOnPrimary(primary, theme.EmphasisHigh))).
			Bold(true).
			Padding(0, 1),
		Elevation: elevation,
	}
}

// Lipgloss converts c to a lipgloss color.
func Lipgloss(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// ContrastText picks black or white, whichever reads better on c.
func ContrastText(c color.Color) color.Color {
	luma := (299*int(c.R()) + 587*int(c.G()) + 114*int(c.B())) / 1000
	if luma >= 128 {
		return color.Black
	}
	return color.White
}
