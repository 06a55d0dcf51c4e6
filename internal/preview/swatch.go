package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/indent"

	"emissor/internal/color"
	"emissor/internal/theme"
)

const labelWidth = 11

// Swatch renders label on a block filled with c.
func Swatch(c color.Color, label string) string {
	return lipgloss.NewStyle().
		Background(Lipgloss(c)).
		Foreground(Lipgloss(ContrastText(c))).
		Padding(0, 1).
		Render(label)
}

// Row joins a left-aligned label column with swatches.
func Row(label string, swatches ...string) string {
	if pad := labelWidth - ansi.StringWidth(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{label}, swatches...)...)
}

// Theme renders every color group of t as labelled swatch rows.
func Theme(t theme.Theme) string {
	styles := NewStyles(t)
	surface := t.Surface()

	var rows []string
	rows = append(rows, Row("base",
		Swatch(surface, "surface"),
		Swatch(t.Background(), "background"),
		Swatch(t.Error(), "error"),
		Swatch(t.Outline(surface), "outline"),
	))
	rows = append(rows, paletteRow("primary", t.PrimaryPalette()))
	rows = append(rows, paletteRow("secondary", t.SecondaryPalette()))

	overlay := t.ElevationOverlay()
	var elevation []string
	for _, level := range theme.ElevationLevels() {
		c, err := overlay.Elevation(level)
		if err != nil {
			continue
		}
		elevation = append(elevation, Swatch(c, "dp"+strconv.Itoa(level)))
	}
	rows = append(rows, Row("elevation", elevation...))

	for _, group := range []string{"contrast", "primary", "secondary"} {
		states, err := theme.StateGroup(t, group)
		if err != nil {
			continue
		}
		var cells []string
		for _, s := range theme.AllStates() {
			c, err := states.Apply(s, surface)
			if err != nil {
				continue
			}
			cells = append(cells, Swatch(c, string(s)))
		}
		rows = append(rows, Row(group+" st", cells...))
	}

	var emphasis []string
	for _, level := range theme.EmphasisLevels() {
		emphasis = append(emphasis, Swatch(t.EmphasisOnSurface(surface, level), level.String()))
	}
	rows = append(rows, Row("emphasis", emphasis...))

	body := indent.String(strings.Join(rows, "\n"), 2)
	return lipgloss.JoinVertical(lipgloss.Left, styles.Header.Render(t.Name()), body)
}

func paletteRow(label string, p theme.Palette) string {
	var cells []string
	for _, e := range p.Entries() {
		cells = append(cells, Swatch(e.Color, strings.TrimPrefix(e.Swatch.String(), "c")))
	}
	return Row(label, cells...)
}
