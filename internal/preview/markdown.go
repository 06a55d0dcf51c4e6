package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"emissor/internal/theme"
)

// Markdown renders a summary table of t. style is a glamour standard style
// ("dark", "light", "notty") or "plain" for unstyled wrapped text.
func Markdown(t theme.Theme, style string, width int) string {
	return buildMarkdownRenderer(style, width)(Summary(t))
}

// Summary returns the markdown source used by Markdown.
func Summary(t theme.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s theme\n\n", t.Name())

	b.WriteString("| token | color |\n|---|---|\n")
	fmt.Fprintf(&b, "| surface | %s |\n", t.Surface())
	fmt.Fprintf(&b, "| background | %s |\n", t.Background())
	fmt.Fprintf(&b, "| error | %s |\n", t.Error())
	fmt.Fprintf(&b, "| outline | %s |\n", t.Outline(t.Surface()))
	for _, level := range theme.ElevationLevels() {
		c, err := t.ElevationOverlay().Elevation(level)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "| elevation.%d | %s |\n", level, c)
	}

	b.WriteString("\n| swatch | primary | secondary |\n|---|---|---|\n")
	secondary := t.SecondaryPalette()
	for _, e := range t.PrimaryPalette().Entries() {
		s, _ := secondary.Get(e.Swatch)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Swatch, e.Color, s)
	}
	return b.String()
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
