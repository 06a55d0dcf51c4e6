package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"emissor/internal/debug"
	"emissor/internal/preview"
	"emissor/internal/theme"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse theme tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}

// browseKeyMap lists the bindings of the browse view.
type browseKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Theme key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Theme: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "next theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy hex"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Theme, k.Copy, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type copiedMsg struct {
	hex string
	err error
}

type browseModel struct {
	tokens []string
	cursor int
	status string
	keys   browseKeyMap
	help   help.Model
}

func newBrowseModel() browseModel {
	return browseModel{
		tokens: browseTokens(),
		keys:   defaultBrowseKeyMap(),
		help:   help.New(),
	}
}

// browseTokens returns every token Resolve understands, in display order.
func browseTokens() []string {
	tokens := []string{"surface", "background", "error"}
	for _, group := range []string{"primary", "secondary"} {
		for _, sw := range theme.Swatches() {
			tokens = append(tokens, group+"."+strconv.Itoa(int(sw)))
		}
	}
	for _, level := range theme.ElevationLevels() {
		tokens = append(tokens, "elevation."+strconv.Itoa(level))
	}
	return tokens
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("Copied '%s' to clipboard.", msg.hex)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tokens)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Theme):
			name := theme.CycleTheme()
			debug.Logf("browse: switched to theme %s", name)
			m.status = "Theme: " + name
		case key.Matches(msg, m.keys.Copy):
			c, err := theme.Resolve(theme.Current(), m.tokens[m.cursor])
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			hex := c.Hex()
			return m, func() tea.Msg {
				return copiedMsg{hex: hex, err: copyToClipboard(hex)}
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	t := theme.Current()
	styles := preview.NewStyles(t)

	var b strings.Builder
	b.WriteString(styles.Header.Render("Theme: " + t.Name()))
	b.WriteString("\n\n")
	for i, token := range m.tokens {
		c, err := theme.Resolve(t, token)
		if err != nil {
			continue
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + preview.Swatch(c, "      ") + " " + fmt.Sprintf("%-14s %s", token, c.Hex())
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.TextMuted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
