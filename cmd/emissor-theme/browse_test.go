package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"emissor/internal/theme"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browseModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

func TestBrowseTokensResolve(t *testing.T) {
	tokens := browseTokens()
	if len(tokens) != 3+2*len(theme.Swatches())+len(theme.ElevationLevels()) {
		t.Fatalf("unexpected token count %d", len(tokens))
	}
	for _, name := range theme.Available() {
		th, _ := theme.Lookup(name)
		for _, token := range tokens {
			if _, err := theme.Resolve(th, token); err != nil {
				t.Fatalf("%s: resolve %q: %v", name, token, err)
			}
		}
	}
}

func TestBrowseCursorBounds(t *testing.T) {
	m := newBrowseModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first row: %d", m.cursor)
	}
	m, _ = update(t, m, runeKey("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	for i, n := 0, len(m.tokens)+3; i < n; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.tokens)-1 {
		t.Fatalf("cursor = %d, want last row %d", m.cursor, len(m.tokens)-1)
	}
}

func TestBrowseCyclesTheme(t *testing.T) {
	theme.SetTheme("dark")
	t.Cleanup(func() { theme.SetTheme("dark") })

	m, _ := update(t, newBrowseModel(), tea.KeyMsg{Type: tea.KeyTab})
	if theme.CurrentName() != "light" {
		t.Fatalf("current theme = %q, want light", theme.CurrentName())
	}
	if !strings.Contains(m.View(), "Theme: light") {
		t.Fatalf("view does not show light theme")
	}
}

func TestBrowseCopy(t *testing.T) {
	theme.SetTheme("dark")
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m, cmd := update(t, newBrowseModel(), runeKey("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m, _ = update(t, m, cmd())
	if copied != "#121212" {
		t.Fatalf("copied %q, want #121212", copied)
	}
	if !strings.Contains(m.status, "#121212") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestBrowseQuit(t *testing.T) {
	_, cmd := update(t, newBrowseModel(), runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestBrowseViewListsTokens(t *testing.T) {
	theme.SetTheme("dark")
	view := newBrowseModel().View()
	for _, want := range []string{"Theme: dark", "elevation.24", "#1e1e1e", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
}
