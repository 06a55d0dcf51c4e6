package theme

import (
	"testing"

	"emissor/internal/color"
	appErrors "emissor/internal/errors"
)

var (
	_ Theme = DarkTheme{}
	_ Theme = LightTheme{}
)

func restoreDefault(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { SetTheme("dark") })
}

// TestAllThemesRegistered verifies that all expected themes are registered.
func TestAllThemesRegistered(t *testing.T) {
	available := Available()
	if len(available) != 2 || available[0] != "dark" || available[1] != "light" {
		t.Fatalf("Available() = %v, want [dark light]", available)
	}
}

func TestDefaultThemeIsDark(t *testing.T) {
	if CurrentName() != "dark" {
		t.Fatalf("CurrentName() = %q, want dark", CurrentName())
	}
	if Current().Name() != "dark" {
		t.Fatalf("Current().Name() = %q, want dark", Current().Name())
	}
}

// TestSetTheme verifies that theme switching works.
func TestSetTheme(t *testing.T) {
	restoreDefault(t)
	for _, name := range []string{"light", "dark"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
	}
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme(\"nonexistent-theme\") returned true, expected false")
	}
}

// TestCycleTheme verifies that cycling wraps around the sorted names.
func TestCycleTheme(t *testing.T) {
	restoreDefault(t)
	SetTheme("dark")
	if got := CycleTheme(); got != "light" {
		t.Fatalf("CycleTheme() = %q, want light", got)
	}
	if got := CycleTheme(); got != "dark" {
		t.Fatalf("CycleTheme() = %q, want dark", got)
	}
}

func TestLookup(t *testing.T) {
	th, err := Lookup("light")
	if err != nil {
		t.Fatalf("Lookup(light) returned error: %v", err)
	}
	if th.Surface().Hex() != "#ffffff" {
		t.Fatalf("light surface = %s", th.Surface())
	}
	if _, err := Lookup("sepia"); !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("Lookup(sepia) error = %v, want not found", err)
	}
}

func TestDarkThemeBaseColors(t *testing.T) {
	th := NewDarkTheme()
	checks := map[string]color.Color{
		"#121212": th.Surface(),
		"#cf6679": th.Error(),
	}
	for want, got := range checks {
		if got.Hex() != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
	if th.Background() != th.Surface() {
		t.Errorf("background %s differs from surface %s", th.Background(), th.Surface())
	}
}

func TestDarkThemeOverlays(t *testing.T) {
	th := NewDarkTheme()
	surface := th.Surface()

	cases := []struct {
		name string
		got  color.Color
		want string
	}{
		{"outline", th.Outline(surface), "#191919"},
		{"surface overlay", th.SurfaceOverlay(surface), "#191919"},
		{"emphasis high", th.EmphasisOnSurface(surface, EmphasisHigh), "#787878"},
		{"emphasis medium", th.EmphasisOnSurface(surface, EmphasisMedium), "#686868"},
		{"emphasis disabled", th.EmphasisOnSurface(surface, EmphasisDisabled), "#3a3a3a"},
		{"unknown level falls back to disabled", th.EmphasisOnSurface(surface, EmphasisLevel(9)), "#3a3a3a"},
		{"on primary high", th.EmphasisOnPrimary(color.MustHex("#BB86FC"), EmphasisHigh), "#5e437e"},
		{"contrast hover", th.ContrastStateOverlay().Hover(color.Black), "#060606"},
		{"primary hover", th.PrimaryStateOverlay().Hover(surface), "#0d0c0f"},
	}
	for _, tc := range cases {
		if tc.got.Hex() != tc.want {
			t.Errorf("%s = %s, want %s", tc.name, tc.got.Hex(), tc.want)
		}
	}
}

func TestLightThemeOverlays(t *testing.T) {
	th := NewLightTheme()
	primary := color.MustHex("#6200EE")

	cases := []struct {
		name string
		got  color.Color
		want string
	}{
		{"surface", th.Surface(), "#ffffff"},
		{"outline uses black", th.Outline(th.Surface()), "#808080"},
		{"emphasis on surface", th.EmphasisOnSurface(th.Surface(), EmphasisMedium), "#808080"},
		{"on primary high", th.EmphasisOnPrimary(primary, EmphasisHigh), "#b180f7"},
		{"on primary medium", th.EmphasisOnPrimary(primary, EmphasisMedium), "#905fd6"},
		{"on primary disabled", th.EmphasisOnPrimary(primary, EmphasisDisabled), "#6231a8"},
	}
	for _, tc := range cases {
		if tc.got.Hex() != tc.want {
			t.Errorf("%s = %s, want %s", tc.name, tc.got.Hex(), tc.want)
		}
	}
}

func TestThemeStateTints(t *testing.T) {
	th := NewDarkTheme()
	want := map[State]string{
		StateHover:    "#0b0b0b",
		StateFocus:    "#1f1f1f",
		StatePressed:  "#1a1a1a",
		StateDragged:  "#151515",
		StateSelected: "#151515",
	}
	for state, hex := range want {
		got, err := th.ContrastStateOverlay().Tint(state)
		if err != nil {
			t.Fatalf("Tint(%s) returned error: %v", state, err)
		}
		if got.Hex() != hex {
			t.Errorf("dark contrast %s tint = %s, want %s", state, got, hex)
		}
	}

	primaryFocus, _ := NewLightTheme().PrimaryStateOverlay().Tint(StateFocus)
	if primaryFocus.Hex() != "#0c001d" {
		t.Errorf("light primary focus tint = %s, want #0c001d", primaryFocus)
	}
}

func TestPalettesShared(t *testing.T) {
	darkTheme, lightTheme := NewDarkTheme(), NewLightTheme()
	if darkTheme.PrimaryPalette() != lightTheme.PrimaryPalette() {
		t.Fatal("expected both themes to share the primary palette")
	}
	entries := darkTheme.PrimaryPalette().Entries()
	if entries[0].Color.Hex() != "#f2e7fe" || entries[9].Color.Hex() != "#23036a" {
		t.Fatalf("unexpected violet palette ends: %s .. %s", entries[0].Color, entries[9].Color)
	}
	teal := darkTheme.SecondaryPalette().Entries()
	if teal[0].Color.Hex() != "#c8fff4" || teal[9].Color.Hex() != "#005457" {
		t.Fatalf("unexpected teal palette ends: %s .. %s", teal[0].Color, teal[9].Color)
	}
}

func TestEmphasisLevelParsing(t *testing.T) {
	for _, level := range EmphasisLevels() {
		got, err := ParseEmphasisLevel(" " + level.String() + " ")
		if err != nil || got != level {
			t.Errorf("ParseEmphasisLevel(%q) = %v, %v", level.String(), got, err)
		}
	}
	if got, _ := ParseEmphasisLevel("MEDIUM"); got != EmphasisMedium {
		t.Errorf("ParseEmphasisLevel(MEDIUM) = %v", got)
	}
	if _, err := ParseEmphasisLevel("loud"); !appErrors.IsCode(err, appErrors.CodeValidation) {
		t.Errorf("ParseEmphasisLevel(loud) error = %v, want validation", err)
	}
	if EmphasisLevel(7).String() != "EmphasisLevel(7)" {
		t.Errorf("unexpected String for unknown level: %s", EmphasisLevel(7))
	}
}
