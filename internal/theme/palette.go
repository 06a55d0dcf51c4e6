package theme

import (
	"strconv"
	"strings"

	"emissor/internal/color"
)

// Swatch is a weight on the graduated palette scale.
type Swatch int

const (
	Swatch50  Swatch = 50
	Swatch100 Swatch = 100
	Swatch200 Swatch = 200
	Swatch300 Swatch = 300
	Swatch400 Swatch = 400
	Swatch500 Swatch = 500
	Swatch600 Swatch = 600
	Swatch700 Swatch = 700
	Swatch800 Swatch = 800
	Swatch900 Swatch = 900
)

var swatchOrder = [...]Swatch{
	Swatch50, Swatch100, Swatch200, Swatch300, Swatch400,
	Swatch500, Swatch600, Swatch700, Swatch800, Swatch900,
}

// Swatches returns the ten palette weights from lightest to darkest.
func Swatches() []Swatch {
	out := make([]Swatch, len(swatchOrder))
	copy(out, swatchOrder[:])
	return out
}

func (s Swatch) index() (int, bool) {
	for i, candidate := range swatchOrder {
		if candidate == s {
			return i, true
		}
	}
	return 0, false
}

// String returns the label form, e.g. "c500".
func (s Swatch) String() string {
	return "c" + strconv.Itoa(int(s))
}

// ParseSwatch accepts "500" or "c500".
func ParseSwatch(raw string) (Swatch, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "c")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, validationError("invalid swatch: %q", raw)
	}
	s := Swatch(n)
	if _, ok := s.index(); !ok {
		return 0, notFoundError("swatch %q not in palette scale", raw)
	}
	return s, nil
}

// PaletteEntry pairs a swatch with its color.
type PaletteEntry struct {
	Swatch Swatch
	Color  color.Color
}

// Palette is an immutable set of exactly ten graduated colors.
type Palette struct {
	colors [len(swatchOrder)]color.Color
}

// NewPalette validates that entries holds exactly the ten palette swatches.
func NewPalette(entries map[Swatch]color.Color) (Palette, error) {
	var p Palette
	if len(entries) != len(swatchOrder) {
		return p, validationError("palette needs %d swatches, got %d", len(swatchOrder), len(entries))
	}
	for s, c := range entries {
		i, ok := s.index()
		if !ok {
			return p, validationError("unexpected palette swatch %d", int(s))
		}
		p.colors[i] = c
	}
	return p, nil
}

// mustPalette builds a palette from hex strings ordered 50 through 900.
func mustPalette(hexes ...string) Palette {
	entries := make(map[Swatch]color.Color, len(hexes))
	for i, h := range hexes {
		if i >= len(swatchOrder) {
			break
		}
		entries[swatchOrder[i]] = color.MustHex(h)
	}
	p, err := NewPalette(entries)
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the color for s.
func (p Palette) Get(s Swatch) (color.Color, error) {
	i, ok := s.index()
	if !ok {
		return color.Color{}, notFoundError("swatch %d not in palette scale", int(s))
	}
	return p.colors[i], nil
}

// Entries lists the palette from lightest to darkest swatch.
func (p Palette) Entries() []PaletteEntry {
	out := make([]PaletteEntry, len(swatchOrder))
	for i, s := range swatchOrder {
		out[i] = PaletteEntry{Swatch: s, Color: p.colors[i]}
	}
	return out
}
