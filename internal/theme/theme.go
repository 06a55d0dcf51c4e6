// Package theme provides the layered color themes for the certificate issuer UI.
package theme

import (
	"fmt"
	"strings"

	"emissor/internal/color"
)

// Theme is the capability set every concrete theme supplies.
// Implementations are read-only and safe to share between goroutines.
type Theme interface {
	Name() string

	// Base colors
	Surface() color.Color    // Cards, sheets, menus
	Background() color.Color // Behind all scrollable content
	Error() color.Color      // Errors, destructive actions

	// Derived overlays
	ElevationOverlay() *ElevationOverlay
	ContrastStateOverlay() States  // Interaction tints built on the contrast color
	PrimaryStateOverlay() States   // Interaction tints built on the primary color
	SecondaryStateOverlay() States // Interaction tints built on the secondary color

	// Graduated palettes
	PrimaryPalette() Palette
	SecondaryPalette() Palette

	// Outline blends the outline overlay with c.
	Outline(c color.Color) color.Color
	// SurfaceOverlay blends the chip and text-field overlay with c.
	SurfaceOverlay(c color.Color) color.Color
	// EmphasisOnSurface tints text or icons drawn on the surface color.
	EmphasisOnSurface(c color.Color, level EmphasisLevel) color.Color
	// EmphasisOnPrimary tints text or icons drawn on the primary color.
	EmphasisOnPrimary(c color.Color, level EmphasisLevel) color.Color
}

// EmphasisLevel sets how strongly content stands out from its background.
type EmphasisLevel int

const (
	EmphasisHigh EmphasisLevel = iota
	EmphasisMedium
	EmphasisDisabled
)

var emphasisNames = map[EmphasisLevel]string{
	EmphasisHigh:     "high",
	EmphasisMedium:   "medium",
	EmphasisDisabled: "disabled",
}

// EmphasisLevels returns every level from strongest to weakest.
func EmphasisLevels() []EmphasisLevel {
	return []EmphasisLevel{EmphasisHigh, EmphasisMedium, EmphasisDisabled}
}

func (l EmphasisLevel) String() string {
	if name, ok := emphasisNames[l]; ok {
		return name
	}
	return fmt.Sprintf("EmphasisLevel(%d)", int(l))
}

// ParseEmphasisLevel accepts "high", "medium" or "disabled" in any case.
func ParseEmphasisLevel(raw string) (EmphasisLevel, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for level, candidate := range emphasisNames {
		if candidate == name {
			return level, nil
		}
	}
	return EmphasisHigh, validationError("invalid emphasis level: %q", raw)
}

// emphasisOverlays maps each level to its premultiplied overlay color.
type emphasisOverlays map[EmphasisLevel]color.Color

func newEmphasisOverlays(base color.Color, high, medium, disabled float64) emphasisOverlays {
	return emphasisOverlays{
		EmphasisHigh:     tint(base, high),
		EmphasisMedium:   tint(base, medium),
		EmphasisDisabled: tint(base, disabled),
	}
}

// blend mixes the level's overlay with c. Levels outside the known set fall
// back to the disabled overlay.
func (o emphasisOverlays) blend(c color.Color, level EmphasisLevel) color.Color {
	overlay, ok := o[level]
	if !ok {
		overlay = o[EmphasisDisabled]
	}
	return overlay.Blend(c)
}

// tint premultiplies base by alpha. Channels come from a valid Color, so only
// a bad alpha in a static table can fail here.
func tint(base color.Color, alpha float64) color.Color {
	c, err := color.FromRGBA(int(base.R()), int(base.G()), int(base.B()), alpha)
	if err != nil {
		panic(fmt.Sprintf("theme: invalid overlay alpha %v: %v", alpha, err))
	}
	return c
}
