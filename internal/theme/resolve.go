package theme

import (
	"strconv"
	"strings"

	"emissor/internal/color"
)

// Resolve looks up a named color token on t:
//
//	surface, background, error
//	primary.<swatch>, secondary.<swatch>   e.g. primary.500, secondary.c50
//	elevation.<level>                      e.g. elevation.8
func Resolve(t Theme, token string) (color.Color, error) {
	group, key, hasKey := strings.Cut(strings.ToLower(strings.TrimSpace(token)), ".")
	if !hasKey {
		switch group {
		case "surface":
			return t.Surface(), nil
		case "background":
			return t.Background(), nil
		case "error":
			return t.Error(), nil
		}
		return color.Color{}, notFoundError("unknown color token %q", token)
	}

	switch group {
	case "primary", "secondary":
		swatch, err := ParseSwatch(key)
		if err != nil {
			return color.Color{}, err
		}
		if group == "primary" {
			return t.PrimaryPalette().Get(swatch)
		}
		return t.SecondaryPalette().Get(swatch)
	case "elevation":
		level, err := strconv.Atoi(strings.TrimPrefix(key, "dp"))
		if err != nil {
			return color.Color{}, validationError("invalid elevation level %q", key)
		}
		return t.ElevationOverlay().Elevation(level)
	}
	return color.Color{}, notFoundError("unknown color token %q", token)
}

// StateGroup returns the overlay group named contrast, primary or secondary.
func StateGroup(t Theme, name string) (States, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "contrast":
		return t.ContrastStateOverlay(), nil
	case "primary":
		return t.PrimaryStateOverlay(), nil
	case "secondary":
		return t.SecondaryStateOverlay(), nil
	}
	return States{}, notFoundError("unknown state overlay group %q", name)
}

// ApplyState blends c with the overlay named by token, written as
// "<group>.<state>" such as "primary.hover".
func ApplyState(t Theme, token string, c color.Color) (color.Color, error) {
	groupName, stateName, ok := strings.Cut(token, ".")
	if !ok {
		return color.Color{}, validationError("state token %q must look like group.state", token)
	}
	group, err := StateGroup(t, groupName)
	if err != nil {
		return color.Color{}, err
	}
	state, err := ParseState(stateName)
	if err != nil {
		return color.Color{}, err
	}
	return group.Apply(state, c)
}
