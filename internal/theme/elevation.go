package theme

import (
	"emissor/internal/color"
)

// elevationAlphas is the contrast weight applied at each depth level (dp).
var elevationAlphas = []struct {
	level int
	alpha float64
}{
	{1, 0.05},
	{2, 0.07},
	{3, 0.08},
	{4, 0.09},
	{6, 0.11},
	{8, 0.12},
	{12, 0.14},
	{16, 0.15},
	{24, 0.16},
}

// ElevationLevels returns the canonical depth levels in ascending order.
func ElevationLevels() []int {
	levels := make([]int, len(elevationAlphas))
	for i, e := range elevationAlphas {
		levels[i] = e.level
	}
	return levels
}

// ElevationOverlay holds the surface tints used to simulate depth. The table
// is computed once and never changes.
type ElevationOverlay struct {
	members map[int]color.Color
}

// NewElevationOverlay blends surface with contrast weighted by each level's alpha.
func NewElevationOverlay(surface, contrast color.Color) *ElevationOverlay {
	members := make(map[int]color.Color, len(elevationAlphas))
	for _, e := range elevationAlphas {
		members[e.level] = surface.Blend(tint(contrast, e.alpha))
	}
	return &ElevationOverlay{members: members}
}

// Elevation returns the overlay color for level. Levels outside
// ElevationLevels fail with a not-found error.
func (e *ElevationOverlay) Elevation(level int) (color.Color, error) {
	c, ok := e.members[level]
	if !ok {
		return color.Color{}, notFoundError("elevation level %d not in %v", level, ElevationLevels())
	}
	return c, nil
}

// AllMembers returns a copy of the level table.
func (e *ElevationOverlay) AllMembers() map[int]color.Color {
	out := make(map[int]color.Color, len(e.members))
	for level, c := range e.members {
		out[level] = c
	}
	return out
}
