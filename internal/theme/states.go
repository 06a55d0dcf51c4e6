package theme

import (
	"strings"

	"emissor/internal/color"
)

// State names one interaction state.
type State string

const (
	StateHover    State = "hover"
	StateFocus    State = "focus"
	StatePressed  State = "pressed"
	StateDragged  State = "dragged"
	StateSelected State = "selected"
)

// AllStates returns the interaction states in display order.
func AllStates() []State {
	return []State{StateHover, StateFocus, StatePressed, StateDragged, StateSelected}
}

// ParseState normalises and validates a state name.
func ParseState(raw string) (State, error) {
	state := State(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range AllStates() {
		if s == state {
			return s, nil
		}
	}
	return "", notFoundError("unknown interaction state: %q", raw)
}

// States holds the five interaction tints of one overlay group. Each method
// blends its tint with the given color and leaves the tints untouched.
type States struct {
	hover    color.Color
	focus    color.Color
	pressed  color.Color
	dragged  color.Color
	selected color.Color
}

// NewStates stores the five tint colors as given.
func NewStates(hover, focus, pressed, dragged, selected color.Color) States {
	return States{
		hover:    hover,
		focus:    focus,
		pressed:  pressed,
		dragged:  dragged,
		selected: selected,
	}
}

// stateAlphas is the opacity of the overlay color for each state.
type stateAlphas struct {
	hover, focus, pressed, dragged, selected float64
}

func (a stateAlphas) apply(base color.Color) States {
	return NewStates(
		tint(base, a.hover),
		tint(base, a.focus),
		tint(base, a.pressed),
		tint(base, a.dragged),
		tint(base, a.selected),
	)
}

func (s States) Hover(c color.Color) color.Color    { return s.hover.Blend(c) }
func (s States) Focus(c color.Color) color.Color    { return s.focus.Blend(c) }
func (s States) Pressed(c color.Color) color.Color  { return s.pressed.Blend(c) }
func (s States) Dragged(c color.Color) color.Color  { return s.dragged.Blend(c) }
func (s States) Selected(c color.Color) color.Color { return s.selected.Blend(c) }

// Tint returns the raw tint stored for state.
func (s States) Tint(state State) (color.Color, error) {
	switch state {
	case StateHover:
		return s.hover, nil
	case StateFocus:
		return s.focus, nil
	case StatePressed:
		return s.pressed, nil
	case StateDragged:
		return s.dragged, nil
	case StateSelected:
		return s.selected, nil
	}
	return color.Color{}, notFoundError("unknown interaction state: %q", string(state))
}

// Apply blends the tint for state with c.
func (s States) Apply(state State, c color.Color) (color.Color, error) {
	t, err := s.Tint(state)
	if err != nil {
		return color.Color{}, err
	}
	return t.Blend(c), nil
}
