package color

import (
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGBA is the four-channel input shape: integer channels in [0,255] and an
// alpha weight in [0,1] that is premultiplied into the channels.
type RGBA struct {
	R, G, B int
	A       float64
}

// FromChannels builds a color from three channels in [0,255].
func FromChannels(r, g, b int) (Color, error) {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA builds a color from channels in [0,255] and alpha in [0,1].
// Each channel is multiplied by alpha and rounded up.
func FromRGBA(r, g, b int, a float64) (Color, error) {
	if err := checkChannel("r", r); err != nil {
		return Color{}, err
	}
	if err := checkChannel("g", g); err != nil {
		return Color{}, err
	}
	if err := checkChannel("b", b); err != nil {
		return Color{}, err
	}
	if math.IsNaN(a) || a < 0 || a > 1 {
		return Color{}, validationError("alpha %v out of range [0,1]", a)
	}
	return Color{
		r: premultiply(r, a),
		g: premultiply(g, a),
		b: premultiply(b, a),
	}, nil
}

// FromList builds a color from a 3-element channel list or a 4-element
// channel list whose last element is alpha.
func FromList(values []float64) (Color, error) {
	if len(values) != 3 && len(values) != 4 {
		return Color{}, validationError("expected 3 or 4 channel values, got %d", len(values))
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v := values[i]
		if v != math.Trunc(v) {
			return Color{}, validationError("channel %d must be an integer, got %v", i, v)
		}
		if v < 0 || v > 255 {
			return Color{}, validationError("channel %d value %v out of range [0,255]", i, v)
		}
		ch[i] = int(v)
	}
	alpha := 1.0
	if len(values) == 4 {
		alpha = values[3]
	}
	return FromRGBA(ch[0], ch[1], ch[2], alpha)
}

// FromHex parses "#rrggbb" or "rrggbb" in either case. Shorthand and
// alpha-carrying forms are rejected.
func FromHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, validationError("expected a 6-digit hexadecimal color, got %q", s)
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(strings.TrimPrefix(s, "#")))
	if err != nil {
		return Color{}, validationError("parse hex color %q: %v", s, err)
	}
	r, g, b := parsed.RGB255()
	return Color{r: r, g: g, b: b}, nil
}

// MustHex is FromHex for static color tables. It panics on malformed input.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse accepts any supported input shape: Color, *Color, a hex string,
// RGBA, or a 3/4-element []int or []float64 channel list.
func Parse(v any) (Color, error) {
	switch in := v.(type) {
	case Color:
		return in, nil
	case *Color:
		if in == nil {
			return Color{}, typeMismatchError(v)
		}
		return *in, nil
	case string:
		return FromHex(in)
	case RGBA:
		return FromRGBA(in.R, in.G, in.B, in.A)
	case []float64:
		return FromList(in)
	case []int:
		values := make([]float64, len(in))
		for i, n := range in {
			values[i] = float64(n)
		}
		return FromList(values)
	default:
		return Color{}, typeMismatchError(v)
	}
}

func checkChannel(name string, v int) error {
	if v < 0 || v > 255 {
		return validationError("channel %s value %d out of range [0,255]", name, v)
	}
	return nil
}

func premultiply(channel int, alpha float64) uint8 {
	return uint8(math.Ceil(float64(channel) * alpha))
}
