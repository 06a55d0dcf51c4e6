package color

// BlendMany averages the channels of every input and rounds each channel up.
// Inputs may be any shape Parse accepts. The result is order independent and
// BlendMany(c, c) == c.
func BlendMany(inputs ...any) (Color, error) {
	if len(inputs) == 0 {
		return Color{}, validationError("expected at least 1 color, got 0")
	}
	colors := make([]Color, len(inputs))
	for i, in := range inputs {
		c, err := Parse(in)
		if err != nil {
			return Color{}, err
		}
		colors[i] = c
	}
	return Mean(colors...), nil
}

// Mean is BlendMany for already parsed colors. Mean() is black.
func Mean(colors ...Color) Color {
	n := len(colors)
	if n == 0 {
		return Color{}
	}
	var r, g, b int
	for _, c := range colors {
		r += int(c.r)
		g += int(c.g)
		b += int(c.b)
	}
	return Color{
		r: uint8(ceilDiv(r, n)),
		g: uint8(ceilDiv(g, n)),
		b: uint8(ceilDiv(b, n)),
	}
}

// Blend returns the mean of c and other. c is not modified.
func (c Color) Blend(other Color) Color {
	return Mean(c, other)
}

// BlendInPlace replaces c with the mean of c and other and returns the new value.
func (c *Color) BlendInPlace(other Color) Color {
	*c = Mean(*c, other)
	return *c
}

func ceilDiv(sum, n int) int {
	return (sum + n - 1) / n
}
