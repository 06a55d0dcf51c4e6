// Package color provides the RGB color value used by the UI themes.
//
// A Color holds three 8-bit channels. Alpha is only an input: it is applied to
// each channel (rounded up) when a color is built and then discarded, so a
// Color always describes the opaque color as rendered over black. The hex
// form is derived from the channels on every read and can never go stale.
package color

import "fmt"

// Color is an opaque RGB color. The zero value is black.
//
// Reads are safe from any number of goroutines. The Set* methods and
// BlendInPlace mutate the receiver and need external synchronization when the
// same Color is shared.
type Color struct {
	r, g, b uint8
}

// Black and White are the achromatic bases used by theme overlays.
var (
	Black = Color{}
	White = Color{r: 255, g: 255, b: 255}
)

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// RGB returns the channel triple.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.r, c.g, c.b}
}

// Hex returns the canonical lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Equal reports whether both colors have the same channels.
func (c Color) Equal(other Color) bool {
	return c == other
}

// SetR replaces the red channel. The color is unchanged on error.
func (c *Color) SetR(v int) error {
	if err := checkChannel("r", v); err != nil {
		return err
	}
	c.r = uint8(v)
	return nil
}

// SetG replaces the green channel. The color is unchanged on error.
func (c *Color) SetG(v int) error {
	if err := checkChannel("g", v); err != nil {
		return err
	}
	c.g = uint8(v)
	return nil
}

// SetB replaces the blue channel. The color is unchanged on error.
func (c *Color) SetB(v int) error {
	if err := checkChannel("b", v); err != nil {
		return err
	}
	c.b = uint8(v)
	return nil
}

// SetRGB replaces all three channels at once.
func (c *Color) SetRGB(r, g, b int) error {
	next, err := FromChannels(r, g, b)
	if err != nil {
		return err
	}
	*c = next
	return nil
}

// SetHex replaces the color with the one described by s.
func (c *Color) SetHex(s string) error {
	next, err := FromHex(s)
	if err != nil {
		return err
	}
	*c = next
	return nil
}
