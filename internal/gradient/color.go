package gradient

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one endpoint of a gradient. It keeps the hex string it was parsed
// from so rendering and JSON output reproduce the dataset verbatim.
type Color struct {
	hex string
	rgb colorful.Color
}

// ParseColor parses a #RGB or #RRGGBB hex colour.
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{hex: strings.ToLower(trimmed), rgb: c}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as it appeared in the dataset, lowercased.
func (c Color) Hex() string {
	return c.hex
}

func (c Color) String() string {
	return c.hex
}

// Blend interpolates towards other in Lab space; t is clamped to [0,1].
// Lab keeps the midpoint of two saturated colours from turning muddy.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mixed := c.rgb.BlendLab(other.rgb, t).Clamped()
	return Color{hex: mixed.Hex(), rgb: mixed}
}

// Ramp returns n evenly spaced colours from c to other, both ends included.
func (c Color) Ramp(other Color, n int) []Color {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Color{c}
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = c.Blend(other, float64(i)/float64(n-1))
	}
	return out
}

// MarshalText lets encoders write the hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.hex), nil
}
