// Package palette handles the hex triplet color tables the designs are
// specified in, plus the repeating color cycle used for scatter layers.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Hex parses a "#RRGGBB" triplet (case insensitive, leading '#' optional)
// into an opaque color.
func Hex(s string) (color.RGBA, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("palette: hex color %q must have six digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: parse hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// MustHex is Hex for static color tables known to be well formed.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustHexAll converts a whole table at once.
func MustHexAll(ss ...string) []color.RGBA {
	out := make([]color.RGBA, len(ss))
	for i, s := range ss {
		out[i] = MustHex(s)
	}
	return out
}

// HexString formats a color back to its "#rrggbb" triplet, dropping alpha.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cycle yields colors in order, wrapping back to the start when exhausted.
type Cycle struct {
	colors []color.RGBA
	next   int
}

// NewCycle builds a cycle over the given colors. An empty cycle yields the
// zero color.
func NewCycle(colors []color.RGBA) *Cycle {
	return &Cycle{colors: colors}
}

// Next returns the next color in the cycle.
func (c *Cycle) Next() color.RGBA {
	if len(c.colors) == 0 {
		return color.RGBA{}
	}
	col := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return col
}
