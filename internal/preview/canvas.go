package preview

import "strings"

// Braille cells pack a 2x4 dot matrix per character, starting from the empty
// cell at codepoint 0x2800. Each dot position contributes one bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a monochrome braille drawing surface, w by h characters, for a
// dot resolution of 2w by 4h.
type Canvas struct {
	w, h  int
	cells []rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{w: w, h: h, cells: make([]rune, w*h)}
	for i := range c.cells {
		c.cells[i] = 0x2800
	}
	return c
}

// Size returns the canvas dimensions in characters.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Set turns on the dot at (x, y) in dot coordinates. Dots outside the canvas
// are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}
	c.cells[(y/4)*c.w+x/2] |= brailleDots[y%4][x%2]
}

// Line draws a dot run from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.h * (c.w*3 + 1)) // braille runes take three bytes in UTF-8
	for row := 0; row < c.h; row++ {
		b.WriteString(string(c.cells[row*c.w : (row+1)*c.w]))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
