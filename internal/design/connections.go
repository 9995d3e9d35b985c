package design

import (
	"fmt"
	"image/color"

	"github.com/san-kum/artlab/internal/anglegrid"
	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/raster"
)

// Connections is a mosaic of paired ring wedges after Julio Le Parc's 1959
// "Mutation of Forms": two concentric wedge families whose sweep angles run
// from a half ring down to nothing across the lattice, one family mirroring
// the other. The families keep the red and blue names of Le Parc's original
// even though this palette paints them amber and wine.
type Connections struct {
	slug  string
	title string
	desc  string

	background color.RGBA
	redColor   color.RGBA
	blueColor  color.RGBA

	cols, rows int
	radius     float64
	ringWidth  float64
	alpha      float64
	baseAngle  float64 // degrees; both families' spans derive from it

	red, blue *anglegrid.PairGrid
}

// NewConnections builds the paired-wedge mosaic on an off-black field.
func NewConnections() *Connections {
	return &Connections{
		slug:  "connections",
		title: "Connections in Rotation",
		desc: "A pair of concentric arrays of partial ring wedges in amber " +
			"and wine, their start and end angles linearly spaced along rows " +
			"and columns and symmetric between the two arrays, after Julio " +
			"Le Parc's 1959 piece Mutation of Forms. The wedges appear to " +
			"chain together near the center of the field, touch close to the " +
			"edges, and drift wholly apart in the corners.",
		background: palette.MustHex("#14161f"),
		redColor:   palette.MustHex("#ffc266"),
		blueColor:  palette.MustHex("#b30059"),
		cols:       72,
		rows:       36,
		radius:     0.58,
		ringWidth:  0.15,
		alpha:      0.85,
		baseAngle:  110,
	}
}

func (c *Connections) Slug() string           { return c.slug }
func (c *Connections) Title() string          { return c.title }
func (c *Connections) Describe() string       { return c.desc }
func (c *Connections) Background() color.RGBA { return c.background }

// Window pads the cell lattice by one unit on every side.
func (c *Connections) Window() raster.Window {
	return raster.Window{X0: 1, X1: float64(c.cols) + 2, Y0: 1, Y1: float64(c.rows) + 2}
}

// GridSize implements PatchDesign.
func (c *Connections) GridSize() (w, h int) { return c.cols, c.rows }

// Families returns the boundary spans of both wedge families. The red family
// sweeps from a half ring at the base angle down to a closed span on its
// far side; the blue family runs the same coverage from the opposite side
// and traverses the boundary in reverse, mirroring the red field.
func (c *Connections) Families() (redMax, redMin, blueMax, blueMin anglegrid.Span) {
	a := c.baseAngle
	redMax = anglegrid.Span{Theta1: a, Theta2: a + 180}
	redMin = anglegrid.Span{Theta1: -180 - a, Theta2: -180 - a}
	blueMax = anglegrid.Span{Theta1: 180 + a, Theta2: 360 + a}
	blueMin = anglegrid.Span{Theta1: -a, Theta2: -a}
	return redMax, redMin, blueMax, blueMin
}

// Grids returns both families' span fields, building them on first use.
func (c *Connections) Grids() (red, blue *anglegrid.PairGrid, err error) {
	if c.red == nil || c.blue == nil {
		redMax, redMin, blueMax, blueMin := c.Families()
		red, err = anglegrid.Mutations(c.cols, c.rows, redMax, redMin, false)
		if err != nil {
			return nil, nil, fmt.Errorf("design: %s red field: %w", c.slug, err)
		}
		blue, err = anglegrid.Mutations(c.cols, c.rows, blueMax, blueMin, true)
		if err != nil {
			return nil, nil, fmt.Errorf("design: %s blue field: %w", c.slug, err)
		}
		c.red, c.blue = red, blue
	}
	return c.red, c.blue, nil
}

// Compose implements Design.
func (c *Connections) Compose(p *raster.Painter, vp raster.Viewport) error {
	return composePatches(c, p, vp)
}

// CellPatches paints one red and one blue wedge on the cell's center. Red
// sits on layer 1 and blue on layer 2, so every blue wedge in the field
// composites over every red one regardless of cell order.
func (c *Connections) CellPatches(vp raster.Viewport, i, j int) ([]raster.Op, error) {
	red, blue, err := c.Grids()
	if err != nil {
		return nil, err
	}
	cx, cy := float64(i)+2, float64(j)+2
	return []raster.Op{
		{Shape: c.wedge(vp, cx, cy, red.At(i, j)), Color: c.redColor, Alpha: c.alpha, Layer: 1},
		{Shape: c.wedge(vp, cx, cy, blue.At(i, j)), Color: c.blueColor, Alpha: c.alpha, Layer: 2},
	}, nil
}

func (c *Connections) wedge(vp raster.Viewport, cx, cy float64, s anglegrid.Span) raster.Wedge {
	return raster.Wedge{
		VP: vp, X: cx, Y: cy,
		R: c.radius, Width: c.ringWidth,
		Theta1: s.Theta1, Theta2: s.Theta2,
	}
}

// Params implements Tunable.
func (c *Connections) Params() map[string]float64 {
	return map[string]float64{
		"columns":    float64(c.cols),
		"rows":       float64(c.rows),
		"radius":     c.radius,
		"ring_width": c.ringWidth,
		"alpha":      c.alpha,
		"base_angle": c.baseAngle,
	}
}

// SetParam implements Tunable. Changing the lattice size or the base angle
// rebuilds both span fields on the next compose.
func (c *Connections) SetParam(name string, value float64) error {
	switch name {
	case "columns":
		if value < 2 {
			return fmt.Errorf("design: %s columns must be at least 2, got %v", c.slug, value)
		}
		c.cols = int(value)
		c.red, c.blue = nil, nil
	case "rows":
		if value < 2 {
			return fmt.Errorf("design: %s rows must be at least 2, got %v", c.slug, value)
		}
		c.rows = int(value)
		c.red, c.blue = nil, nil
	case "radius":
		if value <= 0 {
			return fmt.Errorf("design: %s radius must be positive, got %v", c.slug, value)
		}
		c.radius = value
	case "ring_width":
		if value <= 0 {
			return fmt.Errorf("design: %s ring width must be positive, got %v", c.slug, value)
		}
		c.ringWidth = value
	case "alpha":
		if value <= 0 || value > 1 {
			return fmt.Errorf("design: %s alpha must be in (0, 1], got %v", c.slug, value)
		}
		c.alpha = value
	case "base_angle":
		c.baseAngle = value
		c.red, c.blue = nil, nil
	default:
		return fmt.Errorf("design: unknown parameter %q for %s", name, c.slug)
	}
	return nil
}
