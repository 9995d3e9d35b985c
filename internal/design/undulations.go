package design

import (
	"fmt"
	"image/color"

	"github.com/san-kum/artlab/internal/anglegrid"
	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/raster"
)

// Undulations is a mosaic of identical two-tone elements, each a large and a
// small disk with matching half-disk cutouts, rotated by a linearly spaced
// angle field after Julio Le Parc's 1959 "Rotations". The outer disk is wider
// than the cell spacing, so each element crops its already painted neighbors
// and the gaps between elements form their own pattern.
type Undulations struct {
	slug  string
	title string
	desc  string

	background color.RGBA
	outerColor color.RGBA
	innerColor color.RGBA

	cols, rows     int
	outerR, innerR float64

	// Boundary angle ramps in degrees. The left ramp is sampled across the
	// column count and truncated to the row count, so the field needs at
	// least as many columns as rows.
	leftFrom, leftTo   float64
	rightFrom, rightTo float64

	angles *anglegrid.Grid
}

// NewUndulations builds the half-disk mosaic on a purple-black field.
func NewUndulations() *Undulations {
	return &Undulations{
		slug:  "undulations",
		title: "Undulations in Rotation",
		desc: "An array of identical elements, each a pair of overlaid " +
			"semicircular sectors in turquoise and burnt coral, rotated by " +
			"angles linearly spaced along both rows and columns, after Julio " +
			"Le Parc's 1959 piece Rotations. The outer sector is wider than " +
			"the grid spacing, so neighboring elements crop one another and " +
			"the dark gaps between them form an undulating counter-pattern " +
			"when viewed at a distance.",
		background: palette.MustHex("#171123"),
		outerColor: palette.MustHex("#55D6BE"),
		innerColor: palette.MustHex("#E86252"),
		cols:       78,
		rows:       44,
		outerR:     0.56,
		innerR:     0.35,
		leftFrom:   -147,
		leftTo:     653,
		rightFrom:  -47,
		rightTo:    353,
	}
}

func (u *Undulations) Slug() string           { return u.slug }
func (u *Undulations) Title() string          { return u.title }
func (u *Undulations) Describe() string       { return u.desc }
func (u *Undulations) Background() color.RGBA { return u.background }

// Window pads the cell lattice by one unit on every side.
func (u *Undulations) Window() raster.Window {
	return raster.Window{X0: 1, X1: float64(u.cols) + 2, Y0: 1, Y1: float64(u.rows) + 2}
}

// GridSize implements PatchDesign.
func (u *Undulations) GridSize() (w, h int) { return u.cols, u.rows }

// Angles returns the rotation angle field, building it on first use.
func (u *Undulations) Angles() (*anglegrid.Grid, error) {
	if u.angles != nil {
		return u.angles, nil
	}
	if u.cols < u.rows {
		return nil, fmt.Errorf("design: %s needs at least as many columns as rows, got %dx%d",
			u.slug, u.cols, u.rows)
	}
	a := anglegrid.Linspace(u.leftFrom, u.leftTo, u.cols)[:u.rows]
	b := anglegrid.Linspace(u.rightFrom, u.rightTo, u.rows)
	g, err := anglegrid.Rotations(u.cols, u.rows, a, b)
	if err != nil {
		return nil, fmt.Errorf("design: %s angle field: %w", u.slug, err)
	}
	u.angles = g
	return g, nil
}

// Compose implements Design.
func (u *Undulations) Compose(p *raster.Painter, vp raster.Viewport) error {
	return composePatches(u, p, vp)
}

// CellPatches paints one element: the outer disk, a background half-disk
// cutting it down to a semicircle facing away from the cell's angle, then
// the inner disk and its matching cutout. All four fills are opaque and
// ordered, so an element painted later still crops its neighbors.
func (u *Undulations) CellPatches(vp raster.Viewport, i, j int) ([]raster.Op, error) {
	g, err := u.Angles()
	if err != nil {
		return nil, err
	}
	cx, cy := float64(i)+2, float64(j)+2
	theta := g.At(i, j)
	return []raster.Op{
		{Shape: raster.Dot{VP: vp, X: cx, Y: cy, R: u.outerR}, Color: u.outerColor, Alpha: 1},
		{Shape: raster.NewHalfDisk(vp, cx, cy, u.outerR, theta), Color: u.background, Alpha: 1},
		{Shape: raster.Dot{VP: vp, X: cx, Y: cy, R: u.innerR}, Color: u.innerColor, Alpha: 1},
		{Shape: raster.NewHalfDisk(vp, cx, cy, u.innerR, theta), Color: u.background, Alpha: 1},
	}, nil
}

// Params implements Tunable.
func (u *Undulations) Params() map[string]float64 {
	return map[string]float64{
		"columns":      float64(u.cols),
		"rows":         float64(u.rows),
		"outer_radius": u.outerR,
		"inner_radius": u.innerR,
	}
}

// SetParam implements Tunable. Changing the lattice size rebuilds the angle
// field on the next compose.
func (u *Undulations) SetParam(name string, value float64) error {
	switch name {
	case "columns":
		if value < 2 {
			return fmt.Errorf("design: %s columns must be at least 2, got %v", u.slug, value)
		}
		u.cols = int(value)
		u.angles = nil
	case "rows":
		if value < 2 {
			return fmt.Errorf("design: %s rows must be at least 2, got %v", u.slug, value)
		}
		u.rows = int(value)
		u.angles = nil
	case "outer_radius":
		if value <= 0 {
			return fmt.Errorf("design: %s outer radius must be positive, got %v", u.slug, value)
		}
		u.outerR = value
	case "inner_radius":
		if value <= 0 {
			return fmt.Errorf("design: %s inner radius must be positive, got %v", u.slug, value)
		}
		u.innerR = value
	default:
		return fmt.Errorf("design: unknown parameter %q for %s", name, u.slug)
	}
	return nil
}
