// Package export writes designs as SVG vector files, re-expressing the same
// display list the raster pipeline fills pixel by pixel. Shapes keep their
// pixel-space geometry, so a rendered SVG matches the PNG at the same size.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo/float"

	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/raster"
	"github.com/san-kum/artlab/internal/render"
)

// WriteSVG composes the design and emits it as a vector image onto w.
func WriteSVG(w io.Writer, d design.Design, opts render.Options) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("export: surface must be at least 1x1, got %dx%d", opts.Width, opts.Height)
	}
	if opts.DPI <= 0 {
		return fmt.Errorf("export: dpi must be positive, got %v", opts.DPI)
	}

	vp := raster.NewViewport(d.Window(), opts.Width, opts.Height, opts.DPI)
	p := raster.NewPainter(opts.Width, opts.Height)
	if err := d.Compose(p, vp); err != nil {
		return err
	}

	ops := make([]raster.Op, p.Len())
	copy(ops, p.Ops())
	sort.SliceStable(ops, func(a, b int) bool { return ops[a].Layer < ops[b].Layer })

	width, height := float64(opts.Width), float64(opts.Height)
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fill(d.Background(), 1))
	for _, op := range ops {
		if err := emit(canvas, vp, op); err != nil {
			return err
		}
	}
	canvas.End()
	return nil
}

// SaveSVG writes the design to path.
func SaveSVG(path string, d design.Design, opts render.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSVG(file, d, opts)
}

func emit(canvas *svg.SVG, vp raster.Viewport, op raster.Op) error {
	style := fill(op.Color, op.Alpha)

	switch s := op.Shape.(type) {
	case raster.Square:
		canvas.Rect(s.CX-s.Side/2, s.CY-s.Side/2, s.Side, s.Side, style)
	case raster.Hexagon:
		xs, ys := hexagonPoints(s)
		canvas.Polygon(xs, ys, style)
	case raster.Dot:
		cx, cy := vp.ToPx(s.X, s.Y)
		canvas.Ellipse(cx, cy, s.R*vp.ScaleX(), s.R*vp.ScaleY(), style)
	case raster.HalfDisk:
		canvas.Path(halfDiskPath(vp, s), style)
	case raster.Wedge:
		if d := wedgePath(vp, s); d != "" {
			canvas.Path(d, style)
		}
	default:
		return fmt.Errorf("export: no vector form for %T", op.Shape)
	}
	return nil
}

func fill(c color.RGBA, alpha float64) string {
	if alpha >= 1 {
		return "fill:" + palette.HexString(c)
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", palette.HexString(c), alpha)
}

// hexagonPoints lists the vertex-up hexagon's corners clockwise from the top.
func hexagonPoints(h raster.Hexagon) (xs, ys []float64) {
	dx := h.R * math.Sqrt(3) / 2
	xs = []float64{h.CX, h.CX + dx, h.CX + dx, h.CX, h.CX - dx, h.CX - dx}
	ys = []float64{h.CY - h.R, h.CY - h.R/2, h.CY + h.R/2, h.CY + h.R, h.CY + h.R/2, h.CY - h.R/2}
	return xs, ys
}

// halfDiskPath draws the half ellipse bulging toward the disk's direction:
// an arc between the two diameter endpoints, closed by the straight diameter.
// The data circle maps to an axis-aligned pixel ellipse, and the positive
// sweep passes the arc through the direction vector's side.
func halfDiskPath(vp raster.Viewport, hd raster.HalfDisk) string {
	ux, uy := hd.Direction()
	x1, y1 := vp.ToPx(hd.X-hd.R*uy, hd.Y+hd.R*ux)
	x2, y2 := vp.ToPx(hd.X+hd.R*uy, hd.Y-hd.R*ux)
	rx, ry := hd.R*vp.ScaleX(), hd.R*vp.ScaleY()
	return fmt.Sprintf("M%g,%g A%g,%g 0 0 1 %g,%g Z", x1, y1, rx, ry, x2, y2)
}

// wedgePath draws an annular sector. Counterclockwise data angles map to
// sweep flag 0 on the outer arc because pixel y runs downward; the inner arc
// returns with the opposite flag, so the nonzero fill rule leaves the hole
// open. Sweeps of 360 or more emit the full ring as two opposed loops.
func wedgePath(vp raster.Viewport, w raster.Wedge) string {
	sweep := w.Theta2 - w.Theta1
	if sweep <= 0 {
		return ""
	}
	rOut := w.R
	rIn := w.R - w.Width
	if rIn < 0 {
		rIn = 0
	}
	rxOut, ryOut := rOut*vp.ScaleX(), rOut*vp.ScaleY()

	if sweep >= 360 {
		cx, cy := vp.ToPx(w.X, w.Y)
		d := fmt.Sprintf("M%g,%g A%g,%g 0 1 0 %g,%g A%g,%g 0 1 0 %g,%g Z",
			cx+rxOut, cy, rxOut, ryOut, cx-rxOut, cy, rxOut, ryOut, cx+rxOut, cy)
		if rIn > 0 {
			rxIn, ryIn := rIn*vp.ScaleX(), rIn*vp.ScaleY()
			d += fmt.Sprintf(" M%g,%g A%g,%g 0 1 1 %g,%g A%g,%g 0 1 1 %g,%g Z",
				cx+rxIn, cy, rxIn, ryIn, cx-rxIn, cy, rxIn, ryIn, cx+rxIn, cy)
		}
		return d
	}

	a1 := w.Theta1 * (math.Pi / 180)
	a2 := w.Theta2 * (math.Pi / 180)
	laf := "0"
	if sweep > 180 {
		laf = "1"
	}

	out1x, out1y := vp.ToPx(w.X+rOut*math.Cos(a1), w.Y+rOut*math.Sin(a1))
	out2x, out2y := vp.ToPx(w.X+rOut*math.Cos(a2), w.Y+rOut*math.Sin(a2))
	d := fmt.Sprintf("M%g,%g A%g,%g 0 %s 0 %g,%g", out1x, out1y, rxOut, ryOut, laf, out2x, out2y)

	if rIn > 0 {
		in2x, in2y := vp.ToPx(w.X+rIn*math.Cos(a2), w.Y+rIn*math.Sin(a2))
		in1x, in1y := vp.ToPx(w.X+rIn*math.Cos(a1), w.Y+rIn*math.Sin(a1))
		rxIn, ryIn := rIn*vp.ScaleX(), rIn*vp.ScaleY()
		d += fmt.Sprintf(" L%g,%g A%g,%g 0 %s 1 %g,%g Z", in2x, in2y, rxIn, ryIn, laf, in1x, in1y)
	} else {
		cx, cy := vp.ToPx(w.X, w.Y)
		d += fmt.Sprintf(" L%g,%g Z", cx, cy)
	}
	return d
}
