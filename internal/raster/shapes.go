package raster

import (
	"image"
	"math"
)

// Shape is a fillable region evaluated in continuous pixel coordinates.
// Bounds must conservatively cover the region; Contains reports whether a
// sample point falls inside it.
type Shape interface {
	Bounds() image.Rectangle
	Contains(px, py float64) bool
}

const sqrt3 = 1.7320508075688772

// Square is an axis-aligned square marker with a fixed pixel side length,
// centered on (CX, CY).
type Square struct {
	CX, CY float64
	Side   float64
}

func (s Square) Bounds() image.Rectangle {
	return boundsAround(s.CX, s.CY, s.Side/2, s.Side/2)
}

func (s Square) Contains(px, py float64) bool {
	return math.Abs(px-s.CX) <= s.Side/2 && math.Abs(py-s.CY) <= s.Side/2
}

// Hexagon is a vertex-up regular hexagon marker with a fixed pixel
// circumradius: vertices at top and bottom, flat sides left and right.
type Hexagon struct {
	CX, CY float64
	R      float64
}

func (h Hexagon) Bounds() image.Rectangle {
	return boundsAround(h.CX, h.CY, h.R*sqrt3/2, h.R)
}

func (h Hexagon) Contains(px, py float64) bool {
	dx := math.Abs(px - h.CX)
	dy := math.Abs(py - h.CY)
	return dx <= h.R*sqrt3/2 && dy+dx/sqrt3 <= h.R
}

// Dot is a filled circle in data coordinates. Under an anisotropic viewport
// it covers an ellipse of pixels, exactly as the design's data space is
// stretched onto the surface.
type Dot struct {
	VP   Viewport
	X, Y float64
	R    float64
}

func (d Dot) Bounds() image.Rectangle {
	return d.VP.dataBounds(d.X, d.Y, d.R)
}

func (d Dot) Contains(px, py float64) bool {
	x, y := d.VP.ToData(px, py)
	dx, dy := x-d.X, y-d.Y
	return dx*dx+dy*dy <= d.R*d.R
}

// HalfDisk is the half of a data-space circle on the side the angle points
// to: it keeps the points whose offset from the center has a nonnegative
// component along the angle's direction. Painting one over a [Dot] in the
// background color leaves the opposite half showing.
type HalfDisk struct {
	VP     Viewport
	X, Y   float64
	R      float64
	ux, uy float64
}

// NewHalfDisk builds a half disk keeping the half toward angle (degrees,
// counterclockwise from the positive x axis).
func NewHalfDisk(vp Viewport, x, y, r, angle float64) HalfDisk {
	rad := angle * (math.Pi / 180)
	return HalfDisk{VP: vp, X: x, Y: y, R: r, ux: math.Cos(rad), uy: math.Sin(rad)}
}

// Direction returns the unit vector of the kept half in data coordinates.
func (hd HalfDisk) Direction() (ux, uy float64) { return hd.ux, hd.uy }

func (hd HalfDisk) Bounds() image.Rectangle {
	return hd.VP.dataBounds(hd.X, hd.Y, hd.R)
}

func (hd HalfDisk) Contains(px, py float64) bool {
	x, y := hd.VP.ToData(px, py)
	dx, dy := x-hd.X, y-hd.Y
	if dx*dx+dy*dy > hd.R*hd.R {
		return false
	}
	return dx*hd.ux+dy*hd.uy >= 0
}

// Wedge is an annular sector in data coordinates: the ring between radii
// R-Width and R, swept counterclockwise from Theta1 to Theta2 (degrees).
// A sweep of 360 or more covers the whole ring; zero or negative sweeps
// cover nothing.
type Wedge struct {
	VP             Viewport
	X, Y           float64
	R, Width       float64
	Theta1, Theta2 float64
}

func (w Wedge) Bounds() image.Rectangle {
	return w.VP.dataBounds(w.X, w.Y, w.R)
}

func (w Wedge) Contains(px, py float64) bool {
	x, y := w.VP.ToData(px, py)
	dx, dy := x-w.X, y-w.Y
	d2 := dx*dx + dy*dy
	if d2 > w.R*w.R {
		return false
	}
	if inner := w.R - w.Width; inner > 0 && d2 < inner*inner {
		return false
	}
	sweep := w.Theta2 - w.Theta1
	if sweep <= 0 {
		return false
	}
	if sweep >= 360 {
		return true
	}
	rel := math.Mod(math.Atan2(dy, dx)*(180/math.Pi)-w.Theta1, 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= sweep
}

func boundsAround(cx, cy, rx, ry float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(cx-rx)), int(math.Floor(cy-ry)),
		int(math.Ceil(cx+rx))+1, int(math.Ceil(cy+ry))+1,
	)
}
