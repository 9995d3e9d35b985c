package raster

import (
	"image"
	"math"
)

// Window is a rectangular region of data space: x in [X0, X1], y in [Y0, Y1]
// with X1 > X0 and Y1 > Y0.
type Window struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Viewport maps a data window onto a pixel surface. Data y grows upward
// while pixel y grows downward, so the window's top edge lands on pixel
// row zero. The x and y scales are independent: a non-matching aspect
// ratio stretches data-space shapes rather than padding the surface.
//
// DPI scales point-sized geometry such as scatter markers (72 points per
// inch); it plays no part in the window mapping itself.
type Viewport struct {
	Win  Window
	W, H int
	DPI  float64
}

// NewViewport maps win onto a w by h pixel surface at the given DPI.
func NewViewport(win Window, w, h int, dpi float64) Viewport {
	return Viewport{Win: win, W: w, H: h, DPI: dpi}
}

// ToPx maps a data point to continuous pixel coordinates. The window's
// corners land exactly on the surface corners.
func (v Viewport) ToPx(x, y float64) (px, py float64) {
	px = (x - v.Win.X0) / (v.Win.X1 - v.Win.X0) * float64(v.W)
	py = float64(v.H) - (y-v.Win.Y0)/(v.Win.Y1-v.Win.Y0)*float64(v.H)
	return px, py
}

// ToData inverts ToPx.
func (v Viewport) ToData(px, py float64) (x, y float64) {
	x = v.Win.X0 + px/float64(v.W)*(v.Win.X1-v.Win.X0)
	y = v.Win.Y0 + (float64(v.H)-py)/float64(v.H)*(v.Win.Y1-v.Win.Y0)
	return x, y
}

// ScaleX returns horizontal pixels per data unit.
func (v Viewport) ScaleX() float64 {
	return float64(v.W) / (v.Win.X1 - v.Win.X0)
}

// ScaleY returns vertical pixels per data unit.
func (v Viewport) ScaleY() float64 {
	return float64(v.H) / (v.Win.Y1 - v.Win.Y0)
}

// PointPx converts a length in points to pixels at the viewport's DPI.
func (v Viewport) PointPx(pts float64) float64 {
	return pts * v.DPI / 72
}

// dataBounds returns a conservative pixel box around a data-space circle.
func (v Viewport) dataBounds(x, y, r float64) image.Rectangle {
	x0, y0 := v.ToPx(x-r, y+r)
	x1, y1 := v.ToPx(x+r, y-r)
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
}
