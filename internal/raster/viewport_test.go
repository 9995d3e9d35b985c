package raster

import (
	"math"
	"testing"
)

func TestViewportCornerMapping(t *testing.T) {
	vp := NewViewport(Window{X0: 3000, X1: 23000, Y0: 4, Y1: 219}, 3840, 2160, 72)

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"top left", 3000, 219, 0, 0},
		{"bottom left", 3000, 4, 0, 2160},
		{"top right", 23000, 219, 3840, 0},
		{"bottom right", 23000, 4, 3840, 2160},
		{"center", 13000, 111.5, 1920, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := vp.ToPx(tt.x, tt.y)
			if math.Abs(px-tt.px) > 1e-9 || math.Abs(py-tt.py) > 1e-9 {
				t.Errorf("ToPx(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(Window{X0: 1, X1: 80, Y0: 1, Y1: 46}, 3840, 2160, 72)

	for _, p := range [][2]float64{{1, 1}, {40.5, 23.5}, {80, 46}, {2, 45}, {17.25, 9.75}} {
		px, py := vp.ToPx(p[0], p[1])
		x, y := vp.ToData(px, py)
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", p[0], p[1], x, y)
		}
	}
}

func TestViewportYFlip(t *testing.T) {
	vp := NewViewport(Window{X0: 0, X1: 10, Y0: 0, Y1: 10}, 100, 100, 72)

	_, pyLow := vp.ToPx(5, 0)
	_, pyHigh := vp.ToPx(5, 10)
	if pyLow != 100 || pyHigh != 0 {
		t.Errorf("y flip: data y=0 -> py %v (want 100), data y=10 -> py %v (want 0)", pyLow, pyHigh)
	}
}

func TestViewportAnisotropicScales(t *testing.T) {
	// The mosaic designs quietly stretch: 79 data units across 3840 pixels
	// but 45 units across 2160.
	vp := NewViewport(Window{X0: 1, X1: 80, Y0: 1, Y1: 46}, 3840, 2160, 72)

	if got, want := vp.ScaleX(), 3840.0/79.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("ScaleX = %v, want %v", got, want)
	}
	if got, want := vp.ScaleY(), 48.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("ScaleY = %v, want %v", got, want)
	}
	if vp.ScaleX() == vp.ScaleY() {
		t.Error("expected anisotropic scales for a 16:9 surface over this window")
	}
}

func TestViewportPointPx(t *testing.T) {
	vp := NewViewport(Window{X0: 0, X1: 1, Y0: 0, Y1: 1}, 100, 100, 72)
	if got := vp.PointPx(65); got != 65 {
		t.Errorf("PointPx(65) at 72 DPI = %v, want 65", got)
	}

	vp.DPI = 144
	if got := vp.PointPx(65); got != 130 {
		t.Errorf("PointPx(65) at 144 DPI = %v, want 130", got)
	}
}
