package raster

import (
	"image"
	"testing"
)

// unitVP maps a 16x16 data window one-to-one onto a 16x16 surface, leaving
// only the y flip between data and pixel space.
func unitVP() Viewport {
	return NewViewport(Window{X0: 0, X1: 16, Y0: 0, Y1: 16}, 16, 16, 72)
}

func TestSquareContains(t *testing.T) {
	s := Square{CX: 8, CY: 8, Side: 4}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 8, 8, true},
		{"edge inclusive", 10, 8, true},
		{"corner inclusive", 10, 10, true},
		{"right of edge", 10.01, 8, false},
		{"above", 8, 5.9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.px, tt.py); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}

	want := image.Rect(6, 6, 11, 11)
	if got := s.Bounds(); !want.In(got) {
		t.Errorf("Bounds() = %v, does not cover %v", got, want)
	}
}

func TestHexagonContains(t *testing.T) {
	h := Hexagon{CX: 8, CY: 8, R: 4}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 8, 8, true},
		{"near top vertex", 8, 8 - 3.96, true},
		{"near bottom vertex", 8, 8 + 3.96, true},
		{"past flat side", 8 + 3.96, 8, false},
		{"on flat side", 8 + 3.4, 8, true},
		{"outside sloped edge", 8 + 2.8, 8 + 2.8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Contains(tt.px, tt.py); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestDotAnisotropic(t *testing.T) {
	// 4 px per data unit horizontally, 2 vertically: the dot covers an
	// ellipse of pixels twice as wide as tall.
	vp := NewViewport(Window{X0: 0, X1: 10, Y0: 0, Y1: 10}, 40, 20, 72)
	d := Dot{VP: vp, X: 5, Y: 5, R: 1}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 20, 10, true},
		{"inside along x", 23.9, 10, true},
		{"outside along x", 24.1, 10, false},
		{"inside along y", 20, 8.1, true},
		{"outside along y", 20, 7.9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Contains(tt.px, tt.py); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestHalfDiskOrientation(t *testing.T) {
	vp := unitVP()

	// Angle 0 keeps the +x half.
	right := NewHalfDisk(vp, 8, 8, 4, 0)
	if !right.Contains(10, 8) {
		t.Error("angle 0: point on +x side not contained")
	}
	if right.Contains(6, 8) {
		t.Error("angle 0: point on -x side contained")
	}
	if !right.Contains(8, 8) {
		t.Error("angle 0: center lies on the cut and should be kept")
	}

	// Angle 90 keeps the +y half, which is up in data space and therefore
	// a smaller pixel row.
	up := NewHalfDisk(vp, 8, 8, 4, 90)
	if !up.Contains(8, 6) {
		t.Error("angle 90: point above center not contained")
	}
	if up.Contains(8, 10) {
		t.Error("angle 90: point below center contained")
	}

	// Outside the radius on the kept side.
	if right.Contains(12.5, 8) {
		t.Error("point beyond radius contained")
	}
}

func TestWedgeContains(t *testing.T) {
	vp := unitVP()
	w := Wedge{VP: vp, X: 8, Y: 8, R: 4, Width: 1, Theta1: 0, Theta2: 90}

	// 45 degrees at radius 3.5 sits inside the ring and the sweep. Pixel
	// y runs opposite to data y.
	px := 8 + 3.5*0.7071
	py := 16 - (8 + 3.5*0.7071)
	if !w.Contains(px, py) {
		t.Errorf("Contains(%v, %v) = false, want true", px, py)
	}

	tests := []struct {
		name   string
		px, py float64
	}{
		{"inside inner radius", 8 + 2.9, 16 - 8},
		{"outside outer radius", 8 + 4.2, 16 - 8},
		{"outside sweep", 8 - 3.5*0.7071, 16 - (8 + 3.5*0.7071)},
		{"opposite sweep", 8, 16 - (8 - 3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w.Contains(tt.px, tt.py) {
				t.Errorf("Contains(%v, %v) = true, want false", tt.px, tt.py)
			}
		})
	}
}

func TestWedgeSweepExtremes(t *testing.T) {
	vp := unitVP()

	full := Wedge{VP: vp, X: 8, Y: 8, R: 4, Width: 1, Theta1: 110, Theta2: 470}
	if !full.Contains(8+3.5, 8) {
		t.Error("360 degree sweep should cover the whole ring")
	}

	empty := Wedge{VP: vp, X: 8, Y: 8, R: 4, Width: 1, Theta1: -290, Theta2: -290}
	if empty.Contains(8+3.5, 8) {
		t.Error("zero sweep should cover nothing")
	}
}

func TestWedgeSweepCrossingZero(t *testing.T) {
	vp := unitVP()
	w := Wedge{VP: vp, X: 8, Y: 8, R: 4, Width: 1, Theta1: -45, Theta2: 45}

	if !w.Contains(8+3.5, 16-8) {
		t.Error("point at angle 0 should be inside a -45..45 sweep")
	}
	if w.Contains(8-3.5, 16-8) {
		t.Error("point at angle 180 should be outside a -45..45 sweep")
	}
}
