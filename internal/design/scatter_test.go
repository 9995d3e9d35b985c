package design

import (
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/raster"
)

// testScatter keeps every point of limit 11 inside a small window, so op
// counts are exact: ten sequence points per shift layer, none culled.
func testScatter(shifts []Shift) *Scatter {
	return &Scatter{
		slug:       "test",
		title:      "Test",
		desc:       "test scatter",
		window:     raster.Window{X0: 0, X1: 10, Y0: 0, Y1: 30},
		background: color.RGBA{A: 0xFF},
		colors:     palette.MustHexAll("#FFFFFF", "#000000"),
		shifts:     shifts,
		marker:     MarkerSquare,
		size:       4,
		alpha:      1,
		limit:      11,
	}
}

func TestScatterComposeOpCount(t *testing.T) {
	tests := []struct {
		name   string
		shifts []Shift
		want   int
	}{
		{"single layer", []Shift{{1, 0}}, 10},
		{"three layers", []Shift{{1, 0}, {1.1, 2}, {0.9, 3}}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testScatter(tt.shifts)
			p := raster.NewPainter(384, 216)
			vp := raster.NewViewport(s.Window(), 384, 216, 72)

			if err := s.Compose(p, vp); err != nil {
				t.Fatalf("Compose: %v", err)
			}
			if p.Len() != tt.want {
				t.Errorf("op count = %d, want %d", p.Len(), tt.want)
			}
		})
	}
}

func TestScatterPointPlacement(t *testing.T) {
	s := testScatter([]Shift{{1, 0}})
	p := raster.NewPainter(384, 216)
	vp := raster.NewViewport(s.Window(), 384, 216, 72)

	if err := s.Compose(p, vp); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	ops := p.Ops()

	// Point 0 is (0, 0): stopping time of 1 is zero steps. It lands on the
	// window's bottom-left corner, pixel (0, 216).
	sq, ok := ops[0].Shape.(raster.Square)
	if !ok {
		t.Fatalf("ops[0].Shape = %T, want raster.Square", ops[0].Shape)
	}
	if sq.CX != 0 || sq.CY != 216 {
		t.Errorf("first marker center = (%v, %v), want (0, 216)", sq.CX, sq.CY)
	}
	if sq.Side != 4 {
		t.Errorf("marker side = %v, want 4 (4pt at 72 dpi)", sq.Side)
	}

	// Point 1 is (1, 1): one halving step for n=2.
	sq = ops[1].Shape.(raster.Square)
	wantX, wantY := 38.4, 208.8
	if math.Abs(sq.CX-wantX) > 1e-9 || math.Abs(sq.CY-wantY) > 1e-9 {
		t.Errorf("second marker center = (%v, %v), want (%v, %v)", sq.CX, sq.CY, wantX, wantY)
	}
}

func TestScatterHexagonMarker(t *testing.T) {
	s := testScatter([]Shift{{1, 0}})
	s.marker = MarkerHexagon
	s.size = 44

	p := raster.NewPainter(384, 216)
	vp := raster.NewViewport(s.Window(), 384, 216, 72)
	if err := s.Compose(p, vp); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	hex, ok := p.Ops()[0].Shape.(raster.Hexagon)
	if !ok {
		t.Fatalf("ops[0].Shape = %T, want raster.Hexagon", p.Ops()[0].Shape)
	}
	if hex.R != 22 {
		t.Errorf("hexagon circumradius = %v, want 22 (half of 44pt at 72 dpi)", hex.R)
	}
}

func TestScatterShiftLayersCycleColors(t *testing.T) {
	s := testScatter([]Shift{{1, 0}, {1, 5}})
	p := raster.NewPainter(384, 216)
	vp := raster.NewViewport(s.Window(), 384, 216, 72)
	if err := s.Compose(p, vp); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	ops := p.Ops()
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black := color.RGBA{A: 0xFF}
	if ops[0].Color != white {
		t.Errorf("first layer color = %v, want %v", ops[0].Color, white)
	}
	if ops[10].Color != black {
		t.Errorf("second layer color = %v, want %v", ops[10].Color, black)
	}
}

func TestScatterDefaults(t *testing.T) {
	tests := []struct {
		name   string
		d      *Scatter
		slug   string
		marker Marker
		size   float64
		alpha  float64
		window raster.Window
		bg     color.RGBA
	}{
		{
			"kaleidoscope", NewKaleidoscope(), "kaleidoscope", MarkerSquare, 65, 0.03,
			raster.Window{X0: 3000, X1: 23000, Y0: 4, Y1: 219},
			color.RGBA{R: 0xBB, G: 0x0A, B: 0x21, A: 0xFF},
		},
		{
			"residuals", NewResiduals(), "residuals", MarkerHexagon, 44, 0.04,
			raster.Window{X0: 9001, X1: 30333, Y0: 80, Y1: 270},
			color.RGBA{R: 0x02, G: 0x2D, B: 0x31, A: 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.d
			if d.Slug() != tt.slug {
				t.Errorf("Slug = %q, want %q", d.Slug(), tt.slug)
			}
			if d.Title() == "" || d.Describe() == "" {
				t.Error("missing title or description")
			}
			if d.marker != tt.marker || d.size != tt.size || d.alpha != tt.alpha {
				t.Errorf("marker/size/alpha = %v/%v/%v, want %v/%v/%v",
					d.marker, d.size, d.alpha, tt.marker, tt.size, tt.alpha)
			}
			if d.Limit() != 32000 {
				t.Errorf("Limit = %d, want 32000", d.Limit())
			}
			if d.Window() != tt.window {
				t.Errorf("Window = %+v, want %+v", d.Window(), tt.window)
			}
			if d.Background() != tt.bg {
				t.Errorf("Background = %v, want %v", d.Background(), tt.bg)
			}
			if len(d.colors) != 6 || len(d.Shifts()) != 6 {
				t.Errorf("colors/shifts = %d/%d, want 6/6", len(d.colors), len(d.Shifts()))
			}
		})
	}
}

func TestKaleidoscopeFirstShiftIsIdentity(t *testing.T) {
	if got := NewKaleidoscope().Shifts()[0]; got != (Shift{M: 1, C: 0}) {
		t.Errorf("first shift = %+v, want identity", got)
	}
}

func TestScatterSetParam(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		value   float64
		wantErr bool
	}{
		{"limit ok", "limit", 100, false},
		{"limit below minimum", "limit", 1, true},
		{"size ok", "size", 12, false},
		{"size zero", "size", 0, true},
		{"alpha ok", "alpha", 0.5, false},
		{"alpha above one", "alpha", 1.5, true},
		{"alpha zero", "alpha", 0, true},
		{"unknown", "bogus", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewKaleidoscope()
			err := s.SetParam(tt.param, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetParam(%q, %v) error = %v, wantErr %v", tt.param, tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && s.Params()[tt.param] != tt.value {
				t.Errorf("Params[%q] = %v after set, want %v", tt.param, s.Params()[tt.param], tt.value)
			}
		})
	}
}

func TestScatterParamsIsCopy(t *testing.T) {
	s := NewResiduals()
	got := s.Params()
	got["alpha"] = 99
	if s.Params()["alpha"] != 0.04 {
		t.Errorf("mutating the returned map changed the design: alpha = %v", s.Params()["alpha"])
	}
}
