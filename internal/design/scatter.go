package design

import (
	"fmt"
	"image/color"

	"github.com/san-kum/artlab/internal/palette"
	"github.com/san-kum/artlab/internal/raster"
	"github.com/san-kum/artlab/internal/sequence"
)

// Marker selects the scatter marker shape.
type Marker int

const (
	MarkerSquare Marker = iota
	MarkerHexagon
)

// Shift is one affine scatter layer, y = m*x + c over the base sequence.
type Shift struct {
	M, C float64
}

// Scatter is a Collatz stopping-time design: the base sequence is layered
// once per shift, each layer stamped in the next cycle color with oversized
// low-alpha markers so the layers blend into texture.
type Scatter struct {
	slug  string
	title string
	desc  string

	window     raster.Window
	background color.RGBA
	colors     []color.RGBA
	shifts     []Shift
	marker     Marker
	size       float64 // marker size in points
	alpha      float64
	limit      int // sequence upper bound, exclusive
}

// NewKaleidoscope builds the square-marker scatter over a bright red field.
func NewKaleidoscope() *Scatter {
	return &Scatter{
		slug:  "kaleidoscope",
		title: "Collatz Kaleidoscope",
		desc: "Six linearly shifted copies of the Collatz stopping-time " +
			"scatter, stamped as oversized squares at three percent alpha " +
			"over a bright red field. The layers blend into a painterly, " +
			"prismatic texture that suggests the underlying number-theoretic " +
			"structure without making it the focus.",
		window:     raster.Window{X0: 3000, X1: 23000, Y0: 4, Y1: 219},
		background: palette.MustHex("#BB0A21"),
		colors: palette.MustHexAll(
			"#1A3BFF", "#FFB509", "#33C2CC", "#FCDC4D", "#8CF2A6", "#FF9582",
		),
		shifts: []Shift{
			{1, 0}, {1.1, -5}, {0.89, -2}, {0.95, -20}, {0.99, 4}, {0.9, 12},
		},
		marker: MarkerSquare,
		size:   65,
		alpha:  0.03,
		limit:  32000,
	}
}

// NewResiduals builds the hexagon-marker scatter over a dark sea green.
func NewResiduals() *Scatter {
	return &Scatter{
		slug:  "residuals",
		title: "Collatz Residuals",
		desc: "The stopping-time scatter under six gentle shifts, drawn " +
			"with medium hexagonal markers on a dark sea green, like light " +
			"reflecting off water at night. The pattern thins from a dense " +
			"foreground to a sparse background, so its recurring motifs " +
			"seem to fade and blur across the frame.",
		window:     raster.Window{X0: 9001, X1: 30333, Y0: 80, Y1: 270},
		background: palette.MustHex("#022D31"),
		colors: palette.MustHexAll(
			"#577399", "#1BE7FF", "#139BC4", "#40C9A2", "#FF312E", "#FF5B7C",
		),
		shifts: []Shift{
			{0.96, 10}, {1.15, -3}, {0.98, 5}, {1.03, 0}, {0.94, -10}, {1, 3},
		},
		marker: MarkerHexagon,
		size:   44,
		alpha:  0.04,
		limit:  32000,
	}
}

func (s *Scatter) Slug() string           { return s.slug }
func (s *Scatter) Title() string          { return s.title }
func (s *Scatter) Describe() string       { return s.desc }
func (s *Scatter) Background() color.RGBA { return s.background }
func (s *Scatter) Window() raster.Window  { return s.window }
func (s *Scatter) Shifts() []Shift        { return s.shifts }
func (s *Scatter) Limit() int             { return s.limit }

// Compose stamps one marker per sequence index per shift layer. The x value
// of each point is its zero-based index; markers keep a fixed pixel size
// from the viewport's DPI regardless of the data window.
func (s *Scatter) Compose(p *raster.Painter, vp raster.Viewport) error {
	base := sequence.Floats(sequence.StoppingTimes(s.limit))
	cols := palette.NewCycle(s.colors)
	sizePx := vp.PointPx(s.size)

	for _, sh := range s.shifts {
		col := cols.Next()
		for x, y := range sequence.Shift(base, sh.M, sh.C) {
			px, py := vp.ToPx(float64(x), y)
			p.Fill(s.markerShape(px, py, sizePx), col, s.alpha)
		}
	}
	return nil
}

func (s *Scatter) markerShape(px, py, sizePx float64) raster.Shape {
	if s.marker == MarkerHexagon {
		return raster.Hexagon{CX: px, CY: py, R: sizePx / 2}
	}
	return raster.Square{CX: px, CY: py, Side: sizePx}
}

// Params implements Tunable.
func (s *Scatter) Params() map[string]float64 {
	return map[string]float64{
		"limit": float64(s.limit),
		"size":  s.size,
		"alpha": s.alpha,
	}
}

// SetParam implements Tunable.
func (s *Scatter) SetParam(name string, value float64) error {
	switch name {
	case "limit":
		if value < 2 {
			return fmt.Errorf("design: %s limit must be at least 2, got %v", s.slug, value)
		}
		s.limit = int(value)
	case "size":
		if value <= 0 {
			return fmt.Errorf("design: %s marker size must be positive, got %v", s.slug, value)
		}
		s.size = value
	case "alpha":
		if value <= 0 || value > 1 {
			return fmt.Errorf("design: %s alpha must be in (0, 1], got %v", s.slug, value)
		}
		s.alpha = value
	default:
		return fmt.Errorf("design: unknown parameter %q for %s", name, s.slug)
	}
	return nil
}
