// Package preview renders designs as terminal text: a line chart of the
// stopping-time sequence for the scatter pieces and braille needle fields
// for the patch mosaics.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/artlab/internal/anglegrid"
	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/sequence"
)

// MinCols is the narrowest terminal a preview can usefully target.
const MinCols = 24

// Text renders d as plain terminal text at most cols characters wide.
func Text(d design.Design, cols int) (string, error) {
	if cols < MinCols {
		return "", fmt.Errorf("preview: need at least %d columns, got %d", MinCols, cols)
	}
	switch v := d.(type) {
	case *design.Scatter:
		return chart(v, cols), nil
	case *design.Undulations:
		g, err := v.Angles()
		if err != nil {
			return "", err
		}
		return needles(rotationField{g}, cols), nil
	case *design.Connections:
		red, blue, err := v.Grids()
		if err != nil {
			return "", err
		}
		return needles(spanField{red}, cols) + "\n\n" + needles(spanField{blue}, cols), nil
	}
	return "", fmt.Errorf("preview: no terminal view for %s", d.Slug())
}

// chart plots the stopping-time sequence a scatter design draws from. The
// profile, not the marker cloud, is what survives a character grid.
func chart(s *design.Scatter, cols int) string {
	series := sequence.Floats(sequence.StoppingTimes(s.Limit()))
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(cols-10),
		asciigraph.Caption(fmt.Sprintf("stopping times for n < %d", s.Limit())),
	)
}

// field exposes one needle direction per grid cell.
type field interface {
	Dims() (w, h int)
	Needle(i, j int) (deg float64, ok bool)
}

type rotationField struct{ g *anglegrid.Grid }

func (f rotationField) Dims() (w, h int) { return f.g.Width(), f.g.Height() }
func (f rotationField) Needle(i, j int) (float64, bool) {
	return f.g.At(i, j), true
}

// spanField reduces a wedge family to the bisector of each span. Cells whose
// sweep has closed to nothing draw no needle, matching the invisible wedge.
type spanField struct{ g *anglegrid.PairGrid }

func (f spanField) Dims() (w, h int) { return f.g.Width(), f.g.Height() }
func (f spanField) Needle(i, j int) (float64, bool) {
	s := f.g.At(i, j)
	if s.Sweep() <= 0 {
		return 0, false
	}
	return s.Theta1 + s.Sweep()/2, true
}

// needles draws one oriented stroke per cell. Each cell owns a 4x4 dot box,
// two characters wide and one row tall; wider fields are sampled down to
// fit. Grid row zero sits at the bottom, as in the designs' data space.
func needles(f field, cols int) string {
	w, h := f.Dims()
	step := 1
	for (w+step-1)/step*2 > cols {
		step++
	}
	sw := (w + step - 1) / step
	sh := (h + step - 1) / step

	c := NewCanvas(sw*2, sh)
	for si := 0; si < sw; si++ {
		for sj := 0; sj < sh; sj++ {
			deg, ok := f.Needle(si*step, sj*step)
			if !ok {
				continue
			}
			rad := deg * (math.Pi / 180)
			dx, dy := 2*math.Cos(rad), 2*math.Sin(rad)
			cx := float64(si*4 + 2)
			cy := float64((sh-1-sj)*4 + 2)
			c.Line(int(math.Round(cx-dx)), int(math.Round(cy+dy)),
				int(math.Round(cx+dx)), int(math.Round(cy-dy)))
		}
	}
	return strings.TrimRight(c.String(), "\n")
}
