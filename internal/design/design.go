package design

import (
	"image/color"

	"github.com/san-kum/artlab/internal/raster"
)

// Design is one art piece. Compose appends the piece's fills to a painter
// prepared for the viewport's surface; it does not rasterize.
type Design interface {
	Slug() string
	Title() string
	Describe() string
	Background() color.RGBA
	Window() raster.Window
	Compose(p *raster.Painter, vp raster.Viewport) error
}

// Tunable is implemented by designs with adjustable scalar parameters.
// Params returns a fresh copy of the current values; SetParam rejects
// unknown names and out-of-range values.
type Tunable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// PatchDesign is a mosaic design that assembles one patch group per cell
// of an angle field.
type PatchDesign interface {
	Design
	GridSize() (w, h int)
	CellPatches(vp raster.Viewport, i, j int) ([]raster.Op, error)
}

// composePatches assembles a patch design cell by cell, columns outer,
// rows inner, matching the order neighbors overlap in.
func composePatches(d PatchDesign, p *raster.Painter, vp raster.Viewport) error {
	w, h := d.GridSize()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			ops, err := d.CellPatches(vp, i, j)
			if err != nil {
				return err
			}
			for _, op := range ops {
				p.Add(op)
			}
		}
	}
	return nil
}
