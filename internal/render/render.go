// Package render turns a design into pixels and onto disk. Image rasterizes
// a design at a chosen surface size; Save renders and writes the PNG next to
// a JSON metadata sidecar.
package render

import (
	"context"
	"fmt"
	"image"

	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/raster"
)

// Options set the output surface. The zero Workers value uses one worker
// per CPU.
type Options struct {
	Width, Height int
	DPI           float64
	Workers       int
}

// DefaultOptions is the gallery resolution: ultra HD at 72 dpi.
func DefaultOptions() Options {
	return Options{Width: 3840, Height: 2160, DPI: 72}
}

// Image composes the design over its own window and rasterizes it onto a
// Width by Height surface.
func Image(ctx context.Context, d design.Design, opts Options) (*image.RGBA, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("render: surface must be at least 1x1, got %dx%d", opts.Width, opts.Height)
	}
	if opts.DPI <= 0 {
		return nil, fmt.Errorf("render: dpi must be positive, got %v", opts.DPI)
	}

	vp := raster.NewViewport(d.Window(), opts.Width, opts.Height, opts.DPI)
	p := raster.NewPainter(opts.Width, opts.Height)
	if err := d.Compose(p, vp); err != nil {
		return nil, err
	}
	return p.Render(ctx, d.Background(), opts.Workers)
}
