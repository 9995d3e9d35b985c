// Package raster is a small software rasterizer for composing art designs
// into RGBA images.
//
// Drawing is split into three pieces:
//
//   - [Viewport]: affine mapping from a rectangular data [Window] onto a
//     pixel surface, with the y axis flipped and independent x/y scales
//   - [Shape]: fillable regions. Marker shapes ([Square], [Hexagon]) live in
//     pixel space with fixed pixel extents; patch shapes ([Dot], [HalfDisk],
//     [Wedge]) live in data space and are stretched by the viewport
//   - [Painter]: an ordered display list of fills, rasterized onto a float
//     RGB [Canvas] and quantized once at the end
//
// Compositing is source-over in non-linear sRGB, the convention of the
// plotting systems these designs originate from. Edge pixels are
// anti-aliased by uniform supersampling.
//
// Rendering parallelizes across horizontal pixel bands. Every band walks
// the full display list in order, so per-pixel compositing order is
// identical to a serial pass and output is deterministic for a given list.
//
// # Example
//
//	vp := raster.NewViewport(raster.Window{X0: 0, X1: 10, Y0: 0, Y1: 10}, 640, 640, 72)
//	p := raster.NewPainter(640, 640)
//	p.Fill(raster.Dot{VP: vp, X: 5, Y: 5, R: 2}, col, 0.85)
//	img, err := p.Render(ctx, bg, runtime.GOMAXPROCS(0))
package raster
