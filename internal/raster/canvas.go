package raster

import (
	"image"
	"image/color"
)

// Canvas is a float RGB compositing surface, one channel triple per pixel,
// normalized to [0, 1]. Keeping channels in floats avoids quantization drift
// when many low-alpha fills stack on the same pixel.
type Canvas struct {
	w, h    int
	r, g, b []float64
}

// NewCanvas allocates a black canvas of the given pixel dimensions.
func NewCanvas(w, h int) *Canvas {
	n := w * h
	return &Canvas{
		w: w,
		h: h,
		r: make([]float64, n),
		g: make([]float64, n),
		b: make([]float64, n),
	}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) idx(x, y int) int { return y*c.w + x }

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.RGBA) {
	r, g, b := channels(col)
	for i := range c.r {
		c.r[i], c.g[i], c.b[i] = r, g, b
	}
}

// Blend composites col over pixel (x, y) with the given alpha, source-over.
func (c *Canvas) Blend(x, y int, col color.RGBA, alpha float64) {
	r, g, b := channels(col)
	c.blend(x, y, r, g, b, alpha)
}

func (c *Canvas) blend(x, y int, r, g, b, alpha float64) {
	i := c.idx(x, y)
	keep := 1 - alpha
	c.r[i] = c.r[i]*keep + r*alpha
	c.g[i] = c.g[i]*keep + g*alpha
	c.b[i] = c.b[i]*keep + b*alpha
}

// At returns the composited channels at (x, y).
func (c *Canvas) At(x, y int) (r, g, b float64) {
	i := c.idx(x, y)
	return c.r[i], c.g[i], c.b[i]
}

// Image quantizes the canvas to an opaque 8-bit RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			i := c.idx(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = quantize(c.r[i])
			img.Pix[o+1] = quantize(c.g[i])
			img.Pix[o+2] = quantize(c.b[i])
			img.Pix[o+3] = 0xFF
		}
	}
	return img
}

func channels(col color.RGBA) (r, g, b float64) {
	return float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
