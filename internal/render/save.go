package render

import (
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/artlab/internal/design"
)

// Result records one finished render.
type Result struct {
	Design    string             `json:"design"`
	Title     string             `json:"title"`
	Path      string             `json:"path"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	DPI       float64            `json:"dpi"`
	Params    map[string]float64 `json:"params,omitempty"`
	ElapsedMS int64              `json:"elapsed_ms"`
	CreatedAt time.Time          `json:"created_at"`
}

// Save renders the design and writes <slug>.png plus a <slug>.json sidecar
// into dir, creating it if needed. The elapsed time covers both the raster
// pass and the PNG encode.
func Save(ctx context.Context, d design.Design, opts Options, dir string) (Result, error) {
	start := time.Now()

	img, err := Image(ctx, d, opts)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, err
	}
	path := filepath.Join(dir, d.Slug()+".png")
	if err := WritePNG(path, img); err != nil {
		return Result{}, err
	}

	res := Result{
		Design:    d.Slug(),
		Title:     d.Title(),
		Path:      path,
		Width:     opts.Width,
		Height:    opts.Height,
		DPI:       opts.DPI,
		ElapsedMS: time.Since(start).Milliseconds(),
		CreatedAt: time.Now(),
	}
	if tun, ok := d.(design.Tunable); ok {
		res.Params = tun.Params()
	}

	if err := writeSidecar(filepath.Join(dir, d.Slug()+".json"), res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

func writeSidecar(path string, res Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
