package anglegrid

// Grid is a dense field of one rotation angle (in degrees) per cell,
// indexed by column i in [0, Width) and row j in [0, Height).
type Grid struct {
	w, h   int
	angles []float64
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// At returns the angle at column i, row j.
func (g *Grid) At(i, j int) float64 {
	return g.angles[i*g.h+j]
}

func (g *Grid) set(i, j int, v float64) {
	g.angles[i*g.h+j] = v
}

// Rotations builds a w by h single-angle field from two boundary sequences,
// each of length h: a seeds column 0 and b, consumed in reverse, seeds
// column w-1. Every row j is then overwritten with w values linearly spaced
// from the negation of its first-column seed to its last-column seed. The
// last column therefore keeps its seeded values exactly while the first
// column ends up negated.
func Rotations(w, h int, a, b []float64) (*Grid, error) {
	if w < 2 || h < 2 {
		return nil, ErrGridTooSmall
	}
	if len(a) != h || len(b) != h {
		return nil, ErrBoundaryLength
	}

	g := &Grid{w: w, h: h, angles: make([]float64, w*h)}
	for j := 0; j < h; j++ {
		g.set(0, j, a[j])
		g.set(w-1, j, b[h-1-j])
	}
	for j := 0; j < h; j++ {
		row := Linspace(-g.At(0, j), g.At(w-1, j), w)
		for i := 0; i < w; i++ {
			g.set(i, j, row[i])
		}
	}
	return g, nil
}
