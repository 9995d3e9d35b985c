package anglegrid

// Span is the angular coverage of one wedge: start and end sweep angles in
// degrees, counterclockwise from the positive x axis.
type Span struct {
	Theta1 float64
	Theta2 float64
}

// Sweep returns the angular extent Theta2 - Theta1.
func (s Span) Sweep() float64 { return s.Theta2 - s.Theta1 }

// PairGrid is a dense field of one Span per cell, indexed like Grid.
type PairGrid struct {
	w, h  int
	spans []Span
}

func (g *PairGrid) Width() int  { return g.w }
func (g *PairGrid) Height() int { return g.h }

// At returns the span at column i, row j.
func (g *PairGrid) At(i, j int) Span {
	return g.spans[i*g.h+j]
}

func (g *PairGrid) set(i, j int, s Span) {
	g.spans[i*g.h+j] = s
}

// linspaceSpans interpolates both span components independently, from from
// to to, over n evenly spaced entries.
func linspaceSpans(from, to Span, n int) []Span {
	t1 := Linspace(from.Theta1, to.Theta1, n)
	t2 := Linspace(from.Theta2, to.Theta2, n)
	out := make([]Span, n)
	for i := range out {
		out[i] = Span{Theta1: t1[i], Theta2: t2[i]}
	}
	return out
}

// Mutations builds a w by h dual-angle field for one wedge family. The
// boundary sequence runs component-wise from max to min over h entries;
// reverse flips its traversal order, producing the mirrored field used by
// a design's second family. Column 0 takes the (possibly reversed) sequence,
// column w-1 takes it back to front, and every row is then overwritten with
// w spans interpolated between its two boundary spans. Unlike Rotations,
// no negation is applied at either stage.
func Mutations(w, h int, max, min Span, reverse bool) (*PairGrid, error) {
	if w < 2 || h < 2 {
		return nil, ErrGridTooSmall
	}

	boundary := linspaceSpans(max, min, h)
	if reverse {
		for lo, hi := 0, len(boundary)-1; lo < hi; lo, hi = lo+1, hi-1 {
			boundary[lo], boundary[hi] = boundary[hi], boundary[lo]
		}
	}

	g := &PairGrid{w: w, h: h, spans: make([]Span, w*h)}
	for j := 0; j < h; j++ {
		g.set(0, j, boundary[j])
		g.set(w-1, j, boundary[h-1-j])
	}
	for j := 0; j < h; j++ {
		row := linspaceSpans(g.At(0, j), g.At(w-1, j), w)
		for i := 0; i < w; i++ {
			g.set(i, j, row[i])
		}
	}
	return g, nil
}
