package anglegrid

// Linspace returns n values evenly spaced from start to stop, both endpoints
// included. For n == 1 the single value is start. The final entry is set to
// stop exactly so boundary comparisons hold bit for bit.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
