package sequence

// Shift applies the affine map y = m*x + c to every element, returning a new
// sequence of the same length. Shift(seq, 1, 0) reproduces the input.
func Shift(seq []float64, m, c float64) []float64 {
	out := make([]float64, len(seq))
	for i, x := range seq {
		out[i] = m*x + c
	}
	return out
}

// Floats widens an integer sequence to float64 for use with Shift.
func Floats(seq []int) []float64 {
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = float64(v)
	}
	return out
}
