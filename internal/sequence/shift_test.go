package sequence

import (
	"reflect"
	"testing"
)

func TestShiftAffine(t *testing.T) {
	in := []float64{0, 1, 7, 2, 5}

	got := Shift(in, 2, -1)
	want := []float64{-1, 1, 13, 3, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shift(%v, 2, -1) = %v, want %v", in, got, want)
	}
}

func TestShiftIdentity(t *testing.T) {
	in := Floats(StoppingTimes(10))

	got := Shift(in, 1, 0)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Shift(seq, 1, 0) = %v, want %v", got, in)
	}
}

func TestShiftPreservesInput(t *testing.T) {
	in := []float64{3, 1, 4}
	orig := []float64{3, 1, 4}

	out := Shift(in, 0.5, 10)
	if !reflect.DeepEqual(in, orig) {
		t.Errorf("Shift mutated its input: %v", in)
	}
	if len(out) != len(in) {
		t.Errorf("Shift changed length: got %d, want %d", len(out), len(in))
	}
}

func TestFloats(t *testing.T) {
	got := Floats([]int{0, 1, 7})
	want := []float64{0, 1, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Floats = %v, want %v", got, want)
	}
}
