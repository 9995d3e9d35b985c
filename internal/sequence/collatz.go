package sequence

// StoppingTime returns the number of Collatz steps needed to reduce n to 1:
// even values halve, odd values map to 3n+1. The count for n=1 is 0.
// All arithmetic stays in the integer domain; the even branch divides
// exactly because n is even.
func StoppingTime(n int) int {
	if n < 1 {
		return 0
	}
	steps := 0
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		steps++
	}
	return steps
}

// StoppingTimes returns the stopping times for every starting integer in
// [1, limit), so entry k holds the count for n = k+1. A limit of 1 or less
// yields an empty sequence.
func StoppingTimes(limit int) []int {
	if limit <= 1 {
		return nil
	}
	steps := make([]int, 0, limit-1)
	for n := 1; n < limit; n++ {
		steps = append(steps, StoppingTime(n))
	}
	return steps
}
