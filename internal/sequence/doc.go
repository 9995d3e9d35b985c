// Package sequence computes the integer sequences underlying the Collatz
// scatter designs.
//
// The package provides two small pure kernels:
//
//   - [StoppingTime] / [StoppingTimes]: Collatz stopping times, the number
//     of halving/tripling steps needed to reach 1
//   - [Shift]: affine translation of a sequence (y = m*x + c), used to
//     layer shifted copies of one base sequence
//
// All functions are side-effect free and allocate their results; callers
// may reuse one base sequence across any number of shifts.
//
// # Example
//
//	steps := sequence.StoppingTimes(32000)
//	base := sequence.Floats(steps)
//	layer := sequence.Shift(base, 1.1, -5)
package sequence
