// Package anglegrid builds the per-cell rotation fields behind the
// Le Parc style mosaic designs.
//
// Both generators share a two stage construction:
//
//  1. Boundary stage: the first and last grid columns are populated from
//     independently supplied angle sequences (the last in reverse order).
//  2. Row stage: every row is filled by linear interpolation between its
//     two boundary values, overwriting the whole row.
//
// The two stages produce a doubly interpolated field rather than a single
// bilinear one; the boundary sequences need not mirror each other, so the
// resulting fields are asymmetric.
//
//   - [Rotations] holds one angle per cell. Its row stage interpolates from
//     the negated first-column value, so the final first column ends up as
//     the negation of its boundary input. That sign flip is what makes the
//     rotation field undulate; do not "fix" it.
//   - [Mutations] holds a [Span] (wedge start/end sweep pair) per cell and
//     interpolates both components with no negation anywhere.
//
// Generators are pure and single pass. Dimension or boundary mismatches are
// reported through the package sentinel errors.
package anglegrid
