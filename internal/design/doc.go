// Package design defines the built-in art pieces and the interfaces the
// render pipeline drives them through.
//
// A [Design] owns everything that makes a piece itself: its data window,
// palette, geometry parameters, and the Compose step that turns them into
// a display list. Two families exist:
//
//   - scatter designs ([Scatter]): a Collatz stopping-time sequence layered
//     under several affine shifts and stamped with low-alpha markers
//   - patch designs ([PatchDesign]): per-cell patch groups oriented by an
//     angle field, one group per grid coordinate
//
// Designs with adjustable scalar parameters also implement [Tunable], which
// the studio and the configuration layer use to tweak pieces without
// constructing variants by hand.
//
// The built-ins are registered in a [Registry] by slug:
//
//	kaleidoscope  Collatz squares over a bright red field
//	residuals     Collatz hexagons over a dark sea green
//	undulations   rotated half-disc pairs, teal and coral
//	connections   mirrored translucent ring wedges, amber and raspberry
package design
