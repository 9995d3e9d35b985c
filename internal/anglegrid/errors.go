package anglegrid

import "errors"

var (
	// ErrGridTooSmall indicates a grid dimension below the 2x2 minimum
	// needed for boundary plus row interpolation.
	ErrGridTooSmall = errors.New("anglegrid: grid dimensions must be at least 2x2")

	// ErrBoundaryLength indicates a boundary angle sequence whose length
	// does not match the grid height.
	ErrBoundaryLength = errors.New("anglegrid: boundary sequence length must equal grid height")
)
