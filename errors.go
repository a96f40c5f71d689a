package refframe

import "errors"

var (
	// ErrDimensionMismatch reports coordinates whose dimensionality does not
	// match the expected 2 or 3 components.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrCycleDetected reports a frame whose parent chain revisits itself.
	ErrCycleDetected = errors.New("cycle detected in frame ancestry")

	// ErrNoCommonAncestor reports a conversion between frames that belong to
	// disjoint trees.
	ErrNoCommonAncestor = errors.New("frames share no common ancestor")

	// ErrInvalidOperation reports an operation that is not defined for its
	// operands, such as normalizing a zero-length direction.
	ErrInvalidOperation = errors.New("invalid operation")
)
