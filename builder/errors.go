package builder

import "errors"

// Sentinel errors returned by the sample-graph generators. Callers branch
// with errors.Is; generators never panic on bad parameters.
var (
	// ErrTooFewVertices indicates a requested vertex count below 1.
	ErrTooFewVertices = errors.New("builder: vertex count must be at least 1")

	// ErrTooFewEdges indicates an edge budget below n-1, which cannot keep
	// the generated graph connected.
	ErrTooFewEdges = errors.New("builder: edge count below n-1 cannot stay connected")

	// ErrTooManyEdges indicates an edge budget above n(n-1)/2, which a
	// simple undirected graph cannot hold.
	ErrTooManyEdges = errors.New("builder: edge count exceeds n(n-1)/2")

	// ErrBadWeightRange indicates a weight range that is empty, negative,
	// or non-finite.
	ErrBadWeightRange = errors.New("builder: invalid weight range")
)
