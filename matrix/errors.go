// Package matrix: sentinel error set. All public operations return these
// sentinels (possibly wrapped with fmt.Errorf("...: %w", ...) at outer
// boundaries); tests match them via errors.Is. No public operation panics on
// user-triggered conditions.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a negative dimension is requested.
	// A 0×0 matrix is valid: it is the canonical image of an empty graph.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates that a nil *core.Graph was passed into the adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrInvalidWeight indicates a negative or non-finite edge weight reached
	// BuildAdjacency. Finite non-negative weights are the adapter's contract;
	// anything else would silently corrupt column-minima computations.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
