// Package matrix provides the dense weight-matrix primitives behind DM-MSTP:
// a row-major Dense container whose entries default to the Inf sentinel
// ("no edge"), a Index bijection between vertex identifiers and dense
// positions, and the BuildAdjacency adapter that turns a core.Graph into
// both.
//
// Sentinel policy:
//
//	Inf (= math.Inf(1)) means "no edge" inside a Dense weight matrix. The
//	diagonal of a built adjacency matrix is always Inf (no self-loops), and
//	the mask-and-drop step of the procedure overwrites consumed rows and
//	columns with Inf. Note the deliberate asymmetry warning: masking mutates
//	a row and a column as two independent writes, so a masked matrix is not
//	guaranteed symmetric — only construction-time symmetry is an invariant.
//
// Determinism:
//
//	BuildAdjacency assigns dense indices in the order reported by
//	core.Graph.Vertices(), i.e. first-seen insertion order. The Index value
//	it returns is the only translation layer between caller identifiers and
//	matrix positions; algorithms never see raw IDs.
//
// Errors (sentinel):
//
//	– ErrBadShape      if a negative dimension is requested.
//	– ErrOutOfRange    if a row/column index is outside bounds.
//	– ErrGraphNil      if a nil graph is passed to BuildAdjacency.
//	– ErrInvalidWeight if a non-finite or negative weight reaches the adapter.
//
// Complexity: building an N-vertex adjacency is O(N²) space and
// O(N² + E) time; all Dense accessors are O(1) except the row/column
// sweeps, which are O(N).
package matrix
