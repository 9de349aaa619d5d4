// Package mstp implements DM-MSTP, a matrix-driven greedy procedure that
// builds a spanning edge sequence over an undirected, weighted graph.
//
// How the procedure works
//
//	Given the dense symmetric weight matrix of the graph (Inf = "no edge"),
//	the run executes exactly |V|−1 iterations of:
//
//	 1. ColumnMinima — for every column, the minimum weight over all rows;
//	    columns already consumed are forced to the sentinel.
//	 2. Selection    — pick the column whose minimum is LARGEST (ties → the
//	    lowest column index), then within that column the row holding the
//	    minimum weight (ties → the lowest row index).
//	 3. Record       — append (row, column, weight) to the path.
//	 4. Mask-and-drop — mark the row and the column as consumed and overwrite
//	    both lanes with the sentinel.
//
//	On completion the index-based path is translated back to the caller's
//	vertex identifiers via the build-time bijection.
//
// What it does NOT guarantee
//
//	The selection rule is a greedy maximin: among available columns it
//	prefers the one whose cheapest incoming edge is the most expensive.
//	This is not Prim's rule, and the output is NOT a minimum-weight spanning
//	tree in general. The package reproduces the procedure, not optimality.
//
// Masking policy (the historical defect)
//
//	The legacy formulation reused the "no edge" sentinel to also mean
//	"column consumed". Because selection maximizes over column minima, a
//	consumed column — forced to +∞ — paradoxically becomes the most
//	attractive candidate and is re-selected, injecting infinite-weight edges
//	into the output. Those are two different semantics that collide under a
//	max-seeking rule.
//
//	The default here keeps them apart: consumed columns are tracked as
//	explicit marks and excluded from the candidate set entirely, and any
//	attempt to select a sentinel-weight edge (a disconnected input) aborts
//	with ErrDisconnected. WithFaithfulMasking() restores the literal legacy
//	behavior for compatibility testing.
//
// Determinism
//
//	Vertex→index assignment follows core.Graph first-seen order; both
//	tie-breaks are lowest-index-first. Identical inputs produce identical
//	outputs.
//
// Complexity: O(N²) per iteration (full column-minima recompute, as in the
// reference behavior), O(N³) per run, O(N²) memory. Each run owns its matrix,
// mark sets, and path exclusively; nothing is shared or persisted.
//
// Errors (sentinel):
//
//	– ErrNilGraph     if the graph pointer is nil.
//	– ErrDisconnected if selection would emit a sentinel-weight edge
//	                  (default masking only).
//	– ErrCanceled     if the WithContext context expires between iterations.
package mstp
