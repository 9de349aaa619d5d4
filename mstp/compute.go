package mstp

import (
	"fmt"

	"github.com/katalvlaran/dmmstp/core"
	"github.com/katalvlaran/dmmstp/matrix"
)

// Compute runs the DM-MSTP procedure over an undirected, weighted graph and
// returns the selected edges in selection order, plus their total weight.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Build the dense symmetric adjacency and the identifier↔index bijection
//     (first-seen order; see matrix.BuildAdjacency).
//  3. If N ≤ 1 the spanning sequence is trivially empty: return an empty
//     slice, zero total, nil error — no selection is attempted.
//  4. Execute exactly N−1 iterations of {select → record → mask-and-drop →
//     recompute column minima}, polling the optional context between
//     iterations.
//  5. Translate the index-based path back to original identifiers.
//
// Error Conditions:
//   - ErrNilGraph             : graph is nil.
//   - matrix.ErrInvalidWeight : a negative or non-finite weight survived to
//     the adapter (wrapped).
//   - ErrDisconnected         : default masking, no genuine edge remained to
//     select (disconnected input, or a sparse one exhausted by masking).
//   - ErrCanceled             : the WithContext context expired.
//
// Under WithFaithfulMasking disconnected inputs do NOT fail: the legacy
// behavior emits sentinel-weight (+Inf) edges instead, and the returned
// total is +Inf. See the package documentation for why.
//
// Complexity: O(N³) time, O(N²) memory.
func Compute[K comparable](g *core.Graph[K], opts ...Option) ([]Edge[K], float64, error) {
	// 1. Validate the input pointer before any work.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	o := gatherOptions(opts...)

	// 2. Build matrix + bijection once per run; never rebuilt.
	mat, ix, err := matrix.BuildAdjacency(g)
	if err != nil {
		return nil, 0, fmt.Errorf("mstp: build adjacency: %w", err)
	}
	n := ix.Len()

	// 3. Degenerate inputs: nothing to span, nothing to fail.
	if n <= 1 {
		return []Edge[K]{}, 0, nil
	}

	// 4. The run context owns all mutable state for the N−1 iterations.
	st := newRunState(mat, n, o.Faithful)
	st.recomputeMinima()

	var total float64
	for k := 1; k <= n-1; k++ {
		// Cancellation boundary: each iteration is an indivisible O(N²) step.
		if o.Ctx != nil {
			select {
			case <-o.Ctx.Done():
				return nil, 0, fmt.Errorf("%w: %w", ErrCanceled, o.Ctx.Err())
			default:
			}
		}

		sel, selErr := st.selectEdge()
		if selErr != nil {
			return nil, 0, selErr
		}
		st.path = append(st.path, sel)
		total += sel.weight

		st.markAndDrop(sel)
		st.recomputeMinima()
	}

	// 5. Map matrix coordinates back to the caller's identifiers.
	edges := make([]Edge[K], 0, len(st.path))
	for _, sel := range st.path {
		from, fromErr := ix.IDOf(sel.row)
		if fromErr != nil {
			return nil, 0, fromErr
		}
		to, toErr := ix.IDOf(sel.col)
		if toErr != nil {
			return nil, 0, toErr
		}
		edges = append(edges, Edge[K]{From: from, To: to, Weight: sel.weight})
	}

	return edges, total, nil
}
