package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmmstp/core"
)

// Index is the bijection between caller vertex identifiers and dense matrix
// positions for one adjacency build. It is immutable after construction.
type Index[K comparable] struct {
	ord map[K]int // identifier → dense position
	ids []K       // dense position → identifier
}

// Len returns the number of indexed vertices (the matrix dimension N).
// Complexity: O(1).
func (ix *Index[K]) Len() int { return len(ix.ids) }

// OrdinalOf returns the dense position of id, and whether id is indexed.
// Complexity: O(1).
func (ix *Index[K]) OrdinalOf(id K) (int, bool) {
	pos, ok := ix.ord[id]

	return pos, ok
}

// IDOf translates a dense position back to the original identifier.
// Returns ErrOutOfRange for positions outside [0, Len).
// Complexity: O(1).
func (ix *Index[K]) IDOf(pos int) (K, error) {
	if pos < 0 || pos >= len(ix.ids) {
		var zero K
		return zero, fmt.Errorf("index position %d: %w", pos, ErrOutOfRange)
	}

	return ix.ids[pos], nil
}

// IDs returns a copy of all identifiers in dense-position order.
// Complexity: O(N).
func (ix *Index[K]) IDs() []K {
	out := make([]K, len(ix.ids))
	copy(out, ix.ids)

	return out
}

// BuildAdjacency converts a core.Graph into the dense symmetric weight matrix
// consumed by the DM-MSTP run, plus the Index bijection for translating the
// result back.
//
// Contract:
//   - Dense positions follow g.Vertices() order (first-seen, deterministic).
//   - The matrix starts fully at the Inf sentinel; each edge (u, v, w) is
//     written into both [u][v] and [v][u].
//   - The diagonal stays at the sentinel: self-loops never participate in
//     selection even when the source graph allows them.
//   - An empty graph yields a 0×0 matrix and an empty Index, no error.
//
// Errors: ErrGraphNil for a nil graph; ErrInvalidWeight if any edge weight is
// negative or non-finite (core normally rejects these at ingestion, but the
// adapter re-checks because a corrupt weight here poisons every column
// minimum downstream).
//
// Complexity: O(N² + E) time, O(N²) memory.
func BuildAdjacency[K comparable](g *core.Graph[K]) (*Dense, *Index[K], error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	// 1. Freeze the identifier↔position bijection from first-seen order.
	ids := g.Vertices()
	n := len(ids)
	ix := &Index[K]{ord: make(map[K]int, n), ids: ids}
	for pos, id := range ids {
		ix.ord[id] = pos
	}

	// 2. Allocate the N×N sentinel-filled matrix (0×0 for the empty graph).
	m, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	// 3. Symmetric writes for every edge, skipping the diagonal.
	for i, u := range ids {
		nbrs, nbrErr := g.Neighbors(u)
		if nbrErr != nil {
			// Unreachable for ids coming from g itself; kept for safety.
			return nil, nil, nbrErr
		}
		for v, w := range nbrs {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, nil, fmt.Errorf("edge %v—%v weight %v: %w", u, v, w, ErrInvalidWeight)
			}
			j := ix.ord[v]
			if i == j {
				continue // diagonal stays at the sentinel
			}
			_ = m.Set(i, j, w)
			_ = m.Set(j, i, w)
		}
	}

	return m, ix, nil
}
