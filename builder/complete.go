package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dmmstp/core"
)

// Complete generates the complete simple graph K_n with random weights drawn
// from the configured range. Complete inputs are the safe fixture for
// DM-MSTP's hardened run: every unmarked column always retains a genuine
// edge, so the procedure finishes all n-1 iterations (see mstp docs).
//
// The vertexCount/edgeCount options are ignored here; n is explicit.
//
// Errors: ErrTooFewVertices (n < 1), ErrBadWeightRange.
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph[string], error) {
	o := gatherOptions(opts...)

	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if err := validateWeightRange(o); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.seed))
	g := core.NewGraph[string]()

	// Vertices first to pin the index order, then all pairs in row order.
	for i := 0; i < n; i++ {
		g.AddVertex(vertexID(o, i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(vertexID(o, i), vertexID(o, j), randWeight(rng, o)); err != nil {
				return nil, fmt.Errorf("builder: complete edge: %w", err)
			}
		}
	}

	return g, nil
}
