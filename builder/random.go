package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/dmmstp/core"
)

// validateWeightRange checks the [min, max) weight bounds shared by all
// generators: finite, non-negative, non-empty.
func validateWeightRange(o Options) error {
	if math.IsNaN(o.minWeight) || math.IsInf(o.minWeight, 0) ||
		math.IsNaN(o.maxWeight) || math.IsInf(o.maxWeight, 0) {
		return ErrBadWeightRange
	}
	if o.minWeight < 0 || o.maxWeight <= o.minWeight {
		return ErrBadWeightRange
	}

	return nil
}

// randWeight draws the next weight from the half-open range [min, max).
func randWeight(rng *rand.Rand, o Options) float64 {
	return o.minWeight + rng.Float64()*(o.maxWeight-o.minWeight)
}

// vertexID formats the i-th vertex name under the configured prefix.
func vertexID(o Options, i int) string {
	return fmt.Sprintf("%s%d", o.idPrefix, i)
}

// RandomConnected generates a connected, undirected, weighted sample graph.
//
// Steps:
//  1. Validate: n ≥ 1, n-1 ≤ m ≤ n(n-1)/2, sane weight range.
//  2. Register vertices V0..V(n-1) in order, fixing the index assignment.
//  3. Chain V(i-1)—V(i) to guarantee connectivity.
//  4. Top up with random non-loop, non-duplicate edges until m total.
//
// Determinism: a local rand.New(rand.NewSource(seed)) stream drives every
// draw, so identical options reproduce the exact same graph.
//
// Errors: ErrTooFewVertices, ErrTooFewEdges, ErrTooManyEdges,
// ErrBadWeightRange.
//
// Complexity: O(n + m) expected; duplicate-pair retries are cheap while the
// edge budget stays below the simple-graph maximum.
func RandomConnected(opts ...Option) (*core.Graph[string], error) {
	o := gatherOptions(opts...)

	// 1. Parameter validation — sentinel errors, never panics.
	n, m := o.vertexCount, o.edgeCount
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if m < n-1 {
		return nil, ErrTooFewEdges
	}
	if m > n*(n-1)/2 {
		return nil, ErrTooManyEdges
	}
	if err := validateWeightRange(o); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.seed))
	g := core.NewGraph[string]()

	// 2. Vertices first: the generated order IS the dense index order.
	for i := 0; i < n; i++ {
		g.AddVertex(vertexID(o, i))
	}

	// 3. Connectivity chain V0—V1—…—V(n-1).
	for i := 1; i < n; i++ {
		if err := g.AddEdge(vertexID(o, i-1), vertexID(o, i), randWeight(rng, o)); err != nil {
			return nil, fmt.Errorf("builder: chain edge: %w", err)
		}
	}

	// 4. Extra random edges; skip loops and already-present pairs so every
	// draw that lands counts exactly once.
	for added := n - 1; added < m; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, exists := g.Weight(vertexID(o, u), vertexID(o, v)); exists {
			continue
		}
		if err := g.AddEdge(vertexID(o, u), vertexID(o, v), randWeight(rng, o)); err != nil {
			return nil, fmt.Errorf("builder: extra edge: %w", err)
		}
		added++
	}

	return g, nil
}
