package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmmstp/core"
	"github.com/katalvlaran/dmmstp/matrix"
)

// buildTriangle is the canonical fixture: A—B(1), A—C(2), B—C(3) with
// first-seen index order A=0, B=1, C=2.
func buildTriangle(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	return g
}

// TestBuildAdjacency_SymmetricWithSentinelDiagonal verifies the build-time
// invariants: symmetric off-diagonal writes and an all-sentinel diagonal.
func TestBuildAdjacency_SymmetricWithSentinelDiagonal(t *testing.T) {
	m, ix, err := matrix.BuildAdjacency(buildTriangle(t))
	require.NoError(t, err)
	require.Equal(t, 3, ix.Len())
	assert.True(t, m.Symmetric(), "constructed adjacency must be symmetric")

	// Diagonal stays at the sentinel.
	for i := 0; i < 3; i++ {
		v, atErr := m.At(i, i)
		require.NoError(t, atErr)
		assert.True(t, math.IsInf(v, 1))
	}

	// Spot-check both mirrored halves of each edge.
	check := func(i, j int, want float64) {
		vij, _ := m.At(i, j)
		vji, _ := m.At(j, i)
		assert.Equal(t, want, vij)
		assert.Equal(t, want, vji)
	}
	check(0, 1, 1) // A—B
	check(0, 2, 2) // A—C
	check(1, 2, 3) // B—C
}

// TestBuildAdjacency_IndexBijection verifies identifier↔position round trips
// follow first-seen order.
func TestBuildAdjacency_IndexBijection(t *testing.T) {
	_, ix, err := matrix.BuildAdjacency(buildTriangle(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ix.IDs())
	for pos, id := range []string{"A", "B", "C"} {
		got, ok := ix.OrdinalOf(id)
		assert.True(t, ok)
		assert.Equal(t, pos, got)

		back, idErr := ix.IDOf(pos)
		require.NoError(t, idErr)
		assert.Equal(t, id, back)
	}

	_, ok := ix.OrdinalOf("Z")
	assert.False(t, ok)
	_, err = ix.IDOf(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestBuildAdjacency_EmptyAndNil verifies the degenerate contracts: empty
// graph → 0×0 matrix without error; nil graph → ErrGraphNil.
func TestBuildAdjacency_EmptyAndNil(t *testing.T) {
	m, ix, err := matrix.BuildAdjacency(core.NewGraph[string]())
	require.NoError(t, err)
	assert.Zero(t, m.Rows())
	assert.Zero(t, ix.Len())

	_, _, err = matrix.BuildAdjacency[string](nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestBuildAdjacency_RejectsNegativeWeight verifies the adapter's re-check:
// a graph that opted into negative weights cannot produce a DM-MSTP matrix.
func TestBuildAdjacency_RejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph[string](core.WithNegativeWeights())
	require.NoError(t, g.AddEdge("A", "B", -2))

	_, _, err := matrix.BuildAdjacency(g)
	assert.ErrorIs(t, err, matrix.ErrInvalidWeight)
}

// TestBuildAdjacency_LoopsStayOffMatrix verifies that self-loops allowed at
// the graph layer never reach the diagonal.
func TestBuildAdjacency_LoopsStayOffMatrix(t *testing.T) {
	g := core.NewGraph[string](core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 5))
	require.NoError(t, g.AddEdge("A", "B", 1))

	m, _, err := matrix.BuildAdjacency(g)
	require.NoError(t, err)

	diag, _ := m.At(0, 0)
	assert.True(t, math.IsInf(diag, 1), "loop weight must not land on the diagonal")
}
