package mstp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmmstp/core"
	"github.com/katalvlaran/dmmstp/matrix"
)

// newTriangleState builds a runState over the A—B(1), A—C(2), B—C(3)
// triangle for white-box assertions on the iteration internals.
func newTriangleState(t *testing.T, faithful bool) *runState {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	mat, ix, err := matrix.BuildAdjacency(g)
	require.NoError(t, err)

	return newRunState(mat, ix.Len(), faithful)
}

// TestRecomputeMinima_Idempotent verifies that two recomputes without an
// intervening mask produce identical snapshots, and that the snapshot length
// stays N regardless of marks.
func TestRecomputeMinima_Idempotent(t *testing.T) {
	st := newTriangleState(t, false)

	st.recomputeMinima()
	first := append([]float64(nil), st.minima...)
	st.recomputeMinima()

	assert.Equal(t, first, st.minima, "recompute must be idempotent")
	assert.Equal(t, []float64{1, 1, 2}, st.minima)
	assert.Len(t, st.minima, st.n)
}

// TestRecomputeMinima_MarkedColumnForcedToSentinel verifies that after the
// first mask-and-drop the consumed column's snapshot entry is the sentinel —
// the exact state the legacy defect feeds back into selection.
func TestRecomputeMinima_MarkedColumnForcedToSentinel(t *testing.T) {
	st := newTriangleState(t, true)
	st.recomputeMinima()

	sel, err := st.selectEdge()
	require.NoError(t, err)
	assert.Equal(t, selected{row: 0, col: 2, weight: 2}, sel)

	st.markAndDrop(sel)
	st.recomputeMinima()

	require.Len(t, st.minima, st.n)
	assert.Equal(t, 1.0, st.minima[0])
	assert.Equal(t, 3.0, st.minima[1])
	assert.True(t, math.IsInf(st.minima[2], 1), "masked column must read as the sentinel")

	// Faithful selection now re-picks the masked column — the defect itself.
	again, err := st.selectEdge()
	require.NoError(t, err)
	assert.Equal(t, 2, again.col)
	assert.True(t, math.IsInf(again.weight, 1))
}

// TestMarkAndDrop_BreaksSymmetry verifies the documented latent asymmetry:
// row and column overwrites are independent, so a masked matrix need not be
// symmetric. Selection is unaffected because it only reads columns.
func TestMarkAndDrop_BreaksSymmetry(t *testing.T) {
	st := newTriangleState(t, false)
	st.recomputeMinima()
	assert.True(t, st.mat.Symmetric(), "pre-mask adjacency is symmetric")

	sel, err := st.selectEdge()
	require.NoError(t, err)
	st.markAndDrop(sel)

	// Row 0 is all-sentinel while column 0 still carries B—A and C—A.
	assert.False(t, st.mat.Symmetric(), "masking row 0 / column 2 leaves the matrix asymmetric")
	v01, _ := st.mat.At(0, 1)
	v10, _ := st.mat.At(1, 0)
	assert.True(t, math.IsInf(v01, 1))
	assert.Equal(t, 1.0, v10)

	// Marks are grow-only and reflect exactly the consumed lanes.
	assert.True(t, st.markedRows[0])
	assert.True(t, st.markedCols[2])
	assert.False(t, st.markedCols[0])
}

// TestSelectEdge_HardenedSkipsMarkedColumns verifies that the default
// policy removes consumed columns from the candidate set instead of letting
// their sentinel entries win the maximin.
func TestSelectEdge_HardenedSkipsMarkedColumns(t *testing.T) {
	st := newTriangleState(t, false)
	st.recomputeMinima()

	sel, err := st.selectEdge()
	require.NoError(t, err)
	st.markAndDrop(sel)
	st.recomputeMinima()

	next, err := st.selectEdge()
	require.NoError(t, err)
	assert.Equal(t, selected{row: 2, col: 1, weight: 3}, next,
		"with column C excluded, column B's minimum (3) wins")
}
