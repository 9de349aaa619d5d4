package mstp_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmmstp/core"
	"github.com/katalvlaran/dmmstp/mstp"
)

// buildTriangle is the canonical anomaly fixture from the legacy procedure:
// A—B(1), A—C(2), B—C(3) with index order A=0, B=1, C=2.
func buildTriangle(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	return g
}

// buildUnitSquare builds the 4-cycle A—B, A—C, B—D, C—D, all weight 1:
// every column minimum ties, exercising both tie-break levels.
func buildUnitSquare(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

// buildComplete builds K_n on vertices V0..V(n-1) with weight i+j+1 for the
// edge Vi—Vj. Complete inputs always leave a genuine edge in every unmarked
// column, so the default-policy run is guaranteed to finish.
func buildComplete(t *testing.T, n int) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(
				fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", j), float64(i+j+1)))
		}
	}

	return g
}

// TestCompute_Triangle verifies the full maximin run on the triangle:
// column minima [1 1 2] → column C (max 2), row A (min 2) → edge (A,C,2);
// then, with column C excluded, column B (min 3) and row C → edge (C,B,3).
func TestCompute_Triangle(t *testing.T) {
	edges, total, err := mstp.Compute(buildTriangle(t))
	require.NoError(t, err)
	require.Len(t, edges, 2)

	assert.Equal(t, mstp.Edge[string]{From: "A", To: "C", Weight: 2}, edges[0])
	assert.Equal(t, mstp.Edge[string]{From: "C", To: "B", Weight: 3}, edges[1])
	assert.Equal(t, 5.0, total)
}

// TestCompute_FaithfulMasking_TriangleAnomaly reproduces the documented
// legacy defect: the first selection is (A,C,2); after masking, column C's
// sentinel entry wins the maximin again and the run emits an infinite-weight
// second edge instead of finishing the triangle.
func TestCompute_FaithfulMasking_TriangleAnomaly(t *testing.T) {
	edges, total, err := mstp.Compute(buildTriangle(t), mstp.WithFaithfulMasking())
	require.NoError(t, err, "faithful masking reports no error; the defect surfaces as data")
	require.Len(t, edges, 2)

	assert.Equal(t, mstp.Edge[string]{From: "A", To: "C", Weight: 2}, edges[0])

	// The masked column C is re-selected; every row entry is the sentinel,
	// so the lowest row index (A) wins and the weight is +Inf.
	assert.Equal(t, "A", edges[1].From)
	assert.Equal(t, "C", edges[1].To)
	assert.True(t, math.IsInf(edges[1].Weight, 1), "second edge must carry the sentinel weight")
	assert.True(t, math.IsInf(total, 1))
}

// TestCompute_TieBreakDeterminism verifies both tie-break levels on the
// all-ones square: lowest column index first, then lowest row index.
// The expected sequence was derived by hand from the selection rule.
func TestCompute_TieBreakDeterminism(t *testing.T) {
	want := []mstp.Edge[string]{
		{From: "B", To: "A", Weight: 1}, // all columns tie at 1 → col A; rows B,C tie → B
		{From: "A", To: "B", Weight: 1}, // cols B,C,D tie → col B; rows A,D tie → A
		{From: "D", To: "C", Weight: 1}, // cols C,D tie → col C; only row D remains
	}

	// The run must be reproducible verbatim across invocations.
	for run := 0; run < 3; run++ {
		edges, total, err := mstp.Compute(buildUnitSquare(t))
		require.NoError(t, err)
		assert.Equal(t, want, edges, "run %d diverged", run)
		assert.Equal(t, 3.0, total)
	}
}

// TestCompute_CompleteGraphProperties checks the structural guarantees on
// complete inputs: exactly N−1 selections, every column consumed at most
// once, and every input identifier present in the output by original name.
func TestCompute_CompleteGraphProperties(t *testing.T) {
	for _, n := range []int{2, 4, 6, 9} {
		g := buildComplete(t, n)
		edges, _, err := mstp.Compute(g)
		require.NoError(t, err, "K_%d must complete", n)
		require.Len(t, edges, n-1)

		colsSeen := make(map[string]int, n)
		touched := make(map[string]bool, n)
		for _, e := range edges {
			colsSeen[e.To]++
			touched[e.From] = true
			touched[e.To] = true
			assert.False(t, math.IsInf(e.Weight, 1), "no sentinel edge on K_%d", n)
		}
		for id, count := range colsSeen {
			assert.LessOrEqual(t, count, 1, "column %s consumed more than once", id)
		}
		for _, id := range g.Vertices() {
			assert.True(t, touched[id], "vertex %s missing from K_%d output", id, n)
		}
	}
}

// TestCompute_Degenerate verifies that zero- and one-vertex inputs yield an
// empty sequence without error and without attempting a selection.
func TestCompute_Degenerate(t *testing.T) {
	empty := core.NewGraph[string]()
	edges, total, err := mstp.Compute(empty)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	single := core.NewGraph[string]()
	single.AddVertex("X")
	edges, total, err = mstp.Compute(single)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestCompute_NilGraph verifies the nil-pointer sentinel.
func TestCompute_NilGraph(t *testing.T) {
	_, _, err := mstp.Compute[string](nil)
	assert.ErrorIs(t, err, mstp.ErrNilGraph)
}

// TestCompute_DisconnectedFailsFast verifies the hardened policy: an
// isolated vertex forces an all-sentinel column, and the run aborts with
// ErrDisconnected instead of emitting an infinite edge.
func TestCompute_DisconnectedFailsFast(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddVertex("C") // second component

	edges, total, err := mstp.Compute(g)
	assert.ErrorIs(t, err, mstp.ErrDisconnected)
	assert.Nil(t, edges)
	assert.Zero(t, total)
}

// TestCompute_DisconnectedFaithfulEmitsSentinel verifies the legacy
// contrast: the same disconnected input "succeeds" under faithful masking,
// carrying the disconnection as infinite-weight data.
func TestCompute_DisconnectedFaithfulEmitsSentinel(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddVertex("C")

	edges, total, err := mstp.Compute(g, mstp.WithFaithfulMasking())
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.True(t, math.IsInf(total, 1))
}

// TestCompute_ExhaustionOnConnectedChain documents a sharper consequence of
// mask-and-drop: even a CONNECTED chain V0—V1—V2—V3 exhausts genuine edges
// (masking V1's and V2's rows strands V0's column at the sentinel), so the
// hardened run refuses with ErrDisconnected rather than fabricating edges.
func TestCompute_ExhaustionOnConnectedChain(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("V0", "V1", 1))
	require.NoError(t, g.AddEdge("V1", "V2", 2))
	require.NoError(t, g.AddEdge("V2", "V3", 3))

	_, _, err := mstp.Compute(g)
	assert.ErrorIs(t, err, mstp.ErrDisconnected)

	// Faithful masking completes the same input with a sentinel edge.
	edges, total, errF := mstp.Compute(g, mstp.WithFaithfulMasking())
	require.NoError(t, errF)
	require.Len(t, edges, 3)
	assert.True(t, math.IsInf(total, 1))
}

// TestCompute_ContextCancellation verifies the between-iterations
// cancellation boundary.
func TestCompute_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already expired before the first iteration

	_, _, err := mstp.Compute(buildComplete(t, 5), mstp.WithContext(ctx))
	assert.ErrorIs(t, err, mstp.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestWithContext_NilPanics verifies the programmer-error contract of the
// option constructor.
func TestWithContext_NilPanics(t *testing.T) {
	assert.Panics(t, func() { mstp.WithContext(nil) })
}

// TestCompute_IntegerIdentifiers verifies the generic identifier round trip
// with non-string keys.
func TestCompute_IntegerIdentifiers(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(7, 8, 1))
	require.NoError(t, g.AddEdge(7, 9, 2))
	require.NoError(t, g.AddEdge(8, 9, 3))

	edges, total, err := mstp.Compute(g)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, mstp.Edge[int]{From: 7, To: 9, Weight: 2}, edges[0])
	assert.Equal(t, mstp.Edge[int]{From: 9, To: 8, Weight: 3}, edges[1])
	assert.Equal(t, 5.0, total)
}
