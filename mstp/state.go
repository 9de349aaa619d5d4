package mstp

import (
	"math"

	"github.com/katalvlaran/dmmstp/matrix"
)

// selected is one recorded selection in matrix coordinates: the chosen row,
// column, and the weight read at the moment of selection.
type selected struct {
	row, col int
	weight   float64
}

// runState owns every piece of mutable state for a single DM-MSTP run:
// the weight matrix, the column-minima snapshot, the consumed-row/column
// marks, and the accumulated path. It is created per run, passed by pointer
// through the loop, and discarded afterwards — no globals, no sharing.
type runState struct {
	mat *matrix.Dense // mutated in place by mask-and-drop
	n   int           // matrix dimension, fixed at build time

	minima     []float64 // per-column minimum snapshot, always length n
	markedRows []bool    // rows consumed by prior selections; grow-only
	markedCols []bool    // columns consumed by prior selections; grow-only

	path     []selected // selections in order; reaches n-1 on completion
	faithful bool       // legacy sentinel-overload masking
}

// newRunState wires a run around an already-built n×n weight matrix.
// Complexity: O(n).
func newRunState(mat *matrix.Dense, n int, faithful bool) *runState {
	return &runState{
		mat:        mat,
		n:          n,
		minima:     make([]float64, n),
		markedRows: make([]bool, n),
		markedCols: make([]bool, n),
		path:       make([]selected, 0, n-1),
		faithful:   faithful,
	}
}

// recomputeMinima rebuilds the full column-minima snapshot from scratch.
// Marked columns are forced to the sentinel; unmarked columns take the
// minimum over ALL rows (consumed rows are already sentinel-filled, so they
// cannot contribute a spurious minimum). The result length is always n, no
// matter how many lanes are marked. Calling it twice without an intervening
// mask yields identical values.
// Complexity: O(n²).
func (s *runState) recomputeMinima() {
	for j := 0; j < s.n; j++ {
		if s.markedCols[j] {
			s.minima[j] = matrix.Inf
			continue
		}
		v, _, _ := s.mat.ColumnMin(j)
		s.minima[j] = v
	}
}

// selectEdge applies the maximin rule to the current snapshot: the column
// with the LARGEST minimum (ties → lowest column index), then the row with
// the smallest weight inside that column (ties → lowest row index).
//
// Masking policy:
//   - default: marked columns are excluded from the candidate set, and a
//     sentinel-weight winner means the remaining components have no genuine
//     edges left → ErrDisconnected.
//   - faithful: marked columns stay in the candidate set; because their
//     snapshot entry is the sentinel (+∞), a marked column wins the maximin
//     immediately and the emitted edge carries the sentinel weight. That is
//     the documented legacy defect, reproduced verbatim.
//
// Complexity: O(n).
func (s *runState) selectEdge() (selected, error) {
	// 1. Column sweep: first index achieving the maximum wins ties.
	bestCol := -1
	bestVal := math.Inf(-1)
	for j := 0; j < s.n; j++ {
		if !s.faithful && s.markedCols[j] {
			continue
		}
		if s.minima[j] > bestVal {
			bestVal = s.minima[j]
			bestCol = j
		}
	}
	if bestCol < 0 {
		// Every column consumed before n-1 selections; cannot happen on a
		// well-formed run but guards against misuse.
		return selected{}, ErrDisconnected
	}

	// 2. Row sweep within the chosen column: ColumnMin keeps the first
	// occurrence on ties, matching the lowest-row-index rule.
	weight, row, err := s.mat.ColumnMin(bestCol)
	if err != nil {
		return selected{}, err
	}

	// 3. Hardened runs refuse to emit a "no edge" selection.
	if !s.faithful && math.IsInf(weight, 1) {
		return selected{}, ErrDisconnected
	}

	return selected{row: row, col: bestCol, weight: weight}, nil
}

// markAndDrop consumes the selected row and column: both are marked, then
// both lanes are overwritten with the sentinel. The two writes are
// independent, so the matrix may be asymmetric afterwards — harmless, since
// selection only ever reads whole columns and never assumes symmetry.
// Complexity: O(n).
func (s *runState) markAndDrop(sel selected) {
	s.markedRows[sel.row] = true
	s.markedCols[sel.col] = true
	_ = s.mat.FillRow(sel.row, matrix.Inf)
	_ = s.mat.FillCol(sel.col, matrix.Inf)
}
