package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Inf is the sentinel weight meaning "no edge" (and, after mask-and-drop,
// "consumed position"). Conceptually +∞.
var Inf = math.Inf(1)

// Dense is a row-major matrix of float64 weights backed by a flat slice.
// Every entry starts at the Inf sentinel; adapters write real weights on top.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense with every entry set to the Inf sentinel.
// Zero dimensions are allowed (the empty-graph image); negative dimensions
// return ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = Inf
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the weight at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns weight v at (row, col). The sentinel Inf is a legal value:
// it is how masking and "no edge" are expressed.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// FillRow overwrites every entry of the given row with v.
// Used by mask-and-drop to retire a consumed row.
// Complexity: O(c).
func (m *Dense) FillRow(row int, v float64) error {
	if row < 0 || row >= m.r {
		return fmt.Errorf("dense row %d: %w", row, ErrOutOfRange)
	}
	base := row * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = v
	}

	return nil
}

// FillCol overwrites every entry of the given column with v.
// Used by mask-and-drop to retire a consumed column.
// Complexity: O(r).
func (m *Dense) FillCol(col int, v float64) error {
	if col < 0 || col >= m.c {
		return fmt.Errorf("dense col %d: %w", col, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+col] = v
	}

	return nil
}

// ColumnMin scans the given column over all rows and returns the minimum
// weight together with the first row index achieving it (lowest-index
// tie-break). An all-sentinel column yields (Inf, 0).
// Complexity: O(r).
func (m *Dense) ColumnMin(col int) (float64, int, error) {
	if col < 0 || col >= m.c {
		return 0, 0, fmt.Errorf("dense col %d: %w", col, ErrOutOfRange)
	}
	best := Inf
	bestRow := 0
	for i := 0; i < m.r; i++ {
		// Strict < keeps the first occurrence on ties.
		if v := m.data[i*m.c+col]; v < best {
			best = v
			bestRow = i
		}
	}

	return best, bestRow, nil
}

// Symmetric reports whether m[i][j] == m[j][i] for all i, j (Inf entries
// compare equal). Construction-time adjacency must satisfy this; a masked
// matrix generally does not.
// Complexity: O(r*c).
func (m *Dense) Symmetric() bool {
	if m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for debugging; sentinel entries print as ∞.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if v := m.data[i*m.c+j]; math.IsInf(v, 1) {
				b.WriteString("∞")
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
