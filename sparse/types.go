// File: types.go
// Role: Element/Row/Col/Matrix — the doubly-linked sparse matrix value
// types, grounded on sm_element/sm_row/sm_col/sm_matrix of sparse_int.h.
package sparse

// Element is a single nonzero entry in the matrix, linked into both its
// row's list and its column's list.
type Element struct {
	RowNum, ColNum int

	rowNext, rowPrev *Element
	colNext, colPrev *Element
}

// Row is one row's ordered list of elements, plus its place in the
// matrix's active row list.
type Row struct {
	Num    int
	Length int

	first, last *Element
	next, prev  *Row
}

// Col is one column's ordered list of elements, plus its place in the
// matrix's active column list.
type Col struct {
	Num    int
	Length int

	first, last *Element
	next, prev  *Col
}

// Matrix is a sparse 0/1 matrix: every present (row, col) pair is a
// covering relation (spec.md §4.11's cube-vs-cube-to-avoid-intersecting
// incidence, or §4.4's row/column blocking matrices for expand).
//
// Rows and columns are both indexed directly (by number, for O(1) lookup)
// and kept in an active doubly-linked list (for ordered traversal and O(1)
// removal) — mincov.c's central trick for running its reduction rules
// without rebuilding the matrix at each step.
type Matrix struct {
	rows []*Row
	cols []*Col

	firstRow, lastRow *Row
	firstCol, lastCol *Col

	NRows, NCols int
}

// NewMatrix returns an empty matrix with nrows rows and ncols columns,
// all currently empty (no elements).
func NewMatrix(nrows, ncols int) *Matrix {
	m := &Matrix{
		rows: make([]*Row, nrows),
		cols: make([]*Col, ncols),
	}
	for i := 0; i < nrows; i++ {
		m.rows[i] = m.addRow(i)
	}
	for j := 0; j < ncols; j++ {
		m.cols[j] = m.addCol(j)
	}

	return m
}

func (m *Matrix) addRow(i int) *Row {
	r := &Row{Num: i}
	if m.lastRow == nil {
		m.firstRow, m.lastRow = r, r
	} else {
		r.prev = m.lastRow
		m.lastRow.next = r
		m.lastRow = r
	}
	m.NRows++

	return r
}

func (m *Matrix) addCol(j int) *Col {
	c := &Col{Num: j}
	if m.lastCol == nil {
		m.firstCol, m.lastCol = c, c
	} else {
		c.prev = m.lastCol
		m.lastCol.next = c
		m.lastCol = c
	}
	m.NCols++

	return c
}
