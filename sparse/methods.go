// File: methods.go
// Role: Insert/Remove/DeleteRow/DeleteCol/Dup and the active-list
// traversal helpers, grounded on matrix.c's sm_insert/sm_remove_element/
// sm_delrow/sm_delcol/sm_dup.
package sparse

// Insert records a nonzero entry at (row, col), growing the matrix if
// either index is out of bounds. Inserting the same pair twice is a
// caller error the original doesn't guard against either; this port
// doesn't either.
func (m *Matrix) Insert(row, col int) *Element {
	if row >= len(m.rows) {
		m.growRows(row + 1)
	}
	if col >= len(m.cols) {
		m.growCols(col + 1)
	}

	r, c := m.rows[row], m.cols[col]
	e := &Element{RowNum: row, ColNum: col}

	if r.last == nil {
		r.first, r.last = e, e
	} else {
		e.rowPrev = r.last
		r.last.rowNext = e
		r.last = e
	}
	r.Length++

	if c.last == nil {
		c.first, c.last = e, e
	} else {
		e.colPrev = c.last
		c.last.colNext = e
		c.last = e
	}
	c.Length++

	return e
}

func (m *Matrix) growRows(n int) {
	for i := len(m.rows); i < n; i++ {
		m.rows = append(m.rows, m.addRow(i))
	}
}

func (m *Matrix) growCols(n int) {
	for j := len(m.cols); j < n; j++ {
		m.cols = append(m.cols, m.addCol(j))
	}
}

// Row returns row i (present whether or not it is currently active).
func (m *Matrix) Row(i int) *Row { return m.rows[i] }

// Col returns column j (present whether or not it is currently active).
func (m *Matrix) Col(j int) *Col { return m.cols[j] }

// Find returns the element at (row, col), or nil if absent.
func (m *Matrix) Find(row, col int) *Element {
	if row < 0 || row >= len(m.rows) || m.rows[row] == nil {
		return nil
	}
	for e := m.rows[row].first; e != nil; e = e.rowNext {
		if e.ColNum == col {
			return e
		}
	}

	return nil
}

// RemoveElement deletes a single element from both its row's and its
// column's list.
func (m *Matrix) RemoveElement(e *Element) {
	r, c := m.rows[e.RowNum], m.cols[e.ColNum]

	if e.rowPrev == nil {
		r.first = e.rowNext
	} else {
		e.rowPrev.rowNext = e.rowNext
	}
	if e.rowNext == nil {
		r.last = e.rowPrev
	} else {
		e.rowNext.rowPrev = e.rowPrev
	}
	r.Length--

	if e.colPrev == nil {
		c.first = e.colNext
	} else {
		e.colPrev.colNext = e.colNext
	}
	if e.colNext == nil {
		c.last = e.colPrev
	} else {
		e.colNext.colPrev = e.colPrev
	}
	c.Length--
}

// Remove deletes the element at (row, col), if present.
func (m *Matrix) Remove(row, col int) {
	if e := m.Find(row, col); e != nil {
		m.RemoveElement(e)
	}
}

// DeleteRow removes row i and every one of its elements from the matrix
// entirely, unlinking it from the active row list.
func (m *Matrix) DeleteRow(i int) {
	r := m.rows[i]
	for e := r.first; e != nil; {
		next := e.rowNext
		c := m.cols[e.ColNum]
		if e.colPrev == nil {
			c.first = e.colNext
		} else {
			e.colPrev.colNext = e.colNext
		}
		if e.colNext == nil {
			c.last = e.colPrev
		} else {
			e.colNext.colPrev = e.colPrev
		}
		c.Length--
		e = next
	}
	r.first, r.last, r.Length = nil, nil, 0
	m.unlinkRow(r)
}

// DeleteCol removes column j and every one of its elements from the
// matrix entirely, unlinking it from the active column list.
func (m *Matrix) DeleteCol(j int) {
	c := m.cols[j]
	for e := c.first; e != nil; {
		next := e.colNext
		r := m.rows[e.RowNum]
		if e.rowPrev == nil {
			r.first = e.rowNext
		} else {
			e.rowPrev.rowNext = e.rowNext
		}
		if e.rowNext == nil {
			r.last = e.rowPrev
		} else {
			e.rowNext.rowPrev = e.rowPrev
		}
		r.Length--
		e = next
	}
	c.first, c.last, c.Length = nil, nil, 0
	m.unlinkCol(c)
}

func (m *Matrix) unlinkRow(r *Row) {
	if r.prev == nil {
		m.firstRow = r.next
	} else {
		r.prev.next = r.next
	}
	if r.next == nil {
		m.lastRow = r.prev
	} else {
		r.next.prev = r.prev
	}
	r.next, r.prev = nil, nil
	m.NRows--
}

func (m *Matrix) unlinkCol(c *Col) {
	if c.prev == nil {
		m.firstCol = c.next
	} else {
		c.prev.next = c.next
	}
	if c.next == nil {
		m.lastCol = c.prev
	} else {
		c.next.prev = c.prev
	}
	c.next, c.prev = nil, nil
	m.NCols--
}

// ActiveRows returns the currently active rows in list order.
func (m *Matrix) ActiveRows() []*Row {
	out := make([]*Row, 0, m.NRows)
	for r := m.firstRow; r != nil; r = r.next {
		out = append(out, r)
	}

	return out
}

// ActiveCols returns the currently active columns in list order.
func (m *Matrix) ActiveCols() []*Col {
	out := make([]*Col, 0, m.NCols)
	for c := m.firstCol; c != nil; c = c.next {
		out = append(out, c)
	}

	return out
}

// RowElements returns r's elements in column order.
func (m *Matrix) RowElements(r *Row) []*Element {
	out := make([]*Element, 0, r.Length)
	for e := r.first; e != nil; e = e.rowNext {
		out = append(out, e)
	}

	return out
}

// ColElements returns c's elements in row order.
func (m *Matrix) ColElements(c *Col) []*Element {
	out := make([]*Element, 0, c.Length)
	for e := c.first; e != nil; e = e.colNext {
		out = append(out, e)
	}

	return out
}

// NumElements returns the total number of nonzero entries.
func (m *Matrix) NumElements() int {
	n := 0
	for r := m.firstRow; r != nil; r = r.next {
		n += r.Length
	}

	return n
}

// LongestRow returns the active row with the most elements, or nil if
// the matrix has no active rows.
func (m *Matrix) LongestRow() *Row {
	var best *Row
	for r := m.firstRow; r != nil; r = r.next {
		if best == nil || r.Length > best.Length {
			best = r
		}
	}

	return best
}

// LongestCol returns the active column with the most elements, or nil if
// the matrix has no active columns.
func (m *Matrix) LongestCol() *Col {
	var best *Col
	for c := m.firstCol; c != nil; c = c.next {
		if best == nil || c.Length > best.Length {
			best = c
		}
	}

	return best
}

// Dup returns a deep, independent copy of m (matrix.c's sm_dup) — used by
// mincov's branch-and-bound to explore a row-selection decision without
// disturbing the parent matrix.
func (m *Matrix) Dup() *Matrix {
	out := NewMatrix(len(m.rows), len(m.cols))
	for r := m.firstRow; r != nil; r = r.next {
		for e := r.first; e != nil; e = e.rowNext {
			out.Insert(e.RowNum, e.ColNum)
		}
	}
	// Rows/cols with no elements that were deleted in m must stay deleted
	// in the copy too.
	present := make(map[int]bool, m.NRows)
	for r := m.firstRow; r != nil; r = r.next {
		present[r.Num] = true
	}
	for i := range m.rows {
		if !present[i] {
			out.DeleteRow(i)
		}
	}
	present = make(map[int]bool, m.NCols)
	for c := m.firstCol; c != nil; c = c.next {
		present[c.Num] = true
	}
	for j := range m.cols {
		if !present[j] {
			out.DeleteCol(j)
		}
	}

	return out
}
