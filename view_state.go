package main

import "tav/internal/tablib"

// sortKey is one (column, direction) pair of the active multi-column
// ordering. Slice position is tie-break priority: index 0 is primary.
type sortKey struct {
	column string
	desc   bool
}

func (m *model) sortKeyIndex(column string) int {
	for i, k := range m.sortKeys {
		if k.column == column {
			return i
		}
	}
	return -1
}

func (m *model) tablibSortKeys() []tablib.SortKey {
	keys := make([]tablib.SortKey, len(m.sortKeys))
	for i, k := range m.sortKeys {
		keys[i] = tablib.SortKey{Column: k.column, Descending: k.desc}
	}
	return keys
}

// rebuildGrid resets the load window against the current derived table:
// columns are re-announced to the display surface, row labels start over
// at the new row order, and the initial batch is realized.
func (m *model) rebuildGrid() {
	cols := make([]gridColumn, m.derived.NumCols())
	for i, c := range m.derived.Cols {
		cols[i] = gridColumn{title: c.Name, typ: c.Type}
	}
	m.grid.SetColumns(cols)
	m.loadedRows = 0
	m.loadRows(m.cfg.InitialBatchSize)
}

// resetDerivedState brings the four coupled pieces (derived, sort keys
// stay as the caller left them, load window, selection mask) back to a
// consistent snapshot after derived has been replaced. The cursor lands
// on row 0 in actedColumn's current position.
func (m *model) resetDerivedState(actedColumn string) {
	m.selection = make([]bool, m.derived.NumRows())
	m.rebuildGrid()
	col := 0
	if actedColumn != "" {
		if ci, ok := m.derived.ColumnIndex(actedColumn); ok {
			col = ci
		}
	}
	m.grid.CursorTo(0, col)
}

// restoreOriginal throws away every derived change: sort order, dropped
// columns, edits, selection and the load window.
func (m *model) restoreOriginal() {
	m.derived = m.original.Clone()
	m.sortKeys = nil
	m.dirty = false
	m.resetDerivedState("")
	m.statusMsg = "restored original table"
}
