package main

import "fmt"

// dropColumn removes the column at the given visible index from the
// derived table and evicts it from the sort keys. Irreversible within
// the session short of a full restore. Out-of-range indexes are
// silently ignored.
func (m *model) dropColumn(idx int) {
	if idx < 0 || idx >= m.derived.NumCols() {
		return
	}
	name := m.derived.Cols[idx].Name

	dropped, err := m.derived.DropColumn(idx)
	if err != nil {
		return
	}
	m.derived = dropped
	m.dirty = true

	if ki := m.sortKeyIndex(name); ki >= 0 {
		m.sortKeys = append(m.sortKeys[:ki], m.sortKeys[ki+1:]...)
	}

	// Row order and count are unchanged, so the selection mask is still
	// valid; only the load window is rebuilt.
	m.rebuildGrid()
	m.grid.CursorTo(0, min(idx, m.derived.NumCols()-1))
	m.statusMsg = fmt.Sprintf("hid column %q", name)
}
