package main

import "fmt"

// applySortAtCursor sorts on the column under the cursor.
func (m *model) applySortAtCursor(desc bool) {
	col := m.grid.cursorCol
	if col < 0 || col >= m.derived.NumCols() {
		return
	}
	m.applySort(m.derived.Cols[col].Name, desc)
}

// applySort updates the multi-key sort state and re-derives the table.
// Pressing the same direction on a column already sorted removes it;
// the opposite direction flips it in place; a new column is appended as
// the lowest-priority key. The ordering itself is recomputed from the
// final key set alone, so transient toggles cannot change the outcome.
func (m *model) applySort(column string, desc bool) {
	if idx := m.sortKeyIndex(column); idx >= 0 {
		if m.sortKeys[idx].desc == desc {
			m.sortKeys = append(m.sortKeys[:idx], m.sortKeys[idx+1:]...)
		} else {
			m.sortKeys[idx].desc = desc
		}
	} else {
		m.sortKeys = append(m.sortKeys, sortKey{column: column, desc: desc})
	}

	// An empty key list restores load order: Sort falls back to the
	// per-row load ids, so drops and edits survive while the original
	// row order comes back.
	sorted, err := m.derived.Sort(m.tablibSortKeys())
	if err != nil {
		m.errorMsg = fmt.Sprintf("sort failed: %v", err)
		return
	}
	m.derived = sorted
	m.resetDerivedState(column)

	if len(m.sortKeys) == 0 {
		m.statusMsg = "sort cleared"
	} else {
		m.statusMsg = "sorted by " + describeSort(m.sortKeys)
	}
}

func describeSort(keys []sortKey) string {
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += k.column
		if k.desc {
			s += " desc"
		} else {
			s += " asc"
		}
	}
	return s
}
