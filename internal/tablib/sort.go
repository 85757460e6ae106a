package tablib

import (
	"fmt"
	"sort"
)

// SortKey is one (column, direction) pair of a multi-key ordering.
type SortKey struct {
	Column     string
	Descending bool
}

// Sort returns a new table ordered by the given keys in priority order.
// Nulls sort last regardless of direction. Ties after all keys fall back
// to load order (RowIDs), which makes the result independent of the
// receiver's current ordering; an empty key list therefore restores load
// order. Row slices are shared with the receiver.
func (t *Table) Sort(keys []SortKey) (*Table, error) {
	type keyIdx struct {
		col  int
		typ  DType
		desc bool
	}
	resolved := make([]keyIdx, 0, len(keys))
	for _, k := range keys {
		ci, ok := t.ColumnIndex(k.Column)
		if !ok {
			return nil, fmt.Errorf("sort: no column %q", k.Column)
		}
		resolved = append(resolved, keyIdx{col: ci, typ: t.Cols[ci].Type, desc: k.Descending})
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ri, rj := t.Rows[order[i]], t.Rows[order[j]]
		for _, k := range resolved {
			a, b := ri[k.col], rj[k.col]
			if a == nil || b == nil {
				if a == nil && b == nil {
					continue
				}
				// nulls last, both directions
				return b == nil
			}
			c := CompareValues(a, b, k.typ)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return t.RowIDs[order[i]] < t.RowIDs[order[j]]
	})

	rows := make([][]any, len(order))
	ids := make([]int, len(order))
	for i, o := range order {
		rows[i] = t.Rows[o]
		ids[i] = t.RowIDs[o]
	}
	cols := make([]Column, len(t.Cols))
	copy(cols, t.Cols)
	return &Table{Cols: cols, Rows: rows, RowIDs: ids}, nil
}
