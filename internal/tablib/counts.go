package tablib

import "sort"

// ValueCounts builds a two-column frequency table for one column: the
// distinct values (nulls grouped together) and how often each occurs,
// most frequent first, ties in first-seen order.
func (t *Table) ValueCounts(col int) *Table {
	if col < 0 || col >= len(t.Cols) {
		return New([]Column{{Name: "value", Type: Text}, {Name: "count", Type: Int}}, nil)
	}
	cols := []Column{
		{Name: t.Cols[col].Name, Type: t.Cols[col].Type},
		{Name: "count", Type: Int},
	}

	type entry struct {
		value any
		count int64
		seen  int
	}
	index := make(map[string]*entry)
	var entries []*entry
	d := t.Cols[col].Type
	for _, row := range t.Rows {
		key := FormatValue(row[col], d)
		e, ok := index[key]
		if !ok {
			e = &entry{value: row[col], seen: len(entries)}
			index[key] = e
			entries = append(entries, e)
		}
		e.count++
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].seen < entries[j].seen
	})

	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = []any{e.value, e.count}
	}
	return New(cols, rows)
}
