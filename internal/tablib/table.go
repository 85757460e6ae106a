// Package tablib is the in-memory table engine behind tav: typed columns,
// delimited-text load/save, stable multi-key sorting and single-column
// frequency counts. It knows nothing about terminals.
package tablib

import (
	"fmt"
	"time"
)

// DType enumerates the column types a table can carry. Styling and
// parsing dispatch on this enum, never on runtime type names.
type DType int

const (
	Int DType = iota
	Float
	Text
	Bool
	Date
	Datetime
)

func (d DType) String() string {
	switch d {
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Date:
		return "date"
	case Datetime:
		return "datetime"
	}
	return "unknown"
}

// Column is a named, typed column. Names are unique within a table.
type Column struct {
	Name string
	Type DType
}

// Table is a typed in-memory table. Rows are aligned with Cols; a nil
// cell is a null. Cell values are int64, float64, string, bool or
// time.Time according to the column type.
//
// RowIDs carries each row's position in the originally loaded table and
// survives sorting, so a reordered table can always fall back to load
// order. Derivation methods (Sort, DropColumn, Clone) return new tables
// and never mutate the receiver's rows; SetCell copies the target row
// before writing, so a table derived via Clone never writes through to
// its source.
type Table struct {
	Cols   []Column
	Rows   [][]any
	RowIDs []int
}

// New builds a table from columns and rows, assigning load-order row ids.
func New(cols []Column, rows [][]any) *Table {
	ids := make([]int, len(rows))
	for i := range ids {
		ids[i] = i
	}
	return &Table{Cols: cols, Rows: rows, RowIDs: ids}
}

func (t *Table) NumRows() int { return len(t.Rows) }

func (t *Table) NumCols() int { return len(t.Cols) }

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Cols {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Cols) {
		return nil
	}
	return t.Rows[row][col]
}

// Clone returns a table sharing the receiver's row slices. Safe because
// SetCell copies a row before mutating it.
func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.Cols))
	copy(cols, t.Cols)
	rows := make([][]any, len(t.Rows))
	copy(rows, t.Rows)
	ids := make([]int, len(t.RowIDs))
	copy(ids, t.RowIDs)
	return &Table{Cols: cols, Rows: rows, RowIDs: ids}
}

// SetCell replaces a single value. The row is copied before writing so
// tables sharing rows with this one are unaffected.
func (t *Table) SetCell(row, col int, v any) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	if col < 0 || col >= len(t.Cols) {
		return fmt.Errorf("column %d out of range (%d columns)", col, len(t.Cols))
	}
	if v != nil {
		if err := checkValueType(v, t.Cols[col].Type); err != nil {
			return fmt.Errorf("column %q: %w", t.Cols[col].Name, err)
		}
	}
	fresh := make([]any, len(t.Rows[row]))
	copy(fresh, t.Rows[row])
	fresh[col] = v
	t.Rows[row] = fresh
	return nil
}

// DropColumn returns a new table without the column at idx. Rows are
// rebuilt, so the result owns its cells outright.
func (t *Table) DropColumn(idx int) (*Table, error) {
	if idx < 0 || idx >= len(t.Cols) {
		return nil, fmt.Errorf("column %d out of range (%d columns)", idx, len(t.Cols))
	}
	cols := make([]Column, 0, len(t.Cols)-1)
	cols = append(cols, t.Cols[:idx]...)
	cols = append(cols, t.Cols[idx+1:]...)
	rows := make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		nr := make([]any, 0, len(r)-1)
		nr = append(nr, r[:idx]...)
		nr = append(nr, r[idx+1:]...)
		rows[i] = nr
	}
	ids := make([]int, len(t.RowIDs))
	copy(ids, t.RowIDs)
	return &Table{Cols: cols, Rows: rows, RowIDs: ids}, nil
}

// CastColumnToText renders every cell of a column as display text,
// independent of how many rows a caller has realized elsewhere.
func (t *Table) CastColumnToText(col int) []string {
	out := make([]string, len(t.Rows))
	if col < 0 || col >= len(t.Cols) {
		return out
	}
	d := t.Cols[col].Type
	for i, r := range t.Rows {
		out[i] = FormatValue(r[col], d)
	}
	return out
}

func checkValueType(v any, d DType) error {
	ok := false
	switch d {
	case Int:
		_, ok = v.(int64)
	case Float:
		_, ok = v.(float64)
	case Text:
		_, ok = v.(string)
	case Bool:
		_, ok = v.(bool)
	case Date, Datetime:
		_, ok = v.(time.Time)
	}
	if !ok {
		return fmt.Errorf("value %v does not match column type %s", v, d)
	}
	return nil
}
