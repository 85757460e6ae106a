package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tav/internal/tablib"
)

// beginEdit opens the cell prompt prefilled with the cursor cell's full
// text. Only realized rows can be edited; a stale cursor is a no-op.
func (m *model) beginEdit() tea.Cmd {
	row, col := m.grid.cursorRow, m.grid.cursorCol
	if row < 0 || row >= m.loadedRows || col < 0 || col >= m.derived.NumCols() {
		return nil
	}
	c := m.derived.Cols[col]
	initial := tablib.EditText(m.derived.Cell(row, col), c.Type)
	title := fmt.Sprintf("edit %s (%s):", c.Name, c.Type)
	return m.openPrompt(promptEditCell, title, initial, row, col)
}

// applyEdit validates the text against the column type and replaces
// exactly one cell of derived. Rejection leaves everything untouched;
// success updates the grid cell in place and never disturbs the sort
// keys or the selection mask.
func (m *model) applyEdit(row, col int, text string) {
	if row < 0 || row >= m.derived.NumRows() || col < 0 || col >= m.derived.NumCols() {
		return
	}
	c := m.derived.Cols[col]

	old := tablib.EditText(m.derived.Cell(row, col), c.Type)
	if text == old {
		m.statusMsg = "no change"
		return
	}

	v, err := tablib.ParseValue(text, c.Type)
	if err != nil {
		m.errorMsg = "edit rejected: " + err.Error()
		return
	}
	if err := m.derived.SetCell(row, col, v); err != nil {
		m.errorMsg = "edit rejected: " + err.Error()
		return
	}

	m.grid.UpdateCell(row, col, tablib.FormatValue(v, c.Type))
	m.dirty = true
	m.statusMsg = fmt.Sprintf("updated %s in row %d", c.Name, row+1)
}
