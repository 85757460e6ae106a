package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"

	"tav/internal/tablib"
)

// copyCell puts the cursor cell's full-precision text on the system
// clipboard.
func (m *model) copyCell() {
	row, col := m.grid.cursorRow, m.grid.cursorCol
	if row < 0 || row >= m.loadedRows || col < 0 || col >= m.derived.NumCols() {
		return
	}
	text := tablib.EditText(m.derived.Cell(row, col), m.derived.Cols[col].Type)
	if err := clipboard.WriteAll(text); err != nil {
		m.errorMsg = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.statusMsg = "copied: " + runewidth.Truncate(text, 50, "…")
}

// toggleRowLabels flips the label gutter on or off.
func (m *model) toggleRowLabels() {
	m.grid.showLabels = !m.grid.showLabels
	if m.grid.showLabels {
		m.statusMsg = "row labels on"
	} else {
		m.statusMsg = "row labels off"
	}
}
