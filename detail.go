package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tav/internal/tablib"
)

// showDetail opens a modal with every cell of the cursor row, one
// column per line.
func (m *model) showDetail() {
	row := m.grid.cursorRow
	if row < 0 || row >= m.loadedRows {
		return
	}
	m.detailRow = row
	m.mode = modeDetail
}

func (m *model) viewDetail() string {
	nameWidth := 0
	for _, c := range m.derived.Cols {
		if w := runewidth.StringWidth(c.Name); w > nameWidth {
			nameWidth = w
		}
	}
	nameWidth = min(nameWidth, maxColWidth)

	var b strings.Builder
	for ci, c := range m.derived.Cols {
		val := tablib.FormatValue(m.derived.Cell(m.detailRow, ci), c.Type)
		b.WriteString(m.styles.label.Render(padCell(c.Name, nameWidth, alignLeft)))
		b.WriteString("  ")
		b.WriteString(m.styles.cellStyle(c.Type, val == tablib.NullGlyph).Render(val))
		b.WriteString(m.styles.dim.Render("  (" + c.Type.String() + ")"))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.dim.Render("q/esc close"))

	title := "row " + m.grid.labels[m.detailRow]
	box := m.styles.modal.Render(m.styles.modalTitle.Render(title) + "\n\n" + b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
