package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tav/internal/tablib"
)

// showFrequencies opens a modal with the value counts of the cursor
// column, most frequent first.
func (m *model) showFrequencies() {
	col := m.grid.cursorCol
	if col < 0 || col >= m.derived.NumCols() {
		return
	}
	m.freqTable = m.derived.ValueCounts(col)
	m.mode = modeFreq
}

func (m *model) viewFreq() string {
	ft := m.freqTable
	if ft == nil {
		return ""
	}
	valType := ft.Cols[0].Type

	valWidth := runewidth.StringWidth(ft.Cols[0].Name)
	cntWidth := len("count")
	maxLines := max(m.height-6, 1)
	shown := min(ft.NumRows(), maxLines)
	for i := 0; i < shown; i++ {
		if w := runewidth.StringWidth(tablib.FormatValue(ft.Cell(i, 0), valType)); w > valWidth {
			valWidth = w
		}
		if w := len(tablib.FormatValue(ft.Cell(i, 1), tablib.Int)); w > cntWidth {
			cntWidth = w
		}
	}
	valWidth = min(valWidth, maxColWidth)

	var b strings.Builder
	b.WriteString(m.styles.header.Render(
		padCell(ft.Cols[0].Name, valWidth, alignLeft) + "  " + padCell("count", cntWidth, alignRight)))
	b.WriteString("\n")
	for i := 0; i < shown; i++ {
		val := tablib.FormatValue(ft.Cell(i, 0), valType)
		cnt := tablib.FormatValue(ft.Cell(i, 1), tablib.Int)
		b.WriteString(m.styles.cellStyle(valType, val == tablib.NullGlyph).Render(padCell(val, valWidth, alignLeft)))
		b.WriteString("  ")
		b.WriteString(m.styles.typeStyles[tablib.Int].Render(padCell(cnt, cntWidth, alignRight)))
		b.WriteString("\n")
	}
	if shown < ft.NumRows() {
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("… %d more values", ft.NumRows()-shown)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.dim.Render("q/esc close"))

	box := m.styles.modal.Render(
		m.styles.modalTitle.Render("value counts: "+ft.Cols[0].Name) + "\n\n" + b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
