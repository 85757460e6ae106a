package main

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"tav/internal/tablib"
)

const (
	minColWidth     = 4
	maxColWidth     = 40
	widthSampleRows = 100

	// header + separator + status bar + help line
	chromeHeight = 4
)

type gridColumn struct {
	title string
	typ   tablib.DType
}

// displayGrid is the display surface. It owns the rows realized so far
// (as formatted text), the cursor and the scroll window, and paints the
// visible region. Coordinators mutate it through its methods; rendering
// queries it, never the other way around.
type displayGrid struct {
	cols       []gridColumn
	rows       [][]string
	labels     []string
	showLabels bool

	cursorRow int
	cursorCol int
	scrollY   int
	firstCol  int

	width  int
	height int
}

func newDisplayGrid(showLabels bool) *displayGrid {
	return &displayGrid{showLabels: showLabels, width: 80, height: 24}
}

func (g *displayGrid) SetSize(w, h int) {
	g.width = w
	g.height = h
}

// SetColumns replaces the column set and clears all realized rows.
func (g *displayGrid) SetColumns(cols []gridColumn) {
	g.cols = cols
	g.rows = nil
	g.labels = nil
	g.scrollY = 0
	g.firstCol = 0
	if g.cursorCol >= len(cols) {
		g.cursorCol = max(0, len(cols)-1)
	}
}

// AppendRow realizes one more row at the bottom of the grid.
func (g *displayGrid) AppendRow(cells []string, label string) {
	g.rows = append(g.rows, cells)
	g.labels = append(g.labels, label)
}

// UpdateCell rewrites a single realized cell in place. Out-of-range
// coordinates are ignored.
func (g *displayGrid) UpdateCell(row, col int, text string) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.cols) {
		return
	}
	g.rows[row][col] = text
}

func (g *displayGrid) RowCount() int { return len(g.rows) }

// ViewportRows is how many data rows fit under the chrome.
func (g *displayGrid) ViewportRows() int {
	v := g.height - chromeHeight
	if v < 1 {
		v = 1
	}
	return v
}

// BottomEdge is the grid row index just past the viewport's bottom.
func (g *displayGrid) BottomEdge() int {
	return g.scrollY + g.ViewportRows()
}

func (g *displayGrid) MoveCursor(dr, dc int) {
	g.CursorTo(g.cursorRow+dr, g.cursorCol+dc)
}

func (g *displayGrid) CursorTo(row, col int) {
	g.cursorRow = clamp(row, 0, max(0, len(g.rows)-1))
	g.cursorCol = clamp(col, 0, max(0, len(g.cols)-1))
	g.ensureVisible()
}

// ScrollBy moves the viewport without moving the cursor.
func (g *displayGrid) ScrollBy(dy int) {
	maxScroll := max(0, len(g.rows)-g.ViewportRows())
	g.scrollY = clamp(g.scrollY+dy, 0, maxScroll)
}

func (g *displayGrid) ensureVisible() {
	vp := g.ViewportRows()
	if g.cursorRow < g.scrollY {
		g.scrollY = g.cursorRow
	}
	if g.cursorRow >= g.scrollY+vp {
		g.scrollY = g.cursorRow - vp + 1
	}
}

// Render paints the header, separator and the visible row window.
// headerMark decorates sorted columns; selection highlights whole rows;
// totalRows sizes the label gutter.
func (g *displayGrid) Render(st *styleSet, selection []bool, headerMark func(col int) string, totalRows int) string {
	if len(g.cols) == 0 {
		return st.dim.Render(" (no columns)")
	}

	titles := make([]string, len(g.cols))
	for i, c := range g.cols {
		titles[i] = c.title
		if mark := headerMark(i); mark != "" {
			titles[i] += mark
		}
	}
	widths := g.computeWidths(titles)

	gutter := 0
	if g.showLabels {
		gutter = len(strconv.Itoa(max(totalRows, 1))) + 1
	}
	visStart, visEnd := g.visibleColRange(widths, g.width-gutter)

	var b strings.Builder

	// header
	if g.showLabels {
		b.WriteString(strings.Repeat(" ", gutter))
	}
	for ci := visStart; ci < visEnd; ci++ {
		cell := padCell(titles[ci], widths[ci], alignFor(g.cols[ci].typ))
		b.WriteString(st.header.Render(" " + cell + " "))
		if ci < visEnd-1 {
			b.WriteString(st.separator.Render("│"))
		}
	}
	b.WriteString("\n")

	// separator
	if g.showLabels {
		b.WriteString(strings.Repeat(" ", gutter))
	}
	for ci := visStart; ci < visEnd; ci++ {
		b.WriteString(st.separator.Render(strings.Repeat("─", widths[ci]+2)))
		if ci < visEnd-1 {
			b.WriteString(st.separator.Render("┼"))
		}
	}
	b.WriteString("\n")

	// data window
	endRow := min(g.scrollY+g.ViewportRows(), len(g.rows))
	for ri := g.scrollY; ri < endRow; ri++ {
		if g.showLabels {
			b.WriteString(st.label.Render(runewidth.FillLeft(g.labels[ri], gutter-1)) + " ")
		}
		rowSelected := ri < len(selection) && selection[ri]
		for ci := visStart; ci < visEnd; ci++ {
			cell := " " + padCell(g.rows[ri][ci], widths[ci], alignFor(g.cols[ci].typ)) + " "
			switch {
			case ri == g.cursorRow && ci == g.cursorCol:
				b.WriteString(st.cursor.Render(cell))
			case rowSelected:
				b.WriteString(st.selected.Render(cell))
			default:
				b.WriteString(st.cellStyle(g.cols[ci].typ, g.rows[ri][ci] == tablib.NullGlyph).Render(cell))
			}
			if ci < visEnd-1 {
				b.WriteString(st.separator.Render("│"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// computeWidths sizes every column from its header and a bounded sample
// of realized rows.
func (g *displayGrid) computeWidths(titles []string) []int {
	widths := make([]int, len(g.cols))
	for i, t := range titles {
		widths[i] = max(runewidth.StringWidth(t), minColWidth)
	}
	sampleEnd := min(len(g.rows), widthSampleRows)
	for _, row := range g.rows[:sampleEnd] {
		for i := range g.cols {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}
	return widths
}

// visibleColRange picks the span of columns that fits the available
// width, keeping the cursor column in view.
func (g *displayGrid) visibleColRange(widths []int, avail int) (int, int) {
	if g.firstCol > g.cursorCol {
		g.firstCol = g.cursorCol
	}
	if g.firstCol >= len(widths) {
		g.firstCol = 0
	}
	for {
		used := 0
		end := g.firstCol
		for end < len(widths) {
			w := widths[end] + 3 // padding + separator
			if used+w > avail && end > g.firstCol {
				break
			}
			used += w
			end++
		}
		if g.cursorCol < end || g.firstCol >= len(widths)-1 {
			return g.firstCol, end
		}
		g.firstCol++
	}
}

func padCell(s string, width int, a alignment) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	switch a {
	case alignRight:
		return runewidth.FillLeft(s, width)
	case alignCenter:
		pad := width - runewidth.StringWidth(s)
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return runewidth.FillRight(s, width)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
