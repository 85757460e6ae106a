package main

import (
	"fmt"
	"strconv"

	"tav/internal/tablib"
)

// loadRows realizes the next count rows of derived into the grid,
// clamped at the row count. Loading past the end is a no-op. Labels are
// the 1-based position in derived at load time; a new derivation resets
// the window, so labels always match the current order.
func (m *model) loadRows(count int) {
	total := m.derived.NumRows()
	start := m.loadedRows
	if start >= total || count <= 0 {
		return
	}
	end := min(start+count, total)

	for ri := start; ri < end; ri++ {
		cells := make([]string, m.derived.NumCols())
		for ci, c := range m.derived.Cols {
			cells[ci] = tablib.FormatValue(m.derived.Rows[ri][ci], c.Type)
		}
		m.grid.AppendRow(cells, strconv.Itoa(ri+1))
	}
	m.loadedRows = end
	debugLog("loaded rows %d..%d of %d", start, end, total)
}

// ensureAllLoaded realizes the remainder in one synchronous call, for
// operations that need every row visible (search, jump to end).
func (m *model) ensureAllLoaded() {
	m.loadRows(m.derived.NumRows() - m.loadedRows)
}

// checkAndLoadMore refills the window when the viewport's bottom edge
// comes within loadProximity rows of the loaded boundary.
func (m *model) checkAndLoadMore() {
	if m.loadedRows >= m.derived.NumRows() {
		return
	}
	if m.grid.BottomEdge() >= m.loadedRows-loadProximity {
		m.loadRows(m.cfg.ScrollBatchSize)
		m.statusMsg = fmt.Sprintf("loaded %d/%d rows", m.loadedRows, m.derived.NumRows())
	}
}
