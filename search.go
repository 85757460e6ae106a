package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) beginSearch() tea.Cmd {
	col := m.grid.cursorCol
	if col < 0 || col >= m.derived.NumCols() {
		return nil
	}
	title := fmt.Sprintf("search %s for:", m.derived.Cols[col].Name)
	return m.openPrompt(promptSearch, title, "", 0, col)
}

// applySearch marks every row whose column value contains pattern as a
// case-sensitive substring. The whole table is materialized first so
// the mask covers rows beyond the load boundary.
func (m *model) applySearch(col int, pattern string) {
	if col < 0 || col >= m.derived.NumCols() {
		return
	}
	if pattern == "" {
		m.errorMsg = "search term is empty"
		return
	}

	m.ensureAllLoaded()

	texts := m.derived.CastColumnToText(col)
	mask := make([]bool, len(texts))
	matches := 0
	for i, t := range texts {
		if strings.Contains(t, pattern) {
			mask[i] = true
			matches++
		}
	}
	m.selection = mask
	m.statusMsg = fmt.Sprintf("%d of %d rows match %q in %s",
		matches, len(texts), pattern, m.derived.Cols[col].Name)
}

// toggleSelection flips "rows matching" into "rows not matching"
// without re-running the search.
func (m *model) toggleSelection() {
	matches := 0
	for i := range m.selection {
		m.selection[i] = !m.selection[i]
		if m.selection[i] {
			matches++
		}
	}
	m.statusMsg = fmt.Sprintf("selection inverted: %d of %d rows", matches, len(m.selection))
}
