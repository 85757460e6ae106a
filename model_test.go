package main

import (
	"fmt"
	"strconv"

	"tav/internal/tablib"
)

// testModel builds a model over a synthetic table without touching the
// user's config file. Rows are (id, name, score) with score null every
// fifth row.
func testModel(numRows int) *model {
	cfg := defaultConfig()
	return newModel(cfg, testTable(numRows), "test.csv")
}

func testTable(numRows int) *tablib.Table {
	cols := []tablib.Column{
		{Name: "id", Type: tablib.Int},
		{Name: "name", Type: tablib.Text},
		{Name: "score", Type: tablib.Float},
	}
	rows := make([][]any, numRows)
	for i := 0; i < numRows; i++ {
		var score any
		if i%5 != 0 {
			score = float64(numRows-i) + 0.5
		}
		rows[i] = []any{int64(i + 1), "name" + strconv.Itoa(i+1), score}
	}
	return tablib.New(cols, rows)
}

// gridColumnNames reads the column titles off the display surface.
func gridColumnNames(m *model) []string {
	names := make([]string, len(m.grid.cols))
	for i, c := range m.grid.cols {
		names[i] = c.title
	}
	return names
}

func firstCellsOfColumn(m *model, col int, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n && i < len(m.grid.rows); i++ {
		out = append(out, m.grid.rows[i][col])
	}
	return out
}

func sortStateString(m *model) string {
	return fmt.Sprintf("%v", m.sortKeys)
}
