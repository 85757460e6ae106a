package tablib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write persists the table to w with the given field delimiter. Nulls
// become empty fields; floats keep full precision.
func (t *Table) Write(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	header := make([]string, len(t.Cols))
	for i, c := range t.Cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Cols))
	for ri, row := range t.Rows {
		for ci := range t.Cols {
			record[ci] = writeText(row[ci], t.Cols[ci].Type)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", ri+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile persists the table to path, choosing the delimiter from the
// file extension.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.Write(f, DelimiterForPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
