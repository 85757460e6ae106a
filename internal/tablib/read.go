package tablib

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ReadDelimited loads a delimited table from r. The first record is the
// header; column types are inferred from the data. Empty fields load as
// null and do not constrain inference.
func ReadDelimited(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read table: input is empty")
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("read table: duplicate column %q", name)
		}
		seen[name] = true
	}
	data := records[1:]

	cols := make([]Column, len(header))
	for ci, name := range header {
		cols[ci] = Column{Name: name, Type: inferColumnType(data, ci)}
	}

	rows := make([][]any, len(data))
	for ri, rec := range data {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("read table: row %d has %d fields, header has %d", ri+1, len(rec), len(header))
		}
		row := make([]any, len(header))
		for ci, field := range rec {
			if field == "" {
				continue
			}
			v, err := parseInferred(field, cols[ci].Type)
			if err != nil {
				return nil, fmt.Errorf("read table: row %d column %q: %w", ri+1, header[ci], err)
			}
			row[ci] = v
		}
		rows[ri] = row
	}
	return New(cols, rows), nil
}

// ReadCSV loads a comma-separated table.
func ReadCSV(r io.Reader) (*Table, error) {
	return ReadDelimited(r, ',')
}

// DelimiterForPath picks tab for .tsv/.tab files and comma otherwise.
func DelimiterForPath(path string) rune {
	p := strings.ToLower(path)
	if strings.HasSuffix(p, ".tsv") || strings.HasSuffix(p, ".tab") {
		return '\t'
	}
	return ','
}

// inferColumnType narrows a column to the most specific type every
// non-empty field satisfies, in the priority int > float > bool > date >
// datetime, else text.
func inferColumnType(data [][]string, col int) DType {
	isInt, isFloat, isBool, isDate, isDatetime := true, true, true, true, true
	nonEmpty := false
	for _, rec := range data {
		if col >= len(rec) || rec[col] == "" {
			continue
		}
		nonEmpty = true
		s := rec[col]
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			w := strings.ToLower(s)
			if w != "true" && w != "false" {
				isBool = false
			}
		}
		if isDate {
			if _, err := time.Parse(dateLayout, s); err != nil {
				isDate = false
			}
		}
		if isDatetime {
			if !parsesAsDatetime(s) {
				isDatetime = false
			}
		}
		if !isInt && !isFloat && !isBool && !isDate && !isDatetime {
			break
		}
	}
	if !nonEmpty {
		return Text
	}
	switch {
	case isInt:
		return Int
	case isFloat:
		return Float
	case isBool:
		return Bool
	case isDate:
		return Date
	case isDatetime:
		return Datetime
	default:
		return Text
	}
}

func parsesAsDatetime(s string) bool {
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// parseInferred converts a raw field to the column's inferred type. The
// bool path accepts only the literal words seen during inference, not
// the wider edit vocabulary.
func parseInferred(s string, d DType) (any, error) {
	if d == Bool {
		switch strings.ToLower(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", s)
	}
	return ParseValue(s, d)
}
