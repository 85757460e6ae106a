package tablib

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NullGlyph is how null cells render in the grid.
const NullGlyph = "-"

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	datetimeLayout,
}

var (
	trueWords  = []string{"true", "1", "yes"}
	falseWords = []string{"false", "0", "no"}
)

// FormatValue renders a cell for display: nulls become the placeholder
// glyph and floats are shown with 4 significant digits.
func FormatValue(v any, d DType) string {
	if v == nil {
		return NullGlyph
	}
	switch d {
	case Int:
		return strconv.FormatInt(v.(int64), 10)
	case Float:
		return strconv.FormatFloat(v.(float64), 'g', 4, 64)
	case Bool:
		return strconv.FormatBool(v.(bool))
	case Date:
		return v.(time.Time).Format(dateLayout)
	case Datetime:
		return v.(time.Time).Format(datetimeLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// EditText renders a cell for editing: full float precision, empty
// string for null.
func EditText(v any, d DType) string {
	if v == nil {
		return ""
	}
	if d == Float {
		return strconv.FormatFloat(v.(float64), 'g', -1, 64)
	}
	return FormatValue(v, d)
}

// writeText renders a cell for persistence: full precision, empty
// string for null.
func writeText(v any, d DType) string {
	if v == nil {
		return ""
	}
	if d == Float {
		return strconv.FormatFloat(v.(float64), 'g', -1, 64)
	}
	return FormatValue(v, d)
}

// ParseValue validates user text against a column type and returns the
// typed value. The error names what was expected, not just "invalid".
func ParseValue(s string, d DType) (any, error) {
	switch d {
	case Int:
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return v, nil
	case Bool:
		w := strings.ToLower(strings.TrimSpace(s))
		for _, t := range trueWords {
			if w == t {
				return true, nil
			}
		}
		for _, f := range falseWords {
			if w == f {
				return false, nil
			}
		}
		return nil, fmt.Errorf("%q is not a boolean (use true/1/yes or false/0/no)", s)
	case Date:
		v, err := time.Parse(dateLayout, strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%q is not a date (expected YYYY-MM-DD)", s)
		}
		return v, nil
	case Datetime:
		w := strings.TrimSpace(s)
		for _, layout := range datetimeLayouts {
			if v, err := time.Parse(layout, w); err == nil {
				return v, nil
			}
		}
		return nil, fmt.Errorf("%q is not a datetime (expected ISO 8601)", s)
	default:
		return s, nil
	}
}

// CompareValues orders two non-nil cells of the same column type.
// Returns -1, 0 or 1.
func CompareValues(a, b any, d DType) int {
	switch d {
	case Int:
		return cmpOrdered(a.(int64), b.(int64))
	case Float:
		return cmpOrdered(a.(float64), b.(float64))
	case Bool:
		av, bv := a.(bool), b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case Date, Datetime:
		at, bt := a.(time.Time), b.(time.Time)
		if at.Before(bt) {
			return -1
		}
		if at.After(bt) {
			return 1
		}
		return 0
	default:
		return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
