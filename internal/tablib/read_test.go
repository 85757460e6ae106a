package tablib

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVInference(t *testing.T) {
	in := strings.Join([]string{
		"id,name,score,active,joined",
		"1,alice,91.5,true,2023-01-15",
		"2,bob,,false,2023-06-02",
		"3,carol,77.25,true,",
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	wantTypes := []DType{Int, Text, Float, Bool, Date}
	for i, c := range tbl.Cols {
		assert.Equal(t, wantTypes[i], c.Type, c.Name)
	}

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, int64(2), tbl.Cell(1, 0))
	assert.Nil(t, tbl.Cell(1, 2), "empty field loads as null")
	assert.Nil(t, tbl.Cell(2, 4))
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), tbl.Cell(0, 4))
}

func TestReadInferencePriority(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  DType
	}{
		{"all ints", []string{"1", "2", "-3"}, Int},
		{"mixed numeric widens to float", []string{"1", "2.5"}, Float},
		{"bools", []string{"true", "FALSE"}, Bool},
		{"dates", []string{"2024-01-01", "2024-02-02"}, Date},
		{"datetimes", []string{"2024-01-01 10:00:00", "2024-01-01T11:00:00Z"}, Datetime},
		{"fallback text", []string{"1", "x"}, Text},
		{"all empty", []string{"", ""}, Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "col\n" + strings.Join(tt.cells, "\n")
			tbl, err := ReadCSV(strings.NewReader(in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.Cols[0].Type)
		})
	}
}

func TestReadBoolColumnOnlyLiteralWords(t *testing.T) {
	// "yes" is accepted when editing but must not infer as bool
	tbl, err := ReadCSV(strings.NewReader("flag\nyes\nno"))
	require.NoError(t, err)
	assert.Equal(t, Text, tbl.Cols[0].Type)
}

func TestReadDuplicateColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,a\n1,2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestReadEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}

func TestReadTabDelimited(t *testing.T) {
	tbl, err := ReadDelimited(strings.NewReader("a\tb\n1\tx"), '\t')
	require.NoError(t, err)
	assert.Equal(t, int64(1), tbl.Cell(0, 0))
	assert.Equal(t, "x", tbl.Cell(0, 1))
}

func TestDelimiterForPath(t *testing.T) {
	assert.Equal(t, ',', DelimiterForPath("data.csv"))
	assert.Equal(t, '\t', DelimiterForPath("data.tsv"))
	assert.Equal(t, '\t', DelimiterForPath("DATA.TAB"))
	assert.Equal(t, ',', DelimiterForPath(""))
}
