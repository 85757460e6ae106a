package tablib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() *Table {
	cols := []Column{
		{Name: "city", Type: Text},
		{Name: "pop", Type: Int},
	}
	rows := [][]any{
		{"oslo", int64(700)},
		{"bergen", nil},
		{"oslo", int64(100)},
		{"trondheim", int64(200)},
		{"oslo", nil},
	}
	return New(cols, rows)
}

func colValues(t *Table, col int) []any {
	out := make([]any, t.NumRows())
	for i := range out {
		out[i] = t.Cell(i, col)
	}
	return out
}

func TestSortAscending(t *testing.T) {
	tbl := sortFixture()
	got, err := tbl.Sort([]SortKey{{Column: "pop"}})
	require.NoError(t, err)

	assert.Equal(t, []any{int64(100), int64(200), int64(700), nil, nil}, colValues(got, 1))
}

func TestSortNullsLastBothDirections(t *testing.T) {
	tbl := sortFixture()

	asc, err := tbl.Sort([]SortKey{{Column: "pop"}})
	require.NoError(t, err)
	assert.Nil(t, asc.Cell(3, 1))
	assert.Nil(t, asc.Cell(4, 1))

	desc, err := tbl.Sort([]SortKey{{Column: "pop", Descending: true}})
	require.NoError(t, err)
	assert.Equal(t, int64(700), desc.Cell(0, 1))
	assert.Nil(t, desc.Cell(3, 1))
	assert.Nil(t, desc.Cell(4, 1))
}

func TestSortMultiKey(t *testing.T) {
	tbl := sortFixture()
	got, err := tbl.Sort([]SortKey{
		{Column: "city"},
		{Column: "pop", Descending: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"bergen", "oslo", "oslo", "oslo", "trondheim"}, colValues(got, 0))
	// within oslo: 700, 100, then the null
	assert.Equal(t, []any{nil, int64(700), int64(100), nil, int64(200)}, colValues(got, 1))
}

func TestSortIsHistoryIndependent(t *testing.T) {
	keys := []SortKey{{Column: "city"}}

	direct, err := sortFixture().Sort(keys)
	require.NoError(t, err)

	shuffled, err := sortFixture().Sort([]SortKey{{Column: "pop", Descending: true}})
	require.NoError(t, err)
	viaDetour, err := shuffled.Sort(keys)
	require.NoError(t, err)

	assert.Equal(t, direct.Rows, viaDetour.Rows)
	assert.Equal(t, direct.RowIDs, viaDetour.RowIDs)
}

func TestSortEmptyKeysRestoresLoadOrder(t *testing.T) {
	tbl := sortFixture()
	sorted, err := tbl.Sort([]SortKey{{Column: "city"}})
	require.NoError(t, err)
	require.NotEqual(t, tbl.RowIDs, sorted.RowIDs)

	back, err := sorted.Sort(nil)
	require.NoError(t, err)
	assert.Equal(t, tbl.RowIDs, back.RowIDs)
	assert.Equal(t, tbl.Rows, back.Rows)
}

func TestSortTiesFallBackToLoadOrder(t *testing.T) {
	tbl := sortFixture()
	got, err := tbl.Sort([]SortKey{{Column: "city"}})
	require.NoError(t, err)

	// the three oslo rows keep relative load order 0, 2, 4
	assert.Equal(t, []int{1, 0, 2, 4, 3}, got.RowIDs)
}

func TestSortUnknownColumn(t *testing.T) {
	_, err := sortFixture().Sort([]SortKey{{Column: "nope"}})
	assert.Error(t, err)
}

func TestSortDoesNotMutateReceiver(t *testing.T) {
	tbl := sortFixture()
	before := colValues(tbl, 0)

	_, err := tbl.Sort([]SortKey{{Column: "city", Descending: true}})
	require.NoError(t, err)

	assert.Equal(t, before, colValues(tbl, 0))
}
