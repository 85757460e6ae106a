package main

import "testing"

func TestInitialBatchLoad(t *testing.T) {
	m := testModel(250)

	if m.loadedRows != defaultInitialBatch {
		t.Errorf("loadedRows = %d, want %d", m.loadedRows, defaultInitialBatch)
	}
	if m.grid.RowCount() != defaultInitialBatch {
		t.Errorf("grid rows = %d, want %d", m.grid.RowCount(), defaultInitialBatch)
	}
}

func TestInitialBatchClampedToTable(t *testing.T) {
	m := testModel(30)

	if m.loadedRows != 30 {
		t.Errorf("loadedRows = %d, want 30", m.loadedRows)
	}
}

func TestLoadRowsPastEndIsNoOp(t *testing.T) {
	m := testModel(30)

	m.loadRows(50)
	m.loadRows(50)

	if m.loadedRows != 30 {
		t.Errorf("loadedRows = %d, want 30", m.loadedRows)
	}
	if m.grid.RowCount() != 30 {
		t.Errorf("grid rows = %d, want 30 (no duplicate rows)", m.grid.RowCount())
	}
}

func TestCheckAndLoadMoreNearBoundary(t *testing.T) {
	m := testModel(250)
	m.grid.SetSize(80, 24)

	// viewport bottom far from the boundary: no load
	m.grid.CursorTo(0, 0)
	m.checkAndLoadMore()
	if m.loadedRows != defaultInitialBatch {
		t.Fatalf("loadedRows = %d, want %d (no load far from boundary)", m.loadedRows, defaultInitialBatch)
	}

	// move the cursor into the proximity zone
	m.grid.CursorTo(defaultInitialBatch-1, 0)
	m.checkAndLoadMore()
	want := defaultInitialBatch + defaultScrollBatch
	if m.loadedRows != want {
		t.Errorf("loadedRows = %d, want %d", m.loadedRows, want)
	}
}

func TestEnsureAllLoaded(t *testing.T) {
	m := testModel(250)

	m.ensureAllLoaded()

	if m.loadedRows != 250 {
		t.Errorf("loadedRows = %d, want 250", m.loadedRows)
	}
}

func TestRowLabelsAreOneBased(t *testing.T) {
	m := testModel(10)

	if m.grid.labels[0] != "1" {
		t.Errorf("first label = %q, want %q", m.grid.labels[0], "1")
	}
	if m.grid.labels[9] != "10" {
		t.Errorf("last label = %q, want %q", m.grid.labels[9], "10")
	}
}

func TestCellsFormattedForDisplay(t *testing.T) {
	m := testModel(10)

	// row 0 has a null score
	if got := m.grid.rows[0][2]; got != "-" {
		t.Errorf("null cell = %q, want %q", got, "-")
	}
	if got := m.grid.rows[1][0]; got != "2" {
		t.Errorf("int cell = %q, want %q", got, "2")
	}
}
