package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesNewFile(t *testing.T) {
	m := testModel(3)
	path := filepath.Join(t.TempDir(), "out.csv")

	m.saveNamed(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "id,name,score" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 4 {
		t.Errorf("lines = %d, want header + 3 rows", len(lines))
	}
	if m.save.stage != saveIdle {
		t.Errorf("stage = %d, want saveIdle", m.save.stage)
	}
	if m.save.lastName != path {
		t.Errorf("lastName = %q, want %q", m.save.lastName, path)
	}
	if m.dirty {
		t.Error("dirty = true after a successful save")
	}
}

func TestSaveReflectsDropsEditsAndOrder(t *testing.T) {
	m := testModel(3)
	m.applyEdit(0, 1, "zelda")
	m.dropColumn(2)
	m.applySort("id", true)
	path := filepath.Join(t.TempDir(), "out.csv")

	m.saveNamed(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "id,name\n3,name3\n2,name2\n1,zelda\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestSaveExistingFileAsksBeforeOverwriting(t *testing.T) {
	m := testModel(3)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	m.saveNamed(path)

	if m.save.stage != saveAwaitingConfirm {
		t.Fatalf("stage = %d, want saveAwaitingConfirm", m.save.stage)
	}
	if m.mode != modeConfirm {
		t.Errorf("mode = %d, want modeConfirm", m.mode)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Error("file overwritten before confirmation")
	}

	m.confirmOverwrite(true)

	data, _ = os.ReadFile(path)
	if string(data) == "old" {
		t.Error("file not overwritten after confirmation")
	}
	if m.save.stage != saveIdle {
		t.Errorf("stage = %d, want saveIdle", m.save.stage)
	}
}

func TestSaveDeclineReopensNamePrompt(t *testing.T) {
	m := testModel(3)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	m.saveNamed(path)
	m.confirmOverwrite(false)

	if m.save.stage != saveAwaitingName {
		t.Errorf("stage = %d, want saveAwaitingName", m.save.stage)
	}
	if m.mode != modePrompt || m.prompt.kind != promptSaveName {
		t.Error("decline must reopen the filename prompt")
	}
	if got := m.prompt.input.Value(); got != path {
		t.Errorf("prompt prefill = %q, want the rejected name %q", got, path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Error("declined overwrite must not write")
	}
}

func TestSaveEmptyNameAborts(t *testing.T) {
	m := testModel(3)

	m.saveNamed("   ")

	if m.save.stage != saveIdle {
		t.Errorf("stage = %d, want saveIdle", m.save.stage)
	}
	if m.errorMsg == "" {
		t.Error("empty filename must set an error")
	}
}

func TestSaveFailureKeepsNameMemory(t *testing.T) {
	m := testModel(3)
	m.save.lastName = "previous.csv"

	m.saveNamed(filepath.Join(t.TempDir(), "no-such-dir", "out.csv"))

	if m.errorMsg == "" {
		t.Error("failed write must set an error")
	}
	if m.save.stage != saveIdle {
		t.Errorf("stage = %d, want saveIdle after failure", m.save.stage)
	}
	if m.save.lastName != "previous.csv" {
		t.Errorf("lastName = %q, want memory kept on failure", m.save.lastName)
	}
}

func TestSaveTabDelimiterByExtension(t *testing.T) {
	m := testModel(2)
	path := filepath.Join(t.TempDir(), "out.tsv")

	m.saveNamed(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "id\tname\tscore") {
		t.Errorf("header = %q, want tab-delimited", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestDefaultSaveName(t *testing.T) {
	m := testModel(2)
	if got := m.defaultSaveName(); got != "test.csv" {
		t.Errorf("defaultSaveName = %q, want the source name", got)
	}

	m.sourceName = "stdin"
	if got := m.defaultSaveName(); got != "table.csv" {
		t.Errorf("defaultSaveName = %q, want %q for stdin", got, "table.csv")
	}
}

func TestCancelSaveKeepsLastName(t *testing.T) {
	m := testModel(2)
	m.save.lastName = "kept.csv"
	m.beginSave()

	m.cancelSave()

	if m.save.stage != saveIdle || m.save.pending != "" {
		t.Error("cancel must reset the workflow")
	}
	if m.save.lastName != "kept.csv" {
		t.Errorf("lastName = %q, want kept across cancel", m.save.lastName)
	}
}
