package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type saveStage int

const (
	saveIdle saveStage = iota
	saveAwaitingName
	saveAwaitingConfirm
)

// persistState drives the save workflow:
// Idle -> AwaitingName -> (AwaitingConfirm)? -> write -> Idle.
// pending is the candidate filename awaiting overwrite confirmation;
// lastName is remembered across attempts to prefill the next prompt.
type persistState struct {
	stage    saveStage
	pending  string
	lastName string
}

func (m *model) beginSave() tea.Cmd {
	m.save.stage = saveAwaitingName
	initial := m.save.lastName
	if initial == "" {
		initial = m.defaultSaveName()
	}
	return m.openPrompt(promptSaveName, "save as:", initial, 0, 0)
}

func (m *model) defaultSaveName() string {
	if m.sourceName != "" && m.sourceName != "stdin" {
		return m.sourceName
	}
	return "table.csv"
}

// saveNamed resolves the filename prompt. An existing path chains the
// overwrite confirmation; otherwise the table is written immediately.
func (m *model) saveNamed(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		m.errorMsg = "save aborted: filename is empty"
		m.cancelSave()
		return
	}
	if _, err := os.Stat(name); err == nil {
		m.save.stage = saveAwaitingConfirm
		m.save.pending = name
		m.openConfirm(fmt.Sprintf("overwrite %s?", name))
		return
	}
	m.writeDerived(name)
}

// confirmOverwrite resolves the overwrite prompt. Declining returns to
// the filename prompt with the rejected name retained for editing.
func (m *model) confirmOverwrite(yes bool) tea.Cmd {
	if m.save.stage != saveAwaitingConfirm {
		return nil
	}
	name := m.save.pending
	m.save.pending = ""
	if !yes {
		m.save.stage = saveAwaitingName
		return m.openPrompt(promptSaveName, "save as:", name, 0, 0)
	}
	m.writeDerived(name)
	return nil
}

// cancelSave aborts the workflow without touching the filename memory.
func (m *model) cancelSave() {
	m.save.stage = saveIdle
	m.save.pending = ""
}

// writeDerived persists derived's current rows and columns (drops
// respected, current order kept), picking the delimiter from the file
// extension. A failure is reported and the workflow returns to Idle
// with the filename memory intact.
func (m *model) writeDerived(name string) {
	m.save.stage = saveIdle
	m.save.pending = ""
	if err := m.derived.WriteFile(name); err != nil {
		m.errorMsg = fmt.Sprintf("write failed: %v", err)
		return
	}
	m.save.lastName = name
	m.dirty = false
	m.statusMsg = fmt.Sprintf("wrote %d rows to %s", m.derived.NumRows(), name)
}
