package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptEditCell
	promptSearch
	promptSaveName
)

// promptState is the single foreground prompt. Its result is consumed
// synchronously by the coordinator that opened it: a value on enter, a
// cancellation on esc. Grid input is suspended while it is active.
type promptState struct {
	kind  promptKind
	title string
	input textinput.Model
	row   int
	col   int
}

func (m *model) openPrompt(kind promptKind, title, initial string, row, col int) tea.Cmd {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Width = max(20, m.width-runewidth.StringWidth(title)-6)
	cmd := ti.Focus()

	m.prompt = promptState{kind: kind, title: title, input: ti, row: row, col: col}
	m.mode = modePrompt
	return cmd
}

func (m *model) closePrompt() {
	m.mode = modeGrid
	m.prompt = promptState{}
}

func (m *model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// cancellation is a full no-op
		kind := m.prompt.kind
		m.closePrompt()
		if kind == promptSaveName {
			m.cancelSave()
		}
		return m, nil

	case "enter":
		value := m.prompt.input.Value()
		kind, row, col := m.prompt.kind, m.prompt.row, m.prompt.col
		m.closePrompt()
		switch kind {
		case promptEditCell:
			m.applyEdit(row, col, value)
		case promptSearch:
			m.applySearch(col, value)
		case promptSaveName:
			m.saveNamed(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (p promptState) view(st *styleSet) string {
	return st.modalTitle.Render(p.title) + " " + p.input.View()
}

// confirmState is the yes/no prompt chained after the filename prompt
// when the target file already exists.
type confirmState struct {
	question string
}

func (m *model) openConfirm(question string) {
	m.confirm = confirmState{question: question}
	m.mode = modeConfirm
}

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = modeGrid
		return m, m.confirmOverwrite(true)
	case "n", "N":
		m.mode = modeGrid
		return m, m.confirmOverwrite(false)
	case "esc", "q":
		m.mode = modeGrid
		m.cancelSave()
	}
	return m, nil
}

func (c confirmState) view(st *styleSet) string {
	return st.modalTitle.Render(c.question) + " " + st.dim.Render("[y/n]")
}
