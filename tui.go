package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"tav/internal/tablib"
)

type uiMode int

const (
	modeGrid uiMode = iota
	modePrompt
	modeConfirm
	modeDetail
	modeFreq
)

// model owns every piece of view state: the table handle (original +
// derived), the sort keys, the load window, the selection mask and the
// display grid. One coordinator mutates it per input event; rendering
// only reads.
type model struct {
	cfg    *Config
	keys   keyMap
	help   help.Model
	styles *styleSet

	sourceName string

	// table handle
	original *tablib.Table
	derived  *tablib.Table

	// view state
	grid       *displayGrid
	sortKeys   []sortKey
	loadedRows int
	selection  []bool
	dirty      bool

	// modal state: at most one prompt in the foreground
	mode    uiMode
	prompt  promptState
	confirm confirmState
	save    persistState

	freqTable *tablib.Table
	detailRow int

	width  int
	height int

	statusMsg string
	errorMsg  string
}

func newModel(cfg *Config, tbl *tablib.Table, sourceName string) *model {
	m := &model{
		cfg:        cfg,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     newStyleSet(cfg),
		sourceName: sourceName,
		original:   tbl,
		derived:    tbl.Clone(),
		grid:       newDisplayGrid(cfg.ShowRowLabels),
	}
	m.selection = make([]bool, m.derived.NumRows())
	m.rebuildGrid()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.grid.SetSize(msg.Width, msg.Height)
		m.checkAndLoadMore()
		return m, nil

	case tea.MouseMsg:
		if m.mode != modeGrid {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.grid.ScrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.grid.ScrollBy(3)
			m.checkAndLoadMore()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modePrompt:
			return m.updatePrompt(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeDetail, modeFreq:
			return m.updateModal(msg)
		default:
			return m.updateGrid(msg)
		}
	}
	return m, nil
}

func (m *model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// messages are transient: any keypress clears the previous one
	m.statusMsg = ""
	m.errorMsg = ""

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		m.grid.MoveCursor(-1, 0)
	case key.Matches(msg, k.Down):
		m.grid.MoveCursor(1, 0)
		m.checkAndLoadMore()
	case key.Matches(msg, k.Left):
		m.grid.MoveCursor(0, -1)
	case key.Matches(msg, k.Right):
		m.grid.MoveCursor(0, 1)
	case key.Matches(msg, k.PageUp):
		m.grid.MoveCursor(-m.grid.ViewportRows(), 0)
	case key.Matches(msg, k.PageDown):
		m.grid.MoveCursor(m.grid.ViewportRows(), 0)
		m.checkAndLoadMore()
	case key.Matches(msg, k.Top):
		m.grid.CursorTo(0, m.grid.cursorCol)
	case key.Matches(msg, k.Bottom):
		m.ensureAllLoaded()
		m.grid.CursorTo(m.grid.RowCount()-1, m.grid.cursorCol)

	case key.Matches(msg, k.SortAsc):
		m.applySortAtCursor(false)
	case key.Matches(msg, k.SortDesc):
		m.applySortAtCursor(true)
	case key.Matches(msg, k.DropCol):
		m.dropColumn(m.grid.cursorCol)

	case key.Matches(msg, k.Edit):
		return m, m.beginEdit()
	case key.Matches(msg, k.Search):
		return m, m.beginSearch()
	case key.Matches(msg, k.Invert):
		m.toggleSelection()
	case key.Matches(msg, k.Freq):
		m.showFrequencies()
	case key.Matches(msg, k.Detail):
		m.showDetail()
	case key.Matches(msg, k.CopyCell):
		m.copyCell()
	case key.Matches(msg, k.Save):
		return m, m.beginSave()
	case key.Matches(msg, k.Reset):
		m.restoreOriginal()
	case key.Matches(msg, k.ToggleLbl):
		m.toggleRowLabels()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.mode = modeGrid
		m.freqTable = nil
	}
	return m, nil
}

func (m *model) View() string {
	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeFreq:
		return m.viewFreq()
	}

	var b strings.Builder
	b.WriteString(m.grid.Render(m.styles, m.selection, m.headerMark, m.derived.NumRows()))
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	switch m.mode {
	case modePrompt:
		b.WriteString(m.prompt.view(m.styles))
	case modeConfirm:
		b.WriteString(m.confirm.view(m.styles))
	default:
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// headerMark decorates a sorted column with its direction and priority.
func (m *model) headerMark(col int) string {
	if col < 0 || col >= m.derived.NumCols() {
		return ""
	}
	name := m.derived.Cols[col].Name
	for i, k := range m.sortKeys {
		if k.column != name {
			continue
		}
		arrow := "↑"
		if k.desc {
			arrow = "↓"
		}
		if len(m.sortKeys) > 1 {
			return " " + arrow + strconv.Itoa(i+1)
		}
		return " " + arrow
	}
	return ""
}

func (m *model) renderStatusBar() string {
	if m.errorMsg != "" {
		return m.styles.statusErr.Width(max(m.width, 1)).Render(" " + m.errorMsg)
	}

	left := " " + m.sourceName
	if m.dirty {
		left += " *"
	}
	if m.statusMsg != "" {
		left += "  ·  " + m.statusMsg
	}
	right := fmt.Sprintf("%d/%d rows · %d,%d ",
		m.loadedRows, m.derived.NumRows(), m.grid.cursorRow+1, m.grid.cursorCol+1)

	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	return m.styles.statusBar.Render(left + strings.Repeat(" ", pad) + right)
}
