package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the grid keybindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	SortAsc  key.Binding
	SortDesc key.Binding
	DropCol  key.Binding

	Edit      key.Binding
	Search    key.Binding
	Invert    key.Binding
	Freq      key.Binding
	Detail    key.Binding
	CopyCell  key.Binding
	Save      key.Binding
	Reset     key.Binding
	ToggleLbl key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last row"),
		),
		SortAsc: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "sort asc"),
		),
		SortDesc: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "sort desc"),
		),
		DropCol: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "hide column"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit cell"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search column"),
		),
		Invert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invert matches"),
		),
		Freq: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "value counts"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "row detail"),
		),
		CopyCell: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy cell"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore original"),
		),
		ToggleLbl: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "row labels"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.SortAsc, k.SortDesc, k.Edit, k.Search, k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.SortAsc, k.SortDesc, k.DropCol, k.Reset},
		{k.Edit, k.Search, k.Invert, k.Freq},
		{k.Detail, k.CopyCell, k.Save, k.ToggleLbl},
		{k.Help, k.Quit},
	}
}
