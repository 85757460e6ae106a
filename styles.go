package main

import (
	"github.com/charmbracelet/lipgloss"

	"tav/internal/tablib"
)

// cell alignment follows the column type: numbers right, text left,
// everything else centered.
type alignment int

const (
	alignLeft alignment = iota
	alignRight
	alignCenter
)

func alignFor(d tablib.DType) alignment {
	switch d {
	case tablib.Int, tablib.Float:
		return alignRight
	case tablib.Bool, tablib.Date, tablib.Datetime:
		return alignCenter
	default:
		return alignLeft
	}
}

type styleSet struct {
	typeStyles map[tablib.DType]lipgloss.Style
	nullCell   lipgloss.Style
	header     lipgloss.Style
	label      lipgloss.Style
	separator  lipgloss.Style
	cursor     lipgloss.Style
	selected   lipgloss.Style
	statusBar  lipgloss.Style
	statusErr  lipgloss.Style
	notice     lipgloss.Style
	modal      lipgloss.Style
	modalTitle lipgloss.Style
	dim        lipgloss.Style
}

func defaultTypeColors() map[tablib.DType]lipgloss.Color {
	return map[tablib.DType]lipgloss.Color{
		tablib.Int:      lipgloss.Color("6"), // cyan
		tablib.Float:    lipgloss.Color("5"), // magenta
		tablib.Text:     lipgloss.Color("2"), // green
		tablib.Bool:     lipgloss.Color("3"), // yellow
		tablib.Date:     lipgloss.Color("4"), // blue
		tablib.Datetime: lipgloss.Color("4"),
	}
}

func newStyleSet(cfg *Config) *styleSet {
	colors := defaultTypeColors()
	for d, override := range cfg.typeColorOverrides() {
		colors[d] = lipgloss.Color(override)
	}

	typeStyles := make(map[tablib.DType]lipgloss.Style, len(colors))
	for d, c := range colors {
		typeStyles[d] = lipgloss.NewStyle().Foreground(c)
	}

	return &styleSet{
		typeStyles: typeStyles,
		nullCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		cursor:     lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		selected:   lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
		statusBar:  lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15")),
		statusErr:  lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		modalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// cellStyle picks the style for a data cell by column type, with nulls
// dimmed.
func (s *styleSet) cellStyle(d tablib.DType, isNull bool) lipgloss.Style {
	if isNull {
		return s.nullCell
	}
	return s.typeStyles[d]
}
