package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title   lipgloss.Style
	slot    lipgloss.Style
	focus   lipgloss.Style
	playing lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
}

func NewPalette(accent, ok, e, muted string) *Palette {
	slot := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(muted)).
		Padding(0, 1)

	return &Palette{
		title:   NewBold(accent).MarginBottom(1),
		slot:    slot,
		focus:   slot.BorderForeground(lipgloss.Color(accent)).Bold(true),
		playing: NewBold(ok),
		err:     NewBold(e),
		help:    NewEm(muted),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
