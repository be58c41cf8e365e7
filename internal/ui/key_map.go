package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	left   key.Binding
	right  key.Binding
	enter  key.Binding
	pause  key.Binding
	next   key.Binding
	prev   key.Binding
	reload key.Binding
	help   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous slot")),
		right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slot")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play focused")),
		pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		next:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next track")),
		prev:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous track")),
		reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload library")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.left, k.right, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.enter},
		{k.pause, k.next, k.prev},
		{k.reload, k.help, k.quit},
	}
}
