package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down    key.Binding
	First, Last key.Binding
	Enter       key.Binding
	Sender      key.Binding
	Quit        key.Binding

	// preview scrolling
	PreviewUp, PreviewDn key.Binding
	PageUp, PageDown     key.Binding
}

func binding(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

var keys = keyMap{
	Up:        binding("up/C-k", "previous message", "up", "ctrl+k"),
	Down:      binding("dn/C-j", "next message", "down", "ctrl+j"),
	First:     binding("home", "first result", "home"),
	Last:      binding("end", "last result", "end"),
	Enter:     binding("enter", "copy message", "enter"),
	Sender:    binding("C-f", "only this sender", "ctrl+f"),
	Quit:      binding("esc", "quit", "esc", "ctrl+c"),
	PreviewUp: binding("C-u", "preview up", "ctrl+u"),
	PreviewDn: binding("C-d", "preview down", "ctrl+d"),
	PageUp:    binding("pgup", "preview page up", "pgup"),
	PageDown:  binding("pgdn", "preview page down", "pgdown"),
}
