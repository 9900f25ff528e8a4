package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	next        key.Binding
	add         key.Binding
	remove      key.Binding
	removeBlock key.Binding
	help        key.Binding
	esc         key.Binding
	quit        key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.remove, k.removeBlock, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right, k.next},
		{k.add, k.remove, k.removeBlock},
		{k.help, k.esc, k.quit},
	}
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous slot"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next slot"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous day"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next day"),
	),
	next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle sessions in cell"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add session"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete session"),
	),
	removeBlock: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove this block"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
