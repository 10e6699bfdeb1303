package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the editor shortcuts. It implements help.KeyMap.
type keyMap struct {
	Pan      key.Binding
	Cancel   key.Binding
	ViewInit key.Binding
	ViewFull key.Binding
	Readonly key.Binding
	Copy     key.Binding
	Write    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var defaultKeyMap = keyMap{
	Pan: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pan"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	ViewInit: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset view"),
	),
	ViewFull: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fit"),
	),
	Readonly: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "read-only"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy keys"),
	),
	Write: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "write"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.ViewFull, k.Copy, k.Write, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pan, k.Cancel, k.ViewInit, k.ViewFull},
		{k.Readonly, k.Copy, k.Write, k.Help, k.Quit},
	}
}
