package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shorter  key.Binding
	Longer   key.Binding
	Upper    key.Binding
	Lower    key.Binding
	Digits   key.Binding
	Symbols  key.Binding
	Generate key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shorter:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "shorter")),
		Longer:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "longer")),
		Upper:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "A-Z")),
		Lower:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "a-z")),
		Digits:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "0-9")),
		Symbols:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "!@#")),
		Generate: key.NewBinding(key.WithKeys("g", " ", "enter"), key.WithHelp("space", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Shorter, k.Longer, k.Upper, k.Lower, k.Digits, k.Symbols, k.Generate, k.Copy, k.Quit}
}
