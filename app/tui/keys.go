package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	End  key.Binding
	Help key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		End: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "end session"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.End, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.End, k.Help}}
}
