package teaui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Slot    key.Binding
	Pick    key.Binding
	Cancel  key.Binding
	Reset   key.Binding
	Debug   key.Binding
	Quit    key.Binding
	Dismiss key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Slot:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next note")),
		Pick:    key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "pick up/drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Debug:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "event log")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc", "space"), key.WithHelp("enter", "dismiss")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Cancel, k.Slot, k.Reset, k.Debug, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pick, k.Cancel, k.Slot},
		{k.Reset, k.Debug, k.Quit},
	}
}
