package gallery

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Up      key.Binding
	Down    key.Binding
	TagPrev key.Binding
	TagNext key.Binding
	PickTag key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous tag"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next tag"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "apply tag"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		TagPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous card tag"),
		),
		TagNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next card tag"),
		),
		PickTag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "filter by card tag"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc", "0"),
			key.WithHelp("esc/0", "show all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Reset},
		{k.Up, k.Down, k.TagPrev, k.TagNext, k.PickTag},
		{k.Help, k.Quit},
	}
}
