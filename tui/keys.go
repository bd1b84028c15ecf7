// ABOUTME: Keyboard bindings for the pong TUI built on bubbles/key, rendered by bubbles/help.
// ABOUTME: Keys are a fallback for terminals without mouse reporting: move the pointer, serve, toggle log, quit.
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the AppModel responds to.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Serve key.Binding
	Log   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Serve, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Serve, k.Log},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "paddle down"),
		),
		Serve: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "serve / new match"),
		),
		Log: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "toggle log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
