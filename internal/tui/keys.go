package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. List navigation
// keys live in components.ListColumnKeyMap.
type KeyMap struct {
	Enter key.Binding
	Back  key.Binding
	Up    key.Binding
	Down  key.Binding

	Quit         key.Binding
	Help         key.Binding
	Escape       key.Binding
	Types        key.Binding
	Generations  key.Binding
	ClearFilters key.Binding
	Open         key.Binding
	Refresh      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "left", "backspace", "esc"),
			key.WithHelp("h/←", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Types: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		Generations: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "generation"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open by name"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
