package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the game, declared with bubbles/key so
// the help footer stays in sync with the actual bindings.
type KeyMap struct {
	Impulse key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the condensed help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Impulse, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Impulse},
		{k.Quit},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Impulse: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
