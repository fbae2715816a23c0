package picker

import (
	"github.com/charmbracelet/bubbles/v2/key"
)

// KeyMap holds the two navigation bindings the picker handles itself. Any
// other key must be routed by the host.
type KeyMap struct {
	Up,
	Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
	}
}

// KeyBindings implements layout.KeyMapProvider
func (k KeyMap) KeyBindings() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
	}
}
