// Package layout defines the sizing and focus contracts shared by TUI
// components.
package layout

import tea "github.com/charmbracelet/bubbletea/v2"

type Sizeable interface {
	SetSize(width, height int) tea.Cmd
	GetSize() (int, int)
}

type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}
