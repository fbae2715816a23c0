package util

import tea "github.com/charmbracelet/bubbletea/v2"

// Model is the interface every TUI component implements.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// CmdHandler returns a command that simply delivers msg.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
