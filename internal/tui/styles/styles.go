// Package styles defines the application theme. The picker exposes two named
// styles: a base style for the whole list and a derived selected style for
// the highlighted row; hosts resolve them here.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss/v2"
)

// Style identifiers, resolved by Theme.Resolve.
const (
	StyleList         = "list"
	StyleListSelected = "list.selected"
)

type Theme struct {
	Base     lipgloss.Style
	Selected lipgloss.Style
	Prompt   lipgloss.Style
	Match    lipgloss.Style
	Muted    lipgloss.Style
}

// Resolve maps a style identifier to a concrete style. Unknown identifiers
// fall back to the base style.
func (t *Theme) Resolve(id string) lipgloss.Style {
	switch id {
	case StyleListSelected:
		return t.Selected
	default:
		return t.Base
	}
}

var currentTheme = sync.OnceValue(func() *Theme {
	base := lipgloss.NewStyle()
	return &Theme{
		Base:     base,
		Selected: base.Foreground(lipgloss.Color("212")).Bold(true),
		Prompt:   base.Foreground(lipgloss.Color("99")),
		Match:    base.Foreground(lipgloss.Color("212")),
		Muted:    base.Foreground(lipgloss.Color("241")),
	}
})

// CurrentTheme returns the process-wide theme.
func CurrentTheme() *Theme {
	return currentTheme()
}
