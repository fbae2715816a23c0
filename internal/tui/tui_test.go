package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, lines []string) *App {
	t.Helper()
	a, err := New("test", lines, nil, "")
	require.NoError(t, err)
	a.filter.Focus()
	a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	return a
}

func press(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func typeRune(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)})
}

func TestAcceptReturnsSelectedLine(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []string{"alpha", "beta", "gamma"})
	a.Update(press(tea.KeyDown))
	a.Update(press(tea.KeyEnter))

	choice, ok := a.Choice()
	require.True(t, ok)
	assert.Equal(t, "beta", choice)
	assert.False(t, a.Aborted())
}

func TestEscapeAborts(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []string{"alpha"})
	a.Update(press(tea.KeyEscape))

	assert.True(t, a.Aborted())
	_, ok := a.Choice()
	assert.False(t, ok)
}

func TestAcceptOnEmptyListAborts(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, nil)
	a.Update(press(tea.KeyEnter))
	assert.True(t, a.Aborted())
}

func TestFilterNarrowsAndPreservesSelection(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []string{"alpha", "beta", "gamma"})
	a.Update(press(tea.KeyDown))
	a.Update(press(tea.KeyDown))
	sel, ok := a.picker.Selected()
	require.True(t, ok)
	require.Equal(t, "gamma", sel)

	a.Update(typeRune('g'))
	sel, ok = a.picker.Selected()
	require.True(t, ok)
	assert.Equal(t, "gamma", sel)
	assert.Equal(t, []string{"gamma"}, a.picker.Elements())
}

func TestClearingFilterRestoresAllLines(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []string{"alpha", "beta"})
	a.Update(typeRune('b'))
	require.Equal(t, []string{"beta"}, a.picker.Elements())

	a.Update(press(tea.KeyBackspace))
	assert.Equal(t, []string{"alpha", "beta"}, a.picker.Elements())
}

func TestSourceReload(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []string{"alpha", "beta", "gamma"})
	a.Update(press(tea.KeyDown))

	// An external edit prepends a line; the selection must follow "beta".
	a.Update(sourceReloadedMsg{lines: []string{"zero", "alpha", "beta", "gamma"}})
	sel, ok := a.picker.Selected()
	require.True(t, ok)
	assert.Equal(t, "beta", sel)
	assert.Equal(t, 4, a.source.Len())
}
