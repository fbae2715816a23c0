// Package picker is a Bubble Tea component over a selectable ordered list.
// It draws one row per element, keeps the selected row visible inside its
// viewport, and wires the two navigation key bindings. All selection
// bookkeeping lives in the list package; this component only renders and
// scrolls.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/tuikit/lineup/internal/csync"
	"github.com/tuikit/lineup/internal/list"
	"github.com/tuikit/lineup/internal/tui/components/core/layout"
	"github.com/tuikit/lineup/internal/tui/styles"
	"github.com/tuikit/lineup/internal/tui/util"
)

// RenderFunc draws one element as a single row. The selected flag is true
// exactly for the element at the selected index; the component applies the
// selected style on top of whatever the function returns.
type RenderFunc[E comparable] func(selected bool, value E) string

type Picker[E comparable] interface {
	util.Model
	layout.Sizeable
	layout.Focusable

	MoveBy(delta int) tea.Cmd
	MoveTo(pos int) tea.Cmd
	SelectAbove() tea.Cmd
	SelectBelow() tea.Cmd
	Insert(pos int, value E) tea.Cmd
	Remove(pos int) tea.Cmd
	SetElements(elements []E) tea.Cmd

	Elements() []E
	Selected() (E, bool)
	SelectedIndex() int
	Name() string
}

type confOptions struct {
	width, height int
	keyMap        KeyMap
	focused       bool
	base          lipgloss.Style
	selected      lipgloss.Style
}

type model[E comparable] struct {
	*confOptions

	state      list.State[E]
	renderItem RenderFunc[E]

	// offset is the first visible row.
	offset int

	// rowCache holds rendered unselected rows; the selected row is always
	// rendered fresh because its style differs.
	rowCache *csync.Map[E, string]
}

type Option func(*confOptions)

// WithSize sets the size of the picker viewport.
func WithSize(width, height int) Option {
	return func(o *confOptions) {
		o.width = width
		o.height = height
	}
}

func WithKeyMap(keyMap KeyMap) Option {
	return func(o *confOptions) {
		o.keyMap = keyMap
	}
}

func WithFocus(focus bool) Option {
	return func(o *confOptions) {
		o.focused = focus
	}
}

// WithStyles overrides the base and selected row styles.
func WithStyles(base, selected lipgloss.Style) Option {
	return func(o *confOptions) {
		o.base = base
		o.selected = selected
	}
}

// New creates a picker named name over the given elements. The name keys the
// scrollable region and is not interpreted further.
func New[E comparable](name string, elements []E, render RenderFunc[E], opts ...Option) Picker[E] {
	t := styles.CurrentTheme()
	m := &model[E]{
		confOptions: &confOptions{
			keyMap:   DefaultKeyMap(),
			focused:  true,
			base:     t.Resolve(styles.StyleList),
			selected: t.Resolve(styles.StyleListSelected),
		},
		state:      list.New(name, elements),
		renderItem: render,
		rowCache:   csync.NewMap[E, string](),
	}
	for _, opt := range opts {
		opt(m.confOptions)
	}
	return m
}

// Init implements Picker.
func (m *model[E]) Init() tea.Cmd {
	m.ensureVisible()
	return nil
}

// Update implements Picker. Only the two navigation bindings are handled
// here; every other key is the embedding application's business.
func (m *model[E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok && m.focused {
		switch {
		case key.Matches(msg, m.keyMap.Up):
			return m, m.SelectAbove()
		case key.Matches(msg, m.keyMap.Down):
			return m, m.SelectBelow()
		}
	}
	return m, nil
}

// View implements Picker.
func (m *model[E]) View() string {
	if m.width <= 0 || m.height <= 0 || m.state.Len() == 0 {
		return ""
	}
	start := m.offset
	end := min(start+m.height, m.state.Len())

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(m.viewRow(i))
	}
	return b.String()
}

func (m *model[E]) viewRow(i int) string {
	el := m.state.Elements[i]
	var row string
	if i == m.state.Selected {
		row = m.selected.Render(m.renderItem(true, el))
	} else if cached, ok := m.rowCache.Get(el); ok {
		row = cached
	} else {
		row = m.base.Render(m.renderItem(false, el))
		m.rowCache.Set(el, row)
	}
	return ansi.Truncate(row, m.width, "…")
}

// ensureVisible scrolls the viewport so the selected row stays on screen.
func (m *model[E]) ensureVisible() {
	if m.state.Selected == list.NoSelection || m.height <= 0 {
		m.offset = 0
		return
	}
	if m.state.Selected < m.offset {
		m.offset = m.state.Selected
	}
	if m.state.Selected >= m.offset+m.height {
		m.offset = m.state.Selected - m.height + 1
	}
	maxOffset := max(0, m.state.Len()-m.height)
	m.offset = min(m.offset, maxOffset)
	m.offset = max(m.offset, 0)
}

// MoveBy implements Picker.
func (m *model[E]) MoveBy(delta int) tea.Cmd {
	m.state = m.state.MoveBy(delta)
	m.ensureVisible()
	return nil
}

// MoveTo implements Picker.
func (m *model[E]) MoveTo(pos int) tea.Cmd {
	m.state = m.state.MoveTo(pos)
	m.ensureVisible()
	return nil
}

// SelectAbove implements Picker.
func (m *model[E]) SelectAbove() tea.Cmd {
	return m.MoveBy(-1)
}

// SelectBelow implements Picker.
func (m *model[E]) SelectBelow() tea.Cmd {
	return m.MoveBy(1)
}

// Insert implements Picker.
func (m *model[E]) Insert(pos int, value E) tea.Cmd {
	m.state = m.state.Insert(pos, value)
	m.ensureVisible()
	return nil
}

// Remove implements Picker.
func (m *model[E]) Remove(pos int) tea.Cmd {
	m.state = m.state.Remove(pos)
	m.ensureVisible()
	return nil
}

// SetElements implements Picker. Content goes through the list's replace
// operation, so the selection follows the previously selected element to its
// new position instead of sticking to a raw index.
func (m *model[E]) SetElements(elements []E) tea.Cmd {
	m.state = m.state.Replace(elements)
	m.rowCache.Clear()
	m.ensureVisible()
	return nil
}

// Elements implements Picker.
func (m *model[E]) Elements() []E {
	return m.state.Elements
}

// Selected implements Picker.
func (m *model[E]) Selected() (E, bool) {
	return m.state.SelectedElement()
}

// SelectedIndex implements Picker.
func (m *model[E]) SelectedIndex() int {
	return m.state.Selected
}

// Name implements Picker.
func (m *model[E]) Name() string {
	return m.state.Name
}

// SetSize implements Picker.
func (m *model[E]) SetSize(width, height int) tea.Cmd {
	if width != m.width {
		m.rowCache.Clear()
	}
	m.width = width
	m.height = height
	m.ensureVisible()
	return nil
}

// GetSize implements Picker.
func (m *model[E]) GetSize() (int, int) {
	return m.width, m.height
}

// Focus implements Picker.
func (m *model[E]) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur implements Picker.
func (m *model[E]) Blur() tea.Cmd {
	m.focused = false
	return nil
}

// IsFocused implements Picker.
func (m *model[E]) IsFocused() bool {
	return m.focused
}
