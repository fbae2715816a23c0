// Package tui implements the interactive picker application: a filter input
// on top, the selectable line list below, and a status line at the bottom.
// Every content change — a filter keystroke or an external edit of the
// watched file — routes through the list's replace operation, so the
// highlighted line keeps pointing at the same logical content.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/tuikit/lineup/internal/config"
	"github.com/tuikit/lineup/internal/csync"
	"github.com/tuikit/lineup/internal/tui/components/picker"
	"github.com/tuikit/lineup/internal/tui/styles"
	"github.com/tuikit/lineup/internal/update"
)

// LoadLines re-reads the backing source of the list.
type LoadLines func() ([]string, error)

type (
	fileChangedMsg    struct{}
	sourceReloadedMsg struct{ lines []string }
	watchErrMsg       struct{ err error }
	updateCheckedMsg  struct{ info *update.Info }
)

// App is the top-level Bubble Tea model.
type App struct {
	width, height int
	keyMap        KeyMap
	pickerKeys    picker.KeyMap

	filter textinput.Model
	picker picker.Picker[string]

	// source holds the unfiltered lines; reload commands write to it from
	// their own goroutines.
	source *csync.Slice[string]

	load      LoadLines
	watchPath string
	watcher   *fsnotify.Watcher

	sessionID    string
	updateNotice string

	choice   string
	accepted bool
	aborted  bool
}

// New builds the picker app over the given lines. When watchPath is
// non-empty the file is watched and load is used to re-read it on changes.
func New(name string, lines []string, load LoadLines, watchPath string) (*App, error) {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "> "

	a := &App{
		keyMap:     DefaultKeyMap(),
		pickerKeys: picker.DefaultKeyMap(),
		filter:     filter,
		picker:     picker.New(name, lines, renderLine),
		source:     csync.NewSliceFrom(lines),
		load:       load,
		watchPath:  watchPath,
		sessionID:  uuid.NewString(),
	}

	if watchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("creating file watcher: %w", err)
		}
		// Watch the directory so editors that replace the file atomically
		// are still observed.
		if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watching %s: %w", watchPath, err)
		}
		a.watcher = watcher
	}
	return a, nil
}

func renderLine(selected bool, line string) string {
	if selected {
		return "> " + line
	}
	return "  " + line
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	slog.Debug("Starting picker", "session", a.sessionID, "lines", a.source.Len(), "watch", a.watchPath)
	cmds := []tea.Cmd{
		a.filter.Focus(),
		a.waitForFileEvent(),
		a.checkForUpdate(),
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.filter.SetWidth(msg.Width - 2)
		a.picker.SetSize(msg.Width, max(1, msg.Height-2))
		return a, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, a.keyMap.Quit):
			a.aborted = true
			return a, a.quit()
		case key.Matches(msg, a.keyMap.Accept):
			if choice, ok := a.picker.Selected(); ok {
				a.choice = choice
				a.accepted = true
			} else {
				a.aborted = true
			}
			return a, a.quit()
		}

		// The picker owns only its two navigation bindings; everything else
		// belongs to the filter input.
		if key.Matches(msg, a.pickerKeys.Up) || key.Matches(msg, a.pickerKeys.Down) {
			_, cmd := a.picker.Update(msg)
			return a, cmd
		}

		before := a.filter.Value()
		var filterCmd tea.Cmd
		a.filter, filterCmd = a.filter.Update(msg)
		if a.filter.Value() != before {
			a.applyFilter()
		}
		return a, filterCmd

	case fileChangedMsg:
		return a, tea.Batch(a.reloadSource(), a.waitForFileEvent())

	case sourceReloadedMsg:
		slog.Debug("Source reloaded", "session", a.sessionID, "lines", len(msg.lines))
		a.source.SetSlice(msg.lines)
		a.applyFilter()
		return a, nil

	case watchErrMsg:
		slog.Warn("Watch error", "session", a.sessionID, "error", msg.err)
		return a, a.waitForFileEvent()

	case updateCheckedMsg:
		if msg.info != nil && msg.info.Available {
			a.updateNotice = fmt.Sprintf("v%s available", msg.info.LatestVersion)
		}
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	t := styles.CurrentTheme()

	header := t.Prompt.Render(a.filter.View())
	status := t.Muted.Render(a.statusLine())
	return lipgloss.JoinVertical(lipgloss.Left, header, a.picker.View(), status)
}

func (a *App) statusLine() string {
	s := fmt.Sprintf("%d/%d", len(a.picker.Elements()), a.source.Len())
	if a.updateNotice != "" {
		s += "  ·  " + a.updateNotice
	}
	return s
}

// applyFilter narrows the source lines by the current query and swaps the
// result into the picker, preserving the selection logically.
func (a *App) applyFilter() {
	lines := a.source.Slice()
	query := a.filter.Value()
	if query == "" {
		a.picker.SetElements(lines)
		return
	}
	matches := fuzzy.Find(query, lines)
	filtered := make([]string, len(matches))
	for i, m := range matches {
		filtered[i] = m.Str
	}
	a.picker.SetElements(filtered)
}

func (a *App) quit() tea.Cmd {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	return tea.Quit
}

// waitForFileEvent blocks on the watcher until the backing file changes.
// The command re-arms itself through the messages it produces.
func (a *App) waitForFileEvent() tea.Cmd {
	watcher := a.watcher
	if watcher == nil {
		return nil
	}
	watched := filepath.Clean(a.watchPath)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != watched {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err}
			}
		}
	}
}

func (a *App) reloadSource() tea.Cmd {
	load := a.load
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		lines, err := load()
		if err != nil {
			return watchErrMsg{err}
		}
		return sourceReloadedMsg{lines: lines}
	}
}

func (a *App) checkForUpdate() tea.Cmd {
	cfg := config.Get()
	if cfg.DisableUpdateCheck {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		info, ok := <-update.CheckAsync(ctx, cfg.DataDirectory)
		if !ok {
			return nil
		}
		return updateCheckedMsg{info: info}
	}
}

// Choice returns the accepted line, if any.
func (a *App) Choice() (string, bool) {
	return a.choice, a.accepted
}

// Aborted reports whether the user quit without accepting.
func (a *App) Aborted() bool {
	return a.aborted
}
