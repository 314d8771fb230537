// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/cli/styles"
)

// LayoutReloadedMsg reports one read of the watched file. View holds the
// rendered tree, or the problems found when OK is false.
type LayoutReloadedMsg struct {
	At   time.Time
	OK   bool
	View string
}

// LayoutSavedMsg reports a background write to the layout store.
type LayoutSavedMsg struct {
	Name string
	At   time.Time
	Err  error
}

// ConfigReloadedMsg is sent after the configuration file changed.
type ConfigReloadedMsg struct {
	At time.Time
}

// WatchStoppedMsg is sent when the file watcher exits.
type WatchStoppedMsg struct {
	Err error
}

// chrome is the number of lines around the viewport: header, blank line,
// status line and help.
const chrome = 4

// WatchModel shows the last read of a watched layout file.
type WatchModel struct {
	help     help.Model
	keys     watchKeyMap
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	path    string
	saveAs  string
	events  <-chan tea.Msg
	waiting bool
	ok      bool
	body    string
	updated time.Time
	reloads int
	saved   string
	config  time.Time
	err     error
	width   int
	height  int

	theme *styles.Theme
}

type watchKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Quit key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Help, k.Quit}}
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Up:   key.NewBinding(key.WithKeys("k", "up", "pgup"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("j", "down", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewWatchModel creates the view for path. events delivers the messages
// above; saveAs is the store name autosaves go to, empty when disabled.
func NewWatchModel(theme *styles.Theme, path, saveAs string, events <-chan tea.Msg) WatchModel {
	return WatchModel{
		help:    help.New(),
		keys:    defaultWatchKeyMap(),
		spinner: styles.NewSpinner(theme),
		path:    path,
		saveAs:  saveAs,
		events:  events,
		waiting: true,
		width:   80,
		height:  24,
		theme:   theme,
	}
}

// Err returns the error the watcher stopped with.
func (m WatchModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent)
}

func (m WatchModel) waitForEvent() tea.Msg {
	msg, ok := <-m.events
	if !ok {
		return WatchStoppedMsg{}
	}
	return msg
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		height := max(msg.Height-chrome, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.body)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LayoutReloadedMsg:
		m.waiting = false
		m.ok = msg.OK
		m.body = msg.View
		m.updated = msg.At
		m.reloads++
		if m.ready {
			m.viewport.SetContent(m.body)
			m.viewport.GotoTop()
		}
		return m, m.waitForEvent

	case LayoutSavedMsg:
		stamp := msg.At.Format(time.TimeOnly)
		if msg.Err != nil {
			m.saved = m.theme.ErrorStyle.Render(fmt.Sprintf("%s save to %q failed: %v", styles.IconX, msg.Name, msg.Err))
		} else {
			m.saved = m.theme.SuccessStyle.Render(fmt.Sprintf("%s saved as %q at %s", styles.IconDatabase, msg.Name, stamp))
		}
		return m, m.waitForEvent

	case ConfigReloadedMsg:
		m.config = msg.At
		return m, m.waitForEvent

	case WatchStoppedMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("Watching"),
		" ",
		t.Badge.Render(filepath.Base(m.path)),
		" ",
		t.Subtle.Render(filepath.Dir(m.path)),
	)

	body := m.body
	if m.ready {
		body = m.viewport.View()
	}
	if m.waiting {
		body = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", t.Subtle.Render("Reading layout..."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.statusLine(), m.help.View(m.keys))
}

func (m WatchModel) statusLine() string {
	t := m.theme
	if m.waiting {
		return ""
	}

	state := t.SuccessStyle.Render(styles.IconCheck + " valid")
	if !m.ok {
		state = t.ErrorStyle.Render(styles.IconX + " invalid, keeping last good layout")
	}
	parts := []string{
		state,
		t.Subtle.Render(fmt.Sprintf("read %d× · last %s", m.reloads, m.updated.Format(time.TimeOnly))),
	}
	if !m.config.IsZero() {
		parts = append(parts, t.Subtle.Render("config reloaded "+m.config.Format(time.TimeOnly)))
	}
	switch {
	case m.saved != "":
		parts = append(parts, m.saved)
	case m.saveAs != "":
		parts = append(parts, t.Subtle.Render(fmt.Sprintf("autosave to %q", m.saveAs)))
	}
	return strings.Join(parts, "  ")
}
