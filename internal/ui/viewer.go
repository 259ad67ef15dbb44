package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusBarHeight = 1

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Padding(0, 1)
)

// RenderFunc reads the watched file, scans it, and returns the highlighted
// text plus the number of matches. Called on start, on 'r', and after each
// debounced change notification.
type RenderFunc func() (content string, matches int, err error)

// fileChangedMsg arrives after the watcher's debounce window closes.
type fileChangedMsg struct{}

// renderedMsg carries a fresh render of the watched file.
type renderedMsg struct {
	content string
	matches int
	err     error
}

// Model is the interactive viewer. It owns the watcher for the displayed
// file and releases it when the program quits.
type Model struct {
	path     string
	render   RenderFunc
	watcher  *Watcher
	changes  <-chan struct{}
	viewport viewport.Model
	ready    bool
	matches  int
	err      error
}

// NewModel builds a viewer for path. The watcher must already be started;
// pass its notification channel as changes.
func NewModel(path string, render RenderFunc, watcher *Watcher, changes <-chan struct{}) Model {
	return Model{
		path:    path,
		render:  render,
		watcher: watcher,
		changes: changes,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.doRender(), m.waitForChange())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.watcher != nil {
				_ = m.watcher.Stop()
			}
			return m, tea.Quit
		case "r":
			return m, m.doRender()
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
		}
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(m.doRender(), m.waitForChange())

	case renderedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.matches = msg.matches
			m.viewport.SetContent(msg.content)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("%s — %v (r to retry, q to quit)", m.path, m.err))
	}
	return statusStyle.Render(fmt.Sprintf("%s — %d matches — r reload, q quit", m.path, m.matches))
}

func (m Model) doRender() tea.Cmd {
	return func() tea.Msg {
		content, matches, err := m.render()
		return renderedMsg{content: content, matches: matches, err: err}
	}
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}
