// Package panel renders the blocking full-calendar dialog.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/stickycal/pkg/tui/theme"
)

// Model is a centered dialog with a title, body lines and a dismiss hint.
type Model struct {
	title string
	lines []string
	hint  string
	th    theme.ModalTheme
}

// New returns an empty dialog.
func New(th theme.ModalTheme) Model {
	return Model{th: th}
}

// SetContent updates the dialog title and body.
func (m *Model) SetContent(title string, lines []string, hint string) {
	m.title = title
	m.lines = lines
	m.hint = hint
}

// Reset clears the dialog.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
	m.hint = ""
}

// Empty reports whether there is nothing to show.
func (m Model) Empty() bool { return m.title == "" && len(m.lines) == 0 }

// View renders the framed dialog.
func (m Model) View() string {
	var content []string
	if m.title != "" {
		content = append(content, m.th.Title.Render(m.title), "")
	}
	for _, line := range m.lines {
		content = append(content, m.th.Body.Render(line))
	}
	if m.hint != "" {
		content = append(content, "", m.th.Hint.Render(m.hint))
	}
	return m.th.Frame.Render(strings.Join(content, "\n"))
}

// Place centers the dialog in a width x height area.
func (m Model) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View())
}
