// Package eventviewer renders the scrolling gesture log docked under the
// board.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

// Level indicates the severity of a logged event.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Entry captures a rendered event.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// FromOutcome builds an entry for an applied board event. Rejected drops
// are warnings; ignored events are logged as info.
func FromOutcome(source string, ev board.Event, out board.Outcome) Entry {
	e := Entry{
		Source:  source,
		Summary: fmt.Sprintf("%s %s", ev.Kind(), out.Result),
		Detail:  ev.Describe(),
	}
	if out.Note != nil {
		e.Detail = fmt.Sprintf("%s %s", out.Note.ID, e.Detail)
	}
	if out.Reason != "" {
		e.Detail = fmt.Sprintf("%s (%s)", e.Detail, out.Reason)
	}
	switch {
	case out.Full:
		e.Level = LevelError
		e.Detail += " calendar full"
	case out.Result == board.Rejected:
		e.Level = LevelWarn
	}
	return e
}

// Model renders a streaming event log, newest first.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	limit    int
	width    int
	height   int
	styles   Styles
}

// Styles controls the log's presentation.
type Styles struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Levels [3]lipgloss.Style
}

// StylesFor derives the log styles from the board theme so the log shares
// the grid's border and the hover colours.
func StylesFor(th theme.Theme) Styles {
	return Styles{
		Frame:  th.Board.Cell,
		Header: th.Board.Title,
		Muted:  th.Footer.Help,
		Levels: [3]lipgloss.Style{
			LevelInfo:  th.Footer.Status,
			LevelWarn:  th.Footer.Warn,
			LevelError: th.Footer.Warn.Bold(true),
		},
	}
}

// NewModel constructs a viewer keeping at most limit entries.
func NewModel(limit int, styles Styles) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		styles:   styles,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseWheelMsg:
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		return m, cmd
	}
	return m, nil
}

// SetSize resizes the viewport while keeping the header and border intact.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	m.viewport.SetWidth(max(1, width-2))
	m.viewport.SetHeight(max(1, height-3))
	m.refreshContent()
}

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := fmt.Sprintf("Gestures (%d)", len(m.entries))
	if n := m.count(LevelWarn) + m.count(LevelError); n > 0 {
		header += fmt.Sprintf(", %d need attention", n)
	}
	header = m.styles.Header.Render(header)
	body := lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Append inserts a new entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Source == "" {
		entry.Source = "ui"
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Entries returns the logged entries, newest first.
func (m *Model) Entries() []Entry { return m.entries }

func (m *Model) count(l Level) int {
	n := 0
	for _, e := range m.entries {
		if e.Level == l {
			n++
		}
	}
	return n
}

func (m *Model) refreshContent() {
	lines := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		lines = append(lines, m.renderEntry(entry))
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = m.styles.Muted.Render("No gestures yet")
	}
	m.viewport.SetContent(content)
}

func (m *Model) renderEntry(entry Entry) string {
	msg := entry.Summary
	if entry.Detail != "" {
		msg += ": " + entry.Detail
	}
	level := entry.Level
	if level < LevelInfo || level > LevelError {
		level = LevelInfo
	}
	prefix := m.styles.Muted.Render(entry.Timestamp.Format("15:04:05.000") + " [" + entry.Source + "]")
	return prefix + " " + m.styles.Levels[level].Render(msg)
}
