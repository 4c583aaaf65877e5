package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/tui/components/calendar"
	"tableflip.dev/stickycal/pkg/tui/components/tray"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

// View implements tea.Model. It also records the hit layout used by mouse
// handling, so it must run before pointer events are interpreted.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	snap := m.snapshot()
	if m.modalOpen {
		// Nothing behind the modal is a target.
		m.layout = ui.Layout{}
		height := m.height
		if height <= 0 {
			height = 24
		}
		return m.modal.Place(width, height)
	}

	g := snap.Gesture
	var layout ui.Layout
	var rows []string
	y := 0
	push := func(block string, l *ui.Layout) {
		if l != nil {
			layout.Merge(*l, 0, y)
		}
		rows = append(rows, block)
		y += lipgloss.Height(block)
	}

	push(m.header(snap), nil)
	push("", nil)

	focus := tray.Focus{Note: -1, Trash: m.focus == focusTrash}
	if m.focus == focusTray {
		focus.Note = m.trayIdx
	}
	trayView, trayLayout := tray.Render(snap.Workspace, tray.Options{
		Theme:         m.th,
		Focus:         focus,
		Dragging:      dragging(g),
		FromWorkspace: g.Active() && g.Payload.FromWorkspace,
	})
	push(trayView, &trayLayout)
	push("", nil)

	opts := calendar.Options{
		Theme:     m.th,
		CellWidth: calendar.CellWidth(width),
		Dragging:  dragging(g),
	}
	if m.focus == focusGrid {
		opts.Cursor = m.day
		opts.CursorSlot = -1
		if !g.Active() {
			opts.CursorSlot = m.slot
		}
		if g.Active() && g.Hover != 0 {
			opts.Hover = g.Hover
			opts.HoverAllowed = g.HoverAllowed
		}
	}
	gridView, gridLayout := calendar.Render(snap, opts)
	push(gridView, &gridLayout)

	push(m.footer(), nil)
	if m.viewer != nil {
		push(m.viewer.View(), nil)
	}

	m.layout = layout
	return strings.Join(rows, "\n")
}

func dragging(g board.Gesture) note.ID {
	if g.Active() {
		return g.Payload.NoteID
	}
	return 0
}

func (m *Model) header(snap board.Snapshot) string {
	title := m.th.Board.Title.Render(snap.Title)
	free := snap.Capacity*len(snap.Days) - snap.Placed
	summary := fmt.Sprintf("%d placed, %d free", snap.Placed, free)
	if snap.Full {
		summary = "calendar full"
	}
	return title + "  " + m.th.Footer.Status.Render(summary)
}

func (m *Model) footer() string {
	status := m.th.Footer.Status.Render(m.status)
	if m.statusWarn {
		status = m.th.Footer.Warn.Render(m.status)
	}
	return status + "\n" + m.help.View(m.keys)
}
