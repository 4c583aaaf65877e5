// Package tray renders the workspace notes and the trash target.
package tray

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

// Focus marks which tray element has the keyboard cursor.
type Focus struct {
	Note  int // tray index, -1 for none
	Trash bool
}

// Options controls tray highlighting.
type Options struct {
	Theme    theme.Theme
	Focus    Focus
	Dragging note.ID
	// FromWorkspace is set while the dragged note came from the tray; the
	// trash then shows as a rejecting target.
	FromWorkspace bool
}

// Render draws one card per note followed by the trash.
func Render(notes []note.Note, opts Options) (string, ui.Layout) {
	var layout ui.Layout
	var parts []string
	x := 0
	add := func(block string, hit ui.Hit) {
		w, h := lipgloss.Width(block), lipgloss.Height(block)
		layout.Add(ui.Rect{X: x, Y: 0, W: w, H: h}, hit)
		parts = append(parts, block)
		x += w
	}
	gap := func(n int) {
		parts = append(parts, strings.Repeat(" ", n))
		x += n
	}

	for i, n := range notes {
		add(card(n, i == opts.Focus.Note, n.ID == opts.Dragging, opts.Theme), ui.Hit{Zone: ui.ZoneTray, Index: i, Slot: -1})
		gap(1)
	}
	gap(3)
	add(trash(opts), ui.Hit{Zone: ui.ZoneTrash, Slot: -1})
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), layout
}

func card(n note.Note, focused, dragging bool, th theme.Theme) string {
	style := th.NoteCard(n.Color, n.Draggable)
	if focused {
		style = style.Border(lipgloss.ThickBorder())
	}
	if dragging {
		style = style.Faint(true)
	}
	id := n.ID.String()
	if !n.Draggable {
		id += " (locked)"
	}
	return style.Render(n.Title() + "\n" + id)
}

func trash(opts Options) string {
	style := opts.Theme.Board.Trash
	switch {
	case opts.Dragging != 0 && opts.Focus.Trash && opts.FromWorkspace:
		style = opts.Theme.Board.HoverBad.Padding(0, 1)
	case opts.Dragging != 0 && opts.Focus.Trash:
		style = opts.Theme.Board.HoverOK.Padding(0, 1)
	case opts.Focus.Trash:
		style = opts.Theme.Board.Cursor.Padding(0, 1)
	}
	return style.Render(fmt.Sprintf("%s\n%s", "🗑  Trash", "drop here"))
}
